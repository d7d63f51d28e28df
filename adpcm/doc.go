// SPDX-License-Identifier: EPL-2.0

// Package adpcm decodes MS ADPCM compressed audio samples.
//
// ADPCM (Adaptive Differential Pulse-Code Modulation) encodes each
// sample as a 4-bit delta from a predicted value, with a step size that
// adapts as the signal changes. Two deltas are packed per byte, low
// order nybble first.
//
// # Blocks
//
// Compressed audio is organized in fixed-size blocks. Each block starts
// with a 4-byte header holding the first sample and the initial step
// table index, and the rest of the block is packed deltas. Because
// every block carries its own seed state, blocks decode independently:
//
//	seed := adpcm.State{Predictor: firstSample, StepIndex: stepIndex}
//	samples, _ := adpcm.DecodeBlock(body, seed)
//
// DecodeBlock emits the seed predictor as the first output sample, then
// one sample per nybble, so a body of k bytes always yields 2k+1
// samples.
//
// # Purity
//
// Decoding is a pure function of the block body and the seed state. No
// I/O happens here; splitting a stream into blocks and parsing block
// headers is the container's job (see the formats/wav package).
//
// # Invariants
//
// The step index stays within [0, 88] and the predictor within
// [-32768, 32767]; both are clamped after every update. Seed states
// with an out-of-range step index are clamped before the first lookup.
package adpcm
