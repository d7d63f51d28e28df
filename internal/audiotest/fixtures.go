// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds ADPCM WAV fixtures for tests.
package audiotest

import "encoding/binary"

// Chunk is an arbitrary RIFF sub-chunk inserted before the data chunk.
type Chunk struct {
	ID   string
	Data []byte
}

// Block assembles one MS ADPCM block: little-endian first sample, step
// table index, a reserved byte, then the packed nybble body.
func Block(firstSample int16, stepIndex byte, body []byte) []byte {
	block := make([]byte, 4+len(body))
	binary.LittleEndian.PutUint16(block[0:2], uint16(firstSample))
	block[2] = stepIndex
	copy(block[4:], body)
	return block
}

// WavADPCM assembles a mono ADPCM WAV file in memory: RIFF preamble, a
// 16-byte fmt chunk with the given format tag, any extra chunks, then a
// data chunk containing the concatenated blocks.
func WavADPCM(formatTag uint16, sampleRate uint32, blockAlign uint16, blocks [][]byte, extra ...Chunk) []byte {
	var data []byte
	for _, b := range blocks {
		data = append(data, b...)
	}

	size := 36
	for _, c := range extra {
		size += 8 + len(c.Data)
	}
	size += 8 + len(data)

	out := make([]byte, 0, size)

	// RIFF preamble. The chunk length covers everything after it.
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(size-8))
	out = append(out, "WAVE"...)

	// fmt chunk. Byte rate and bits-per-sample are rough placeholders:
	// the transcoder only reads the format tag, channel count, sample
	// rate and block alignment.
	out = append(out, "fmt "...)
	out = binary.LittleEndian.AppendUint32(out, 16)
	out = binary.LittleEndian.AppendUint16(out, formatTag)
	out = binary.LittleEndian.AppendUint16(out, 1) // mono
	out = binary.LittleEndian.AppendUint32(out, sampleRate)
	out = binary.LittleEndian.AppendUint32(out, sampleRate/2) // byte rate
	out = binary.LittleEndian.AppendUint16(out, blockAlign)
	out = binary.LittleEndian.AppendUint16(out, 4) // bits per sample

	for _, c := range extra {
		out = append(out, c.ID...)
		out = binary.LittleEndian.AppendUint32(out, uint32(len(c.Data)))
		out = append(out, c.Data...)
	}

	out = append(out, "data"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(data)))
	out = append(out, data...)

	return out
}
