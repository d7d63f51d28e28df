// SPDX-License-Identifier: EPL-2.0

// Package audioformats converts compressed WAV audio to uncompressed
// linear PCM.
//
// The package decodes mono MS ADPCM WAV files and rewrites them as
// 16-bit linear PCM WAV files, the format speech recognition APIs
// typically require for their LINEAR16 input.
//
// # Quick Start
//
// Convert a file on disk:
//
//	err := audioformats.ConvertLinear16File("capture.wav", "linear.wav")
//
// Convert a WAV held in memory (for read-only file systems):
//
//	out, err := audioformats.ConvertLinear16Bytes(adpcmBytes)
//
// Or drive the transcode over arbitrary streams, as long as the
// destination can seek:
//
//	err := audioformats.ConvertLinear16(src, dst)
//
// # Streaming Pipeline
//
// For sample-level access instead of a container-to-container copy, use
// the decoder from formats/wav, which exposes the audio as a float32
// stream:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, rate, _ := audioformats.CollectPCM16(src, 4096)
//	// pcm is []int16, ready for wav.WriteWAV16
//
// # Packages
//
//   - adpcm: the MS ADPCM sample decoder (pure, no I/O)
//   - formats/wav: WAV container parsing, transcoding and writing
//   - audio: Source/Decoder interfaces and the decoder registry
//   - utils: sample format conversions
//
// # Errors
//
// Malformed containers fail with wav.ErrNotWavFile, inputs that are not
// mono ADPCM with wav.ErrUnsupportedFormat, and a file whose final
// block is too short to carry a block header with wav.ErrTruncatedBlock.
// Any error aborts the conversion; partial output is not valid.
package audioformats
