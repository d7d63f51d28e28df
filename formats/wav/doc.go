// SPDX-License-Identifier: EPL-2.0

// Package wav reads mono MS ADPCM WAV files and writes 16-bit linear
// PCM WAV files.
//
// The package exists to feed audio into APIs that refuse compressed
// input: many telephony captures arrive as 4-bit MS ADPCM inside a WAV
// container, and speech services generally want uncompressed LINEAR16.
//
// # Transcoding
//
// TranscodeLinear16 is the main entry point. It validates the input
// container, rewrites the fmt chunk for linear PCM, streams the data
// chunk block by block through the adpcm decoder, and finally patches
// the two length fields that are only known once the payload has been
// written:
//
//	in, _ := os.Open("capture.wav")
//	out, _ := os.Create("linear.wav")
//	err := wav.TranscodeLinear16(in, out)
//
// The destination must support random-access writes (io.WriteSeeker):
// the header is committed before the payload, so the data chunk length
// and the RIFF length are corrected by seeking back after the fact.
//
// # Container expectations
//
// Input must be a RIFF/WAVE file with the fmt chunk directly after the
// 12-byte preamble, exactly one channel, and format tag 2 (MS ADPCM).
// Tag 17 is also accepted for compatibility with the tool this package
// replaces, even though the decode algorithm applied is the MS ADPCM
// one. Other chunks (LIST, fact, ...) between fmt and data are skipped
// by a linear chunk scan.
//
// # Streaming decode
//
// Decoder implements audio.Decoder and exposes the decompressed audio
// as a float32 audio.Source for pipeline use:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// DecodePCMBuffer decodes a whole file into a go-audio IntBuffer for
// interoperability with github.com/go-audio based code.
//
// # Writing WAV files
//
// WriteWAV16 writes plain mono PCM16 WAV files from int16 samples:
//
//	wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
// The package defines sentinel errors:
//   - ErrNotWavFile: missing RIFF/WAVE/fmt signatures, or no data chunk
//   - ErrUnsupportedFormat: not mono, or not an accepted ADPCM tag
//   - ErrTruncatedBlock: a final block too short to hold a block header
//
// Errors abort the transcode immediately; partial output must be
// discarded.
package wav
