package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/PeterMarshallAu/audio-file-formats/adpcm"
)

// WAV format tags this package deals with.
const (
	formatPCM     = 1
	formatMSADPCM = 2
	// formatIMAADPCM is accepted on input for compatibility with the
	// tool this package replaces, but the packet layout decoded is the
	// MS ADPCM one. Genuine IMA ADPCM files will decode to garbage.
	formatIMAADPCM = 17
)

// Fixed container offsets. The fmt chunk is required to sit directly
// after the 12-byte RIFF/WAVE preamble, so the first 36 bytes of the
// file cover everything through the fmt body.
const (
	frontHeaderSize = 36
	firstChunkPos   = 12
	blockHeaderSize = 4
	riffSizePos     = 4
	dataSizePos     = 40
)

// headerInfo is the subset of the fmt chunk the transcoder needs.
type headerInfo struct {
	audioFormat uint16
	numChannels uint16
	sampleRate  uint32
	blockAlign  uint16
}

// TranscodeLinear16 reads a mono MS ADPCM WAV from src and writes the
// same audio as an uncompressed 16-bit linear PCM WAV to dst.
//
// The output header is committed up front with the input's length
// fields still in place; once the whole payload has been written, the
// data chunk length and the RIFF chunk length are patched in place.
// dst must therefore support seeking, not just appending.
//
// On error the output is in an undefined partial state and must be
// discarded.
func TranscodeLinear16(src io.ReadSeeker, dst io.WriteSeeker) error {
	front, err := readFrontHeaders(src)
	if err != nil {
		return err
	}

	hdr, err := parseFrontHeaders(front)
	if err != nil {
		return err
	}

	if _, err := dst.Write(linearFrontHeaders(front, hdr.sampleRate)); err != nil {
		return fmt.Errorf("writing output headers: %w", err)
	}

	dataLen, err := scanForData(src, dst)
	if err != nil {
		return err
	}

	written, err := transcodeData(src, dst, dataLen, hdr.blockAlign)
	if err != nil {
		return err
	}

	return patchLengths(dst, written)
}

// readFrontHeaders reads the fixed 36-byte front of the container. A
// file too short to hold them cannot be a WAV file.
func readFrontHeaders(src io.Reader) ([]byte, error) {
	front := make([]byte, frontHeaderSize)
	if _, err := io.ReadFull(src, front); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrNotWavFile
		}
		return nil, fmt.Errorf("reading WAV headers: %w", err)
	}
	return front, nil
}

// parseFrontHeaders validates the RIFF/WAVE/fmt signatures and extracts
// the fmt fields. Only mono input with an accepted ADPCM format tag
// passes.
func parseFrontHeaders(front []byte) (headerInfo, error) {
	if !bytes.Equal(front[0:4], []byte("RIFF")) ||
		!bytes.Equal(front[8:12], []byte("WAVE")) ||
		!bytes.Equal(front[12:16], []byte("fmt ")) {
		return headerInfo{}, ErrNotWavFile
	}

	hdr := headerInfo{
		audioFormat: binary.LittleEndian.Uint16(front[20:22]),
		numChannels: binary.LittleEndian.Uint16(front[22:24]),
		sampleRate:  binary.LittleEndian.Uint32(front[24:28]),
		blockAlign:  binary.LittleEndian.Uint16(front[32:34]),
	}

	if hdr.numChannels != 1 {
		return headerInfo{}, ErrUnsupportedFormat
	}
	if hdr.audioFormat != formatMSADPCM && hdr.audioFormat != formatIMAADPCM {
		return headerInfo{}, ErrUnsupportedFormat
	}
	// A block must at least hold its own header.
	if hdr.blockAlign < blockHeaderSize {
		return headerInfo{}, ErrUnsupportedFormat
	}

	return hdr, nil
}

// linearFrontHeaders copies the input's front headers and rewrites the
// fmt fields for 16-bit linear PCM. Any fmt extension bytes the source
// declared are truncated away by forcing the chunk size back to 16.
// The RIFF length field is left as-is; patchLengths fixes it later.
func linearFrontHeaders(front []byte, sampleRate uint32) []byte {
	out := make([]byte, frontHeaderSize)
	copy(out, front)

	binary.LittleEndian.PutUint32(out[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(out[20:22], formatPCM)
	binary.LittleEndian.PutUint32(out[28:32], 2*sampleRate) // byte rate
	binary.LittleEndian.PutUint16(out[32:34], 2)            // block align
	binary.LittleEndian.PutUint16(out[34:36], 16)           // bits per sample

	return out
}

// scanForData walks the chunk list from the first chunk position until
// it finds the data chunk, skipping over any other chunk by its
// declared length. The 8-byte data chunk header is copied to dst
// unmodified and src is left positioned at the start of the payload.
// Running past the end of the file without a data chunk means the file
// is malformed.
func scanForData(src io.ReadSeeker, dst io.Writer) (uint32, error) {
	total, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("sizing input: %w", err)
	}

	var header [8]byte
	next := int64(firstChunkPos)
	for {
		if _, err := src.Seek(next, io.SeekStart); err != nil {
			return 0, fmt.Errorf("seeking chunk at %d: %w", next, err)
		}
		if _, err := io.ReadFull(src, header[:]); err != nil {
			// A chunk list ending mid-header is a malformed container,
			// the same as never finding a data chunk.
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrNotWavFile
			}
			return 0, fmt.Errorf("reading chunk header at %d: %w", next, err)
		}

		length := binary.LittleEndian.Uint32(header[4:8])
		if bytes.Equal(header[0:4], []byte("data")) {
			if _, err := dst.Write(header[:]); err != nil {
				return 0, fmt.Errorf("writing data chunk header: %w", err)
			}
			return length, nil
		}

		next += 8 + int64(length)
		if next >= total {
			return 0, ErrNotWavFile
		}
	}
}

// readBlock reads one block into block and decodes it, appending the
// samples to samples[:0]. A short final read is decoded as the last
// block; io.EOF is returned once no bytes remain. A tail shorter than
// the 4-byte block header cannot seed decoder state and is an error.
func readBlock(r io.Reader, block []byte, samples []int16) ([]int16, int, error) {
	n, err := io.ReadFull(r, block)
	if n == 0 {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return samples, 0, io.EOF
		}
		return samples, 0, fmt.Errorf("reading ADPCM block: %w", err)
	}
	if err != nil && err != io.ErrUnexpectedEOF {
		return samples, n, fmt.Errorf("reading ADPCM block: %w", err)
	}
	if n < blockHeaderSize {
		return samples, n, ErrTruncatedBlock
	}

	// Block header: first sample, step index, one reserved byte.
	seed := adpcm.State{
		Predictor: int16(binary.LittleEndian.Uint16(block[0:2])),
		StepIndex: int(block[2]),
	}

	samples, _ = adpcm.AppendBlock(samples[:0], block[blockHeaderSize:n], seed)
	return samples, n, nil
}

// decodeBlocks reads dataLen payload bytes from src in blockAlign-sized
// blocks and hands each block's decoded samples to emit. The sample
// slice passed to emit is reused between calls.
func decodeBlocks(src io.Reader, dataLen uint32, blockAlign uint16, emit func([]int16) error) error {
	block := make([]byte, blockAlign)
	samples := make([]int16, 0, 2*int(blockAlign)+1)

	var bytesRead uint32
	for bytesRead < dataLen {
		var n int
		var err error

		samples, n, err = readBlock(src, block, samples)
		if err == io.EOF {
			// Input ended before the declared data length; decode what
			// was there and stop.
			return nil
		}
		if err != nil {
			return err
		}

		bytesRead += uint32(n)
		if err := emit(samples); err != nil {
			return err
		}
	}

	return nil
}

// transcodeData streams the data chunk through the sample decoder and
// writes little-endian PCM16 to dst, returning the payload byte count.
func transcodeData(src io.Reader, dst io.Writer, dataLen uint32, blockAlign uint16) (uint32, error) {
	var written uint32
	var out []byte

	err := decodeBlocks(src, dataLen, blockAlign, func(samples []int16) error {
		need := 2 * len(samples)
		if cap(out) < need {
			out = make([]byte, need)
		}
		out = out[:need]

		for i, v := range samples {
			binary.LittleEndian.PutUint16(out[2*i:2*i+2], uint16(v))
		}

		if _, err := dst.Write(out); err != nil {
			return fmt.Errorf("writing PCM block: %w", err)
		}
		written += uint32(need)
		return nil
	})

	return written, err
}

// patchLengths is the second phase of the two-phase header write: with
// the payload size finally known, rewrite the data chunk length and the
// RIFF chunk length in place.
func patchLengths(dst io.WriteSeeker, pcmBytes uint32) error {
	var field [4]byte

	if _, err := dst.Seek(dataSizePos, io.SeekStart); err != nil {
		return fmt.Errorf("seeking data length field: %w", err)
	}
	binary.LittleEndian.PutUint32(field[:], pcmBytes)
	if _, err := dst.Write(field[:]); err != nil {
		return fmt.Errorf("patching data length: %w", err)
	}

	total, err := dst.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("sizing output: %w", err)
	}

	if _, err := dst.Seek(riffSizePos, io.SeekStart); err != nil {
		return fmt.Errorf("seeking RIFF length field: %w", err)
	}
	binary.LittleEndian.PutUint32(field[:], uint32(total-8))
	if _, err := dst.Write(field[:]); err != nil {
		return fmt.Errorf("patching RIFF length: %w", err)
	}

	return nil
}
