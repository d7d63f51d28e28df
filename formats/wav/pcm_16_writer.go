// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes samples as a mono 16-bit PCM WAV file at
// sampleRate. Unlike TranscodeLinear16 the payload size is known up
// front, so the complete 44-byte header is emitted in one piece and w
// only needs to support appending.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(2 * len(samples))

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], 1) // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], 2*uint32(sampleRate)) // byte rate
	binary.LittleEndian.PutUint16(header[32:34], 2)                    // block align
	binary.LittleEndian.PutUint16(header[34:36], 16)                   // bits per sample

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	// Serialize in bounded chunks so large files stay allocation-flat.
	const chunkFrames = 4096
	buf := make([]byte, 2*min(len(samples), chunkFrames))

	for start := 0; start < len(samples); start += chunkFrames {
		end := min(start+chunkFrames, len(samples))
		chunk := samples[start:end]

		b := buf[:2*len(chunk)]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(b[2*i:2*i+2], uint16(s))
		}

		if _, err := w.Write(b); err != nil {
			return fmt.Errorf("writing PCM data: %w", err)
		}
	}

	return nil
}
