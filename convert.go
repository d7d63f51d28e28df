// SPDX-License-Identifier: EPL-2.0

package audioformats

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/PeterMarshallAu/audio-file-formats/formats/wav"
)

// ConvertLinear16 transcodes a mono MS ADPCM WAV read from src into an
// uncompressed 16-bit linear PCM WAV written to dst.
//
// dst must support random-access writes: the output header is written
// before the payload and its length fields are patched afterwards. On
// error the destination holds partial output that must be discarded.
func ConvertLinear16(src io.ReadSeeker, dst io.WriteSeeker) error {
	return wav.TranscodeLinear16(src, dst)
}

// ConvertLinear16File transcodes the named ADPCM WAV file into a new
// PCM WAV file at outPath. An existing file at outPath is overwritten.
func ConvertLinear16File(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if err := wav.TranscodeLinear16(in, out); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// ConvertLinear16Bytes transcodes an in-memory ADPCM WAV and returns
// the produced PCM WAV bytes. Useful on platforms without a writable
// file system.
func ConvertLinear16Bytes(in []byte) ([]byte, error) {
	dst := &writeBuffer{}
	if err := wav.TranscodeLinear16(bytes.NewReader(in), dst); err != nil {
		return nil, err
	}

	return dst.data, nil
}

// writeBuffer is an in-memory io.WriteSeeker. bytes.Buffer cannot seek,
// and the transcoder patches length fields after streaming the payload,
// so the in-memory destination needs its own seekable buffer.
type writeBuffer struct {
	data []byte
	pos  int64
}

func (b *writeBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		if end <= int64(cap(b.data)) {
			b.data = b.data[:end]
		} else {
			grown := make([]byte, end, 2*int(end))
			copy(grown, b.data)
			b.data = grown
		}
	}

	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *writeBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.pos + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}

	b.pos = pos
	return pos, nil
}
