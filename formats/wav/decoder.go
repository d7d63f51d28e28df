package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/PeterMarshallAu/audio-file-formats/audio"
	"github.com/PeterMarshallAu/audio-file-formats/utils"
)

// adpcmSource streams decoded ADPCM audio as float32 samples. It keeps
// at most one decoded block buffered.
type adpcmSource struct {
	r          io.Reader
	sampleRate int
	blockAlign int
	remaining  uint32 // declared data bytes not yet consumed

	block   []byte
	samples []int16
	buf     []float32
	pending []float32
	closed  bool
}

func (s *adpcmSource) SampleRate() int { return s.sampleRate }
func (s *adpcmSource) Channels() int   { return 1 }

// BufSize reports the number of samples one compressed block decodes
// to, which is the natural read granularity for this source.
func (s *adpcmSource) BufSize() int {
	return 2*(s.blockAlign-blockHeaderSize) + 1
}

func (s *adpcmSource) Close() error {
	s.closed = true
	s.pending = nil
	return nil
}

func (s *adpcmSource) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, audio.ErrSourceClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}

	if len(s.pending) == 0 {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

// fill decodes the next block into the pending buffer.
func (s *adpcmSource) fill() error {
	if s.remaining == 0 {
		return io.EOF
	}

	var n int
	var err error
	s.samples, n, err = readBlock(s.r, s.block, s.samples)
	if err == io.EOF {
		// Input ended before the declared data length.
		s.remaining = 0
		return io.EOF
	}
	if err != nil {
		return err
	}

	if uint32(n) >= s.remaining {
		s.remaining = 0
	} else {
		s.remaining -= uint32(n)
	}

	if cap(s.buf) < len(s.samples) {
		s.buf = make([]float32, len(s.samples))
	}
	s.buf = s.buf[:len(s.samples)]
	for i, v := range s.samples {
		s.buf[i] = utils.Int16ToFloat32(v)
	}
	s.pending = s.buf

	return nil
}

// Decoder decodes mono MS ADPCM WAV input into an audio.Source.
type Decoder struct{}

// Decode parses the WAV container, locates the data chunk and returns a
// source streaming the decompressed samples. If r does not implement
// io.ReadSeeker the whole input is buffered in memory first, since the
// chunk scan needs random access.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading ADPCM input: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	front, err := readFrontHeaders(rs)
	if err != nil {
		return nil, err
	}

	hdr, err := parseFrontHeaders(front)
	if err != nil {
		return nil, err
	}

	dataLen, err := scanForData(rs, io.Discard)
	if err != nil {
		return nil, err
	}

	return &adpcmSource{
		r:          rs,
		sampleRate: int(hdr.sampleRate),
		blockAlign: int(hdr.blockAlign),
		remaining:  dataLen,
		block:      make([]byte, hdr.blockAlign),
		samples:    make([]int16, 0, 2*int(hdr.blockAlign)+1),
	}, nil
}

// DecodePCMBuffer decodes an entire mono ADPCM WAV into a go-audio
// IntBuffer, for callers interoperating with the go-audio ecosystem.
func DecodePCMBuffer(r io.ReadSeeker) (*goaudio.IntBuffer, error) {
	front, err := readFrontHeaders(r)
	if err != nil {
		return nil, err
	}

	hdr, err := parseFrontHeaders(front)
	if err != nil {
		return nil, err
	}

	dataLen, err := scanForData(r, io.Discard)
	if err != nil {
		return nil, err
	}

	// Every full block holds 2*(blockAlign-4)+1 samples.
	blocks := int(dataLen) / int(hdr.blockAlign)
	data := make([]int, 0, (blocks+1)*(2*(int(hdr.blockAlign)-blockHeaderSize)+1))

	err = decodeBlocks(r, dataLen, hdr.blockAlign, func(samples []int16) error {
		for _, v := range samples {
			data = append(data, int(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  int(hdr.sampleRate),
		},
		SourceBitDepth: 16,
		Data:           data,
	}, nil
}
