package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a valid WAV file")
	ErrUnsupportedFormat = errors.New("only mono MS ADPCM input is supported")
	ErrTruncatedBlock    = errors.New("truncated ADPCM block header")
)
