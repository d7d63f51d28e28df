package audioformats

import (
	"fmt"
	"io"

	"github.com/PeterMarshallAu/audio-file-formats/audio"
	"github.com/PeterMarshallAu/audio-file-formats/utils"
)

// CollectPCM16 drains an audio source and collects every sample as
// 16-bit PCM.
//
// It reads bufferSize float32 samples at a time until the source
// reports io.EOF, converting each batch with utils.Float32ToInt16.
// The source's sample rate is returned alongside the samples so the
// result can be fed straight into wav.WriteWAV16:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm, rate, err := audioformats.CollectPCM16(src, 4096)
//	wav.WriteWAV16(out, rate, pcm)
func CollectPCM16(src audio.Source, bufferSize int) ([]int16, int, error) {
	pcm := make([]int16, 0, bufferSize)
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm = append(pcm, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			return pcm, src.SampleRate(), nil
		}
		if err != nil {
			return nil, src.SampleRate(), fmt.Errorf("reading samples: %w", err)
		}
	}
}
