// SPDX-License-Identifier: EPL-2.0

// Package audio provides the interfaces audio decoders plug into.
//
// # Source Interface
//
// The Source interface is the common shape of a decoded audio stream:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Decoders hand out Sources, and consumers drain them with a fixed
// buffer until ReadSamples reports io.EOF:
//
//	buf := make([]float32, src.BufSize())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// # Decoder Registry
//
// The Registry maps format keys to Decoder implementations so callers
// can pick a decoder from a file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// The registry is safe for concurrent use.
package audio
