package audio

import (
	"io"
	"testing"
)

// stubSource is a minimal Source for registry tests.
type stubSource struct{ rate int }

func (s *stubSource) SampleRate() int                    { return s.rate }
func (s *stubSource) Channels() int                      { return 1 }
func (s *stubSource) BufSize() int                       { return 64 }
func (s *stubSource) Close() error                       { return nil }
func (s *stubSource) ReadSamples([]float32) (int, error) { return 0, io.EOF }

type stubDecoder struct{ rate int }

func (d stubDecoder) Decode(io.Reader) (Source, error) {
	return &stubSource{rate: d.rate}, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{rate: 8000})

	dec, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(\"wav\") not found after Register")
	}

	src, err := dec.Decode(nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
}

func TestRegistry_UnknownFormat(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	if _, ok := reg.Get("flac"); ok {
		t.Error("Get(\"flac\") = found, want not found on empty registry")
	}
}

func TestRegistry_OverwriteFormat(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register("wav", stubDecoder{rate: 8000})
	reg.Register("wav", stubDecoder{rate: 16000})

	dec, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get(\"wav\") not found")
	}

	src, _ := dec.Decode(nil)
	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want the later registration (16000)", src.SampleRate())
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			reg.Register("wav", stubDecoder{rate: i})
		}
	}()

	for i := 0; i < 100; i++ {
		reg.Get("wav")
	}
	<-done

	if _, ok := reg.Get("wav"); !ok {
		t.Error("Get(\"wav\") not found after concurrent registers")
	}
}
