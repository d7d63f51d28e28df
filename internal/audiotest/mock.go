// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// MockSource generates samples from a waveform function. It implements
// the audio.Source interface without importing it.
type MockSource struct {
	sampleRate   int
	totalSamples int
	generated    int
	waveform     func(sample int) float32
}

// NewMockSource creates a mono mock source producing totalSamples
// values of waveform.
func NewMockSource(sampleRate, totalSamples int, waveform func(sample int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewConstantSource creates a mock source emitting a fixed value.
func NewConstantSource(sampleRate, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, totalSamples, func(int) float32 { return value })
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return 1 }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	n := min(len(dst), m.totalSamples-m.generated)
	for i := 0; i < n; i++ {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	return n, nil
}
