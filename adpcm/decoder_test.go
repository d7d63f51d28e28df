package adpcm

import (
	"reflect"
	"testing"
)

func TestDecodeBlock_SampleCount(t *testing.T) {
	t.Parallel()

	// A body of k bytes must always decode to 2k+1 samples.
	for _, k := range []int{0, 1, 2, 3, 4, 16, 251, 1024} {
		body := make([]byte, k)
		for i := range body {
			body[i] = byte(i*31 + 7)
		}

		samples, _ := DecodeBlock(body, State{})
		if len(samples) != 2*k+1 {
			t.Errorf("DecodeBlock(%d body bytes) = %d samples, want %d", k, len(samples), 2*k+1)
		}
	}
}

func TestDecodeBlock_KnownVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        []byte
		seed        State
		wantSamples []int16
		wantFinal   State
	}{
		{
			// Nybble 0 at step index 0: step size 7, difference 7>>3 = 0,
			// predictor unchanged, index clamps at 0.
			name:        "zero nybbles leave predictor alone",
			body:        []byte{0x00, 0x00},
			seed:        State{Predictor: 0, StepIndex: 0},
			wantSamples: []int16{0, 0, 0, 0, 0},
			wantFinal:   State{Predictor: 0, StepIndex: 0},
		},
		{
			name:        "low nybble decodes before high nybble",
			body:        []byte{0x71},
			seed:        State{Predictor: 0, StepIndex: 0},
			wantSamples: []int16{0, 1, 12},
			wantFinal:   State{Predictor: 12, StepIndex: 8},
		},
		{
			name:        "sign bit subtracts the difference",
			body:        []byte{0x99},
			seed:        State{Predictor: 0, StepIndex: 0},
			wantSamples: []int16{0, -1, -2},
			wantFinal:   State{Predictor: -2, StepIndex: 0},
		},
		{
			// At index 88 the step size is 32767 and nybble 7 adds
			// 4095+8191+16383+32767 = 61436, far past the int16 range.
			name:        "predictor clamps at 32767",
			body:        []byte{0xf7},
			seed:        State{Predictor: 32767, StepIndex: 88},
			wantSamples: []int16{32767, 32767, -28669},
			wantFinal:   State{Predictor: -28669, StepIndex: 88},
		},
		{
			name:        "predictor clamps at -32768",
			body:        []byte{0x0f},
			seed:        State{Predictor: -32768, StepIndex: 88},
			wantSamples: []int16{-32768, -32768, -28673},
			wantFinal:   State{Predictor: -28673, StepIndex: 87},
		},
		{
			name:        "empty body emits only the seed sample",
			body:        nil,
			seed:        State{Predictor: -123, StepIndex: 17},
			wantSamples: []int16{-123},
			wantFinal:   State{Predictor: -123, StepIndex: 17},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples, final := DecodeBlock(tt.body, tt.seed)
			if !reflect.DeepEqual(samples, tt.wantSamples) {
				t.Errorf("samples = %v, want %v", samples, tt.wantSamples)
			}
			if final != tt.wantFinal {
				t.Errorf("final state = %+v, want %+v", final, tt.wantFinal)
			}
		})
	}
}

func TestDecodeBlock_StepIndexStaysInRange(t *testing.T) {
	t.Parallel()

	// Drive the index hard in both directions and make sure the final
	// state never escapes the table.
	tests := []struct {
		name string
		fill byte
		seed State
		want int
	}{
		{"all max deltas pin the index at 88", 0x77, State{StepIndex: 0}, 88},
		{"all zero deltas pin the index at 0", 0x00, State{StepIndex: 88}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := make([]byte, 64)
			for i := range body {
				body[i] = tt.fill
			}

			_, final := DecodeBlock(body, tt.seed)
			if final.StepIndex != tt.want {
				t.Errorf("final step index = %d, want %d", final.StepIndex, tt.want)
			}
		})
	}
}

func TestDecodeBlock_SeedIndexClamped(t *testing.T) {
	t.Parallel()

	// Block headers store the step index as a byte, so corrupt input can
	// claim an index past the end of the table. It must be clamped
	// before the first lookup instead of panicking.
	body := []byte{0x12, 0x34}

	over, _ := DecodeBlock(body, State{StepIndex: 250})
	at, _ := DecodeBlock(body, State{StepIndex: 88})
	if !reflect.DeepEqual(over, at) {
		t.Errorf("seed index 250 decoded %v, want same as index 88: %v", over, at)
	}

	under, _ := DecodeBlock(body, State{StepIndex: -3})
	atZero, _ := DecodeBlock(body, State{StepIndex: 0})
	if !reflect.DeepEqual(under, atZero) {
		t.Errorf("seed index -3 decoded %v, want same as index 0: %v", under, atZero)
	}
}

func TestDecodeBlock_Deterministic(t *testing.T) {
	t.Parallel()

	body := make([]byte, 512)
	for i := range body {
		body[i] = byte(i*113 + 29)
	}
	seed := State{Predictor: -900, StepIndex: 33}

	first, firstFinal := DecodeBlock(body, seed)
	second, secondFinal := DecodeBlock(body, seed)

	if !reflect.DeepEqual(first, second) {
		t.Error("decoding the same block twice produced different samples")
	}
	if firstFinal != secondFinal {
		t.Errorf("final states differ: %+v vs %+v", firstFinal, secondFinal)
	}
}

func TestAppendBlock_PreservesPrefix(t *testing.T) {
	t.Parallel()

	prefix := []int16{111, -222, 333}
	dst := make([]int16, len(prefix), 64)
	copy(dst, prefix)

	body := []byte{0x71}
	dst, _ = AppendBlock(dst, body, State{})

	if len(dst) != len(prefix)+2*len(body)+1 {
		t.Fatalf("len(dst) = %d, want %d", len(dst), len(prefix)+2*len(body)+1)
	}
	if !reflect.DeepEqual(dst[:3], prefix) {
		t.Errorf("prefix = %v, want %v", dst[:3], prefix)
	}

	direct, _ := DecodeBlock(body, State{})
	if !reflect.DeepEqual(dst[3:], direct) {
		t.Errorf("appended samples = %v, want %v", dst[3:], direct)
	}
}
