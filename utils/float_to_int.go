package utils

// Float32ToInt16 converts a normalized float32 sample in [-1, 1] to a
// 16-bit PCM sample. Out-of-range input is clamped.
func Float32ToInt16(x float32) int16 {
	v := x * 32768.0
	if v > 32767 {
		v = 32767
	} else if v < -32768 {
		v = -32768
	}

	return int16(v)
}

// Int16ToFloat32 converts a 16-bit PCM sample to a normalized float32
// in [-1, 1). The two functions round-trip exactly for every int16
// value.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
