package adpcm

// State is the adaptive decoder state: the running sample prediction and
// the current position in the step size table. Each compressed block
// seeds its own State from its block header; state never carries over
// between blocks.
type State struct {
	Predictor int16
	StepIndex int
}

// DecodeBlock decodes the body of one mono MS ADPCM block.
//
// body holds the packed 4-bit deltas (the block payload after the 4-byte
// block header has been stripped). The returned slice always contains
// exactly 2*len(body)+1 samples: the seed predictor is emitted first,
// then one sample per nybble, low order nybble of each byte first.
func DecodeBlock(body []byte, st State) ([]int16, State) {
	return AppendBlock(make([]int16, 0, 2*len(body)+1), body, st)
}

// AppendBlock is DecodeBlock appending to dst, for callers that reuse a
// sample buffer across blocks.
func AppendBlock(dst []int16, body []byte, st State) ([]int16, State) {
	pred := int(st.Predictor)
	index := clampIndex(st.StepIndex)

	// The first sample comes straight from the block header, not from a
	// delta.
	dst = append(dst, int16(pred))

	for _, b := range body {
		pred, index = decodeNybble(b&0x0f, pred, index)
		dst = append(dst, int16(pred))
		pred, index = decodeNybble(b>>4, pred, index)
		dst = append(dst, int16(pred))
	}

	return dst, State{Predictor: int16(pred), StepIndex: index}
}

// decodeNybble applies one 4-bit delta. The high bit of the nybble is
// the sign, the low three bits scale the current step size. The step
// index adapts using the full nybble before the difference is applied.
func decodeNybble(nybble byte, pred, index int) (int, int) {
	step := stepSizes[index]

	index = clampIndex(index + indexDeltas[nybble])

	// difference = step * (magnitude + 0.5) / 4, via truncating shifts.
	diff := step >> 3
	if nybble&1 != 0 {
		diff += step >> 2
	}
	if nybble&2 != 0 {
		diff += step >> 1
	}
	if nybble&4 != 0 {
		diff += step
	}

	if nybble&8 != 0 {
		pred -= diff
	} else {
		pred += diff
	}

	if pred < -32768 {
		pred = -32768
	} else if pred > 32767 {
		pred = 32767
	}

	return pred, index
}

func clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > 88 {
		return 88
	}
	return index
}
