package md5

import "math/bits"

// Register positions in a state or working set.
const (
	rA = iota
	rB
	rC
	rD
)

// state is the A, B, C, D accumulator carried across blocks.
type state [4]uint32

func initialState() state {
	return state{kA0, kB0, kC0, kD0}
}

// compressBlock runs the 64 steps over one block and folds the working
// registers back into s.
func compressBlock(s state, x *[16]uint32) state {
	r := s
	for i := 0; i < numSteps; i++ {
		f := kRoundFuncs[kStepRound[i]](r[rB], r[rC], r[rD])
		f = f + r[rA] + kSine[i] + x[kStepWord[i]]
		b := r[rB] + bits.RotateLeft32(f, int(kStepShift[i]))
		r = [4]uint32{rA: r[rD], rB: b, rC: r[rB], rD: r[rC]}
	}
	for j := range s {
		s[j] += r[j]
	}
	return s
}

// compress chains every block of padded through compressBlock, in order.
func compress(s state, padded []byte) state {
	forEachBlock(padded, func(x *[16]uint32) {
		s = compressBlock(s, x)
	})
	return s
}
