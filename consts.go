package md5

import "math"

// Initial values of the A, B, C and D state words.
const (
	kA0 = uint32(0x67452301)
	kB0 = uint32(0xefcdab89)
	kC0 = uint32(0x98badcfe)
	kD0 = uint32(0x10325476)
)

const (
	numRounds     = 4
	stepsPerRound = 16
	numSteps      = numRounds * stepsPerRound
)

// Left rotation amounts, cycling every 4 steps within a round.
var kShiftAmounts = [numRounds][4]uint{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

var (
	// kSine[i] is floor(2^32 * |sin(i+1)|).
	kSine [numSteps]uint32

	// Per-step lookups so the compression loop never has to work out which
	// round it is in.
	kStepRound [numSteps]int
	kStepShift [numSteps]uint
	kStepWord  [numSteps]int
)

func init() {
	for i := 0; i < numSteps; i++ {
		kSine[i] = uint32(math.Floor(math.Ldexp(math.Abs(math.Sin(float64(i+1))), 32)))
		round := i / stepsPerRound
		kStepRound[i] = round
		kStepShift[i] = kShiftAmounts[round][i%4]
		kStepWord[i] = wordIndex(i)
	}
}
