package md5

func fF(b, c, d uint32) uint32 { return (b & c) | (^b & d) }
func fG(b, c, d uint32) uint32 { return (b & d) | (c & ^d) }
func fH(b, c, d uint32) uint32 { return b ^ c ^ d }
func fI(b, c, d uint32) uint32 { return c ^ (b | ^d) }

// kRoundFuncs holds the nonlinear function used by each round.
var kRoundFuncs = [numRounds]func(b, c, d uint32) uint32{fF, fG, fH, fI}
