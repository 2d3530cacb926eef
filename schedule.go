package md5

import "encoding/binary"

// wordIndex returns which of the 16 block words feeds step i.
func wordIndex(i int) int {
	switch i / stepsPerRound {
	case 0:
		return i
	case 1:
		return (5*i + 1) % 16
	case 2:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}

// decodeBlock reads a 64 byte block as 16 little-endian words.
func decodeBlock(b []byte) [16]uint32 {
	var x [16]uint32
	for j := range x {
		x[j] = binary.LittleEndian.Uint32(b[4*j:])
	}
	return x
}

// forEachBlock calls fn with the words of each block of padded, in order.
// padded must be a multiple of BlockSize bytes long.
func forEachBlock(padded []byte, fn func(x *[16]uint32)) {
	for len(padded) >= BlockSize {
		x := decodeBlock(padded[:BlockSize])
		fn(&x)
		padded = padded[BlockSize:]
	}
}
