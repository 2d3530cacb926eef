package md5

import "encoding/binary"

// pad returns a copy of msg with the MD5 padding applied: a single 1 bit,
// zero bits up to 448 mod 512, then the original bit length as a 64-bit
// little-endian integer. The result is always a whole number of blocks.
func pad(msg []byte) []byte {
	// 1 byte end marker :: 0-63 zero bytes :: 8 byte length
	n := len(msg) + 1
	zeroes := (BlockSize - 8 - n%BlockSize + BlockSize) % BlockSize
	out := make([]byte, n+zeroes+8)
	copy(out, msg)
	out[len(msg)] = 0x80
	binary.LittleEndian.PutUint64(out[len(out)-8:], uint64(len(msg))<<3)
	return out
}
