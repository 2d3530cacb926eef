package md5

import (
	"encoding/binary"
	"encoding/hex"
)

// bytes serializes the state words, each little-endian, in A, B, C, D order.
func (s state) bytes() [Size]byte {
	var out [Size]byte
	for j, w := range s {
		binary.LittleEndian.PutUint32(out[4*j:], w)
	}
	return out
}

// finalize renders the state as the 32 character lowercase hex digest.
func finalize(s state) string {
	b := s.bytes()
	return hex.EncodeToString(b[:])
}
