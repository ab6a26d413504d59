package sha256

import "math/bits"

// schedule expands one block into the 64-word message schedule w.
func schedule(w *[64]uint32, block []byte) {
	_ = block[BlockSize-1]
	for t := 0; t < 16; t++ {
		w[t] = be32(block[4*t:])
	}
	for t := 16; t < 64; t++ {
		w[t] = sigma1(w[t-2]) + w[t-7] + sigma0(w[t-15]) + w[t-16]
	}
}

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

// be32 reads a big-endian uint32 from at least 4 bytes.
func be32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// putBE32 writes v big-endian into the first 4 bytes of b.
func putBE32(b []byte, v uint32) {
	_ = b[3]
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
