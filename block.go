package sha256

import "math/bits"

// blocks feeds every whole block of p through the scheduler and compressor,
// in order. Trailing bytes short of a block are ignored.
func blocks(s *session, p []byte) {
	for len(p) >= BlockSize {
		schedule(&s.w, p[:BlockSize])
		compress(&s.h, &s.w)
		p = p[BlockSize:]
	}
}

// compress runs the 64 rounds for one scheduled block and folds the working
// registers back into h.
func compress(h *[8]uint32, w *[64]uint32) {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 64; t++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + K[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}
	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

func ch(x, y, z uint32) uint32 { return (x & y) ^ (^x & z) }

func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}
