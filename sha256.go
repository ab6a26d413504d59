// Package sha256 provides a pure-Go SHA-256 (FIPS 180-4) engine.
//
// Sum256 is the one-shot form: the message is padded into whole 64-byte
// blocks, each block is expanded into a 64-word schedule and compressed into
// the running state, and the final state is serialized big-endian.
//
// Hasher is the streaming form. It buffers partial blocks and produces the same
// digest as Sum256 for any split of the input. A Hasher satisfies hash.Hash.
//
// Nothing here allocates shared mutable state, so independent inputs can be
// hashed on separate goroutines, each with its own session or Hasher.
package sha256

import "hash"

// session is the per-computation scratch: the running hash state and the
// message schedule reused for every block.
type session struct {
	h [8]uint32
	w [64]uint32
}

func newSession() (s session) {
	s.h = h0
	return
}

// digest serializes the state, each word big-endian.
func (s *session) digest() (d [Size]byte) {
	for i, v := range s.h {
		putBE32(d[i*4:], v)
	}
	return
}

// Sum256 computes the SHA-256 digest of message.
func Sum256(message []byte) [Size]byte {
	s := newSession()
	blocks(&s, Pad(message))
	return s.digest()
}

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a streaming SHA-256 hasher. Designed for stack allocation: the
// zero value is ready for use.
type Hasher struct {
	s     session
	buf   [BlockSize]byte
	nx    int
	len   uint64
	ready bool
}

// New returns a Hasher ready to accept writes.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

// Reset resets the hasher to the initial state.
func (h *Hasher) Reset() {
	h.s = newSession()
	h.nx = 0
	h.len = 0
	h.ready = true
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the block size in bytes.
func (h *Hasher) BlockSize() int { return BlockSize }

// Write absorbs p into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (n int, err error) {
	if !h.ready {
		h.Reset()
	}
	n = len(p)
	h.len += uint64(n)
	if h.nx > 0 {
		c := copy(h.buf[h.nx:], p)
		h.nx += c
		p = p[c:]
		if h.nx == BlockSize {
			blocks(&h.s, h.buf[:])
			h.nx = 0
		}
	}
	if len(p) >= BlockSize {
		full := len(p) &^ (BlockSize - 1)
		blocks(&h.s, p[:full])
		p = p[full:]
	}
	if len(p) > 0 {
		h.nx = copy(h.buf[:], p)
	}
	return
}

// Sum256 finalizes and returns the digest of everything written so far.
// Does not modify the hasher state.
func (h *Hasher) Sum256() [Size]byte {
	c := *h
	if !c.ready {
		c.Reset()
	}
	return c.finish()
}

// Sum appends the digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum256()
	return append(b, d[:]...)
}

func (h *Hasher) finish() [Size]byte {
	length := lengthField(h.len)
	var tmp [BlockSize + lenFieldSize]byte
	tmp[0] = 0x80
	// t covers the 0x80 marker plus zero fill so the length field ends a block.
	t := (BlockSize-lenFieldSize-1-int(h.len%BlockSize)+BlockSize)%BlockSize + 1
	putBE32(tmp[t:], uint32(length>>32))
	putBE32(tmp[t+4:], uint32(length))
	_, _ = h.Write(tmp[:t+lenFieldSize])
	return h.s.digest()
}
