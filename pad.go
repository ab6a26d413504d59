package sha256

import "golang.org/x/crypto/cryptobyte"

// Pad returns a copy of message extended to a whole number of blocks: a single
// 0x80 byte, zero fill up to 56 mod 64, then the message length in bits as a
// big-endian uint64. The length field keeps only the low 64 bits.
//
// An empty message pads to exactly one block.
func Pad(message []byte) []byte {
	n := len(message)
	total := paddedLen(uint64(n))
	b := cryptobyte.NewFixedBuilder(make([]byte, 0, total))
	b.AddBytes(message)
	b.AddUint8(0x80)
	b.AddBytes(make([]byte, total-uint64(n)-1-lenFieldSize))
	b.AddUint64(lengthField(uint64(n)))
	return b.BytesOrPanic()
}

// paddedLen is the smallest multiple of BlockSize that holds n message bytes,
// the 0x80 marker and the length field.
func paddedLen(n uint64) uint64 {
	return (n + 1 + lenFieldSize + BlockSize - 1) &^ (BlockSize - 1)
}

// lengthField is the bit length of n bytes, wrapped to 64 bits.
func lengthField(n uint64) uint64 { return n << 3 }
