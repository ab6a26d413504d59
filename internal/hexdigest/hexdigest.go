// Package hexdigest renders SHA-256 digests as lowercase hex and parses them
// back.
package hexdigest

import (
	"encoding/hex"
	"fmt"

	"github.com/templexxx/xhex"

	sha256 "github.com/Giulio2002/faster_sha256"
)

// Len is the length of a hex-encoded digest.
const Len = 2 * sha256.Size

// Format returns the 64 character lowercase hex encoding of d.
func Format(d [sha256.Size]byte) string {
	return string(Append(nil, d))
}

// Append appends the hex encoding of d to dst.
func Append(dst []byte, d [sha256.Size]byte) []byte {
	l := len(dst)
	dst = append(dst, make([]byte, Len)...)
	xhex.Encode(dst[l:], d[:])
	return dst
}

// Parse decodes a 64 character hex string into a digest. Upper and lower case
// are both accepted.
func Parse(s string) (d [sha256.Size]byte, err error) {
	if len(s) != Len {
		return d, fmt.Errorf("hex digest is %d characters, want %d", len(s), Len)
	}
	// xhex decodes any byte to some nibble, so the alphabet is checked here
	// and the input folded to lower case.
	src := []byte(s)
	for i, c := range src {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
			src[i] = c + 'a' - 'A'
		default:
			return d, fmt.Errorf("parsing hex digest at offset %d: %w", i, hex.InvalidByteError(c))
		}
	}
	if err = xhex.Decode(d[:], src); err != nil {
		return d, fmt.Errorf("parsing hex digest: %w", err)
	}
	return
}
