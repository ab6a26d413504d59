// Package compare cross-checks the engine against the Go standard library's
// crypto/sha256 for the same input.
package compare

import (
	stdsha256 "crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"

	sha256 "github.com/Giulio2002/faster_sha256"
	"github.com/Giulio2002/faster_sha256/internal/hexdigest"
)

// Report is the outcome of hashing one input with both engines.
type Report struct {
	Input       string
	Engine      [sha256.Size]byte
	Reference   [sha256.Size]byte
	Match       bool
	Accelerated bool
}

// Accelerated reports whether the reference implementation can use hardware
// SHA-2 or wide vector instructions on this CPU.
func Accelerated() bool {
	return cpu.ARM64.HasSHA2 ||
		cpu.S390X.HasSHA256 ||
		(cpu.X86.HasAVX2 && cpu.X86.HasBMI2)
}

// Run hashes input with this engine and with crypto/sha256.
func Run(input []byte) (r Report) {
	r = Report{
		Input:       string(input),
		Engine:      sha256.Sum256(input),
		Reference:   stdsha256.Sum256(input),
		Accelerated: Accelerated(),
	}
	r.Match = r.Engine == r.Reference
	if !r.Match {
		log.W.F("digest mismatch for %d byte input", len(input))
	}
	log.D.S(r)
	return
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Engine hash:    %s\n", hexdigest.Format(r.Engine))
	fmt.Fprintf(&b, "Reference hash: %s\n", hexdigest.Format(r.Reference))
	fmt.Fprintf(&b, "Hash match:     %t\n", r.Match)
	return b.String()
}
