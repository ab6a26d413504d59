// Command sha256sum hashes files, standard input or a sample string with the
// pure-Go SHA-256 engine, verifies checksum lists, and cross-checks the engine
// against crypto/sha256.
package main

import (
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); chk.E(err) {
		os.Exit(1)
	}
}
