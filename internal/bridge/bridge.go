// Package bridge is the Go side of the foreign-call boundary. It turns raw
// host buffers into slices, validates them, and runs the hashing engine.
//
// The engine never fails. Every failure reported here comes from the host
// handing over an unusable buffer, and is reported as a BoundaryError.
package bridge

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	sha256 "github.com/Giulio2002/faster_sha256"
)

// Status is the result code handed back across the boundary.
type Status int32

const (
	OK Status = iota
	NilInput
	NegativeLength
	NilOutput
	ShortOutput
	Oversize
)

var statusNames = [...]string{
	OK:             "ok",
	NilInput:       "nil input buffer with non-zero length",
	NegativeLength: "negative buffer length",
	NilOutput:      "nil output buffer",
	ShortOutput:    "output buffer shorter than 32 bytes",
	Oversize:       "buffer length exceeds address space",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", int32(s))
}

// ErrBoundary matches every BoundaryError with errors.Is.
var ErrBoundary = errors.New("foreign call boundary failure")

// BoundaryError reports a buffer the host supplied that could not be used.
type BoundaryError struct {
	Op     string
	Status Status
}

func (e *BoundaryError) Error() string { return e.Op + ": " + e.Status.String() }

func (e *BoundaryError) Is(target error) bool { return target == ErrBoundary }

// StatusOf extracts the Status carried by err. A nil error is OK.
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	var be *BoundaryError
	if errors.As(err, &be) {
		return be.Status
	}
	return Status(-1)
}

func fail(op string, s Status) error {
	err := &BoundaryError{Op: op, Status: s}
	log.E.Ln(err)
	return err
}

// maxLen is the largest length a slice can carry. It is below the int64 range
// on 32-bit platforms.
var maxLen uint64 = math.MaxInt

// View returns a slice over n bytes at ptr. A nil pointer is an empty input
// only when n is 0.
func View(ptr unsafe.Pointer, n int64) (b []byte, err error) {
	switch {
	case n < 0:
		return nil, fail("input", NegativeLength)
	case uint64(n) > maxLen:
		return nil, fail("input", Oversize)
	case n == 0:
		return []byte{}, nil
	case ptr == nil:
		return nil, fail("input", NilInput)
	}
	return unsafe.Slice((*byte)(ptr), int(n)), nil
}

// output returns the first sha256.Size bytes at ptr.
func output(ptr unsafe.Pointer, n int64) (b []byte, err error) {
	switch {
	case ptr == nil:
		return nil, fail("output", NilOutput)
	case n < sha256.Size:
		return nil, fail("output", ShortOutput)
	}
	return unsafe.Slice((*byte)(ptr), sha256.Size), nil
}

// HashInto hashes n bytes at in and writes the 32-byte digest to out, which
// must hold at least outLen >= 32 bytes. Nothing is written on failure.
func HashInto(in unsafe.Pointer, n int64, out unsafe.Pointer, outLen int64) Status {
	src, err := View(in, n)
	if err != nil {
		return StatusOf(err)
	}
	dst, err := output(out, outLen)
	if err != nil {
		return StatusOf(err)
	}
	d := sha256.Sum256(src)
	copy(dst, d[:])
	log.T.F("hashed %d bytes", n)
	return OK
}

// HashBytes returns the digest of in as a fresh 32-byte buffer.
func HashBytes(in []byte) []byte {
	d := sha256.Sum256(in)
	return d[:]
}
