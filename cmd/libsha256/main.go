// Command libsha256 exposes the engine to foreign hosts as a C shared
// library:
//
//	go build -buildmode=c-shared -o libsha256.so ./cmd/libsha256
//
// The generated header declares
//
//	int32_t sha256_hash(uint8_t *in, int64_t len, uint8_t *out, int64_t out_len);
//	int32_t sha256_size(void);
//
// sha256_hash returns 0 on success and a non-zero bridge status when the host
// buffers are unusable, in which case out is left untouched.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	sha256 "github.com/Giulio2002/faster_sha256"
	"github.com/Giulio2002/faster_sha256/internal/bridge"
)

//export sha256_hash
func sha256_hash(in *C.uint8_t, n C.int64_t, out *C.uint8_t, outLen C.int64_t) C.int32_t {
	return C.int32_t(bridge.HashInto(unsafe.Pointer(in), int64(n), unsafe.Pointer(out), int64(outLen)))
}

//export sha256_size
func sha256_size() C.int32_t { return C.int32_t(sha256.Size) }

func main() {}
