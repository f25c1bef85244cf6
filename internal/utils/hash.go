package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// HashHeader is the request header carrying the hex HMAC-SHA256 of the
// request body.
const HashHeader = "HashSHA256"

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. Both the backend integrity middleware and the client adapter call
// it once on startup.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest over data using a hasher pulled from
// the global pool.
//
// Example usage:
//
//	digest := utils.Hash([]byte(`{"posteId":1}`))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex returns the hex encoding of Hash(data), the form sent in
// [HashHeader].
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// EqualHashHex reports whether the hex digest got matches data, in constant
// time.
func EqualHashHex(data []byte, got string) bool {
	want, err := hex.DecodeString(got)
	if err != nil {
		return false
	}
	return hmac.Equal(Hash(data), want)
}
