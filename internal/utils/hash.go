package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests. hash.Hash instances are pooled
// to avoid allocations on hot paths such as per-request credential lookups.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with key.
//
// Example usage:
//
//	h := utils.NewHasher(key)
//	fingerprint := h.HashString(token)
func NewHasher(key []byte) *Hasher {
	k := append([]byte(nil), key...)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, k)
			},
		},
	}
}

// Hash computes the HMAC-SHA256 digest of data.
func (h *Hasher) Hash(data []byte) []byte {
	hh := h.pool.Get().(hash.Hash)
	hh.Reset()

	hh.Write(data)
	sum := hh.Sum(nil)

	hh.Reset()
	h.pool.Put(hh)

	return sum
}

// HashString returns the hex-encoded digest of data.
func (h *Hasher) HashString(data string) string {
	return hex.EncodeToString(h.Hash([]byte(data)))
}
