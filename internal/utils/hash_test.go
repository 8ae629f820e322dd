// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestHasher_MatchesHMAC(t *testing.T) {
	key := []byte("secret-key")
	h := NewHasher(key)

	data := []byte("device-1:secret")

	sum1 := h.Hash(data)
	sum2 := h.Hash(data)

	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
	if got := h.HashString(string(data)); got != hex.EncodeToString(expected) {
		t.Fatalf("unexpected hex digest %s", got)
	}
}

func TestHasher_KeyMatters(t *testing.T) {
	a := NewHasher([]byte("a")).HashString("x")
	b := NewHasher([]byte("b")).HashString("x")
	if a == b {
		t.Fatal("different keys must produce different digests")
	}
}

func TestHasher_KeyIsCopied(t *testing.T) {
	key := []byte("key")
	h := NewHasher(key)
	before := h.HashString("x")

	key[0] = 'X'
	if after := h.HashString("x"); after != before {
		t.Fatal("mutating the caller's key must not change the hasher")
	}
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher([]byte("k"))
	want := h.HashString("payload")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := h.HashString("payload"); got != want {
					t.Errorf("digest mismatch under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}
