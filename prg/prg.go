//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic ChaCha20 pseudo-random
// generator for test and benchmark messages.
package prg

import (
	"golang.org/x/crypto/chacha20"
)

// Reader implements io.Reader returning the ChaCha20 keystream of a
// seed. Readers with identical seeds return identical streams.
type Reader struct {
	cipher *chacha20.Cipher
}

// New creates a new reader for the seed. The seed may be of any
// length; it is repeated or trimmed to form the 32-byte key. The
// nonce is zero.
func New(seed []byte) *Reader {
	key := make([]byte, chacha20.KeySize)
	if len(seed) > 0 {
		for i := range key {
			key[i] = seed[i%len(seed)]
		}
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &Reader{
		cipher: c,
	}
}

// Read fills p with the next len(p) keystream bytes. It never fails.
func (r *Reader) Read(p []byte) (int, error) {
	clear(p)
	// Stream XOR of zeros gives the keystream directly.
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Message returns n pseudo-random bytes derived from seed.
func Message(seed []byte, n int) []byte {
	msg := make([]byte, n)
	New(seed).Read(msg)
	return msg
}
