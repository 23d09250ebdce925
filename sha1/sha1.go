// -*- go -*-
//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS
// 180-1 and RFC 3174.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/markkurossi/mdhash/padding"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// Sum returns the SHA-1 checksum of the data. The state words are
// serialized in big-endian byte order, the standard SHA-1 digest
// format.
func Sum(data []byte) ([Size]byte, error) {
	state, err := sum(data)
	if err != nil {
		return [Size]byte{}, err
	}
	var digest [Size]byte
	for i, s := range state {
		binary.BigEndian.PutUint32(digest[i*4:], s)
	}
	return digest, nil
}

// SumLE returns the SHA-1 checksum of the data with the state words
// serialized in little-endian byte order. Each 4-byte group of the
// result is the reverse of the corresponding group of Sum. This
// format is only for compatibility with digests produced by legacy
// implementations that used it.
func SumLE(data []byte) ([Size]byte, error) {
	state, err := sum(data)
	if err != nil {
		return [Size]byte{}, err
	}
	var digest [Size]byte
	for i, s := range state {
		binary.LittleEndian.PutUint32(digest[i*4:], s)
	}
	return digest, nil
}

func sum(data []byte) ([5]uint32, error) {
	padded, err := padding.Pad(data, padding.V1)
	if err != nil {
		return [5]uint32{}, fmt.Errorf("sha1: %w", err)
	}

	state := [5]uint32{init0, init1, init2, init3, init4}
	for len(padded) >= BlockSize {
		state = Block(state, padded[:BlockSize])
		padded = padded[BlockSize:]
	}
	return state, nil
}

// Block processes one 64-byte block and returns the updated state.
func Block(state [5]uint32, p []byte) [5]uint32 {
	if len(p) != BlockSize {
		panic(fmt.Sprintf("sha1: invalid block length %d", len(p)))
	}

	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for i := 0; i < 80; i++ {
		t := bits.RotateLeft32(a, 5) + e + w[i] + f(i, b, c, d)
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e

	return state
}

// f returns the band function of step i, added with the band
// constant.
func f(i int, b, c, d uint32) uint32 {
	switch {
	case i < 0:
	case i < 20:
		return (b&c | (^b)&d) + _K0
	case i < 40:
		return (b ^ c ^ d) + _K1
	case i < 60:
		return (b&c | b&d | c&d) + _K2
	case i < 80:
		return (b ^ c ^ d) + _K3
	}
	panic(fmt.Sprintf("sha1: invalid step %d", i))
}
