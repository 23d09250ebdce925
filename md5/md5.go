//
// md5.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 message digest algorithm as defined
// in RFC 1321.
//
// MD5 is cryptographically broken and must only be used for
// compatibility with existing data formats.
package md5

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/markkurossi/mdhash/padding"
)

// Size is the size of an MD5 digest in bytes.
const Size = 16

// BlockSize is the block size of MD5 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
)

// table holds the additive constants floor(2^32*|sin(i+1)|).
var table = [64]uint32{
	// Round 1.
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	// Round 2.
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	// Round 3.
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	// Round 4.
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shifts holds the per-round left rotate amounts. Each round cycles
// through its four amounts.
var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// init validates the additive constants against their definition.
func init() {
	for i, v := range table {
		t := uint32(math.Floor(4294967296 * math.Abs(math.Sin(float64(i+1)))))
		if t != v {
			panic(fmt.Sprintf("md5: table[%d] mismatch: %08x != %08x", i, v, t))
		}
	}
}

// Sum returns the MD5 digest of the data. The state words are
// serialized in little-endian byte order.
func Sum(data []byte) [Size]byte {
	padded, err := padding.Pad(data, padding.MD5)
	if err != nil {
		// The MD5 padding wraps the length and never fails.
		panic(err)
	}

	state := [4]uint32{init0, init1, init2, init3}
	for len(padded) >= BlockSize {
		state = Block(state, padded[:BlockSize])
		padded = padded[BlockSize:]
	}

	var digest [Size]byte
	for i, s := range state {
		binary.LittleEndian.PutUint32(digest[i*4:], s)
	}
	return digest
}

// Block processes one 64-byte block and returns the updated state.
func Block(state [4]uint32, p []byte) [4]uint32 {
	if len(p) != BlockSize {
		panic(fmt.Sprintf("md5: invalid block length %d", len(p)))
	}

	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(p[i*4:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]

	// Round 1: F(b,c,d) = (b & c) | (^b & d), words in order.
	for k := 0; k < 16; k++ {
		f := b&c | ^b&d
		t := a + f + x[k] + table[k]
		a, b, c, d = d, b+bits.RotateLeft32(t, shifts[0][k&3]), b, c
	}
	// Round 2: G(b,c,d) = (b & d) | (c & ^d), words (1+5k) mod 16.
	for k := 0; k < 16; k++ {
		f := b&d | c&^d
		t := a + f + x[(1+5*k)&0xf] + table[16+k]
		a, b, c, d = d, b+bits.RotateLeft32(t, shifts[1][k&3]), b, c
	}
	// Round 3: H(b,c,d) = b ^ c ^ d, words (5+3k) mod 16.
	for k := 0; k < 16; k++ {
		f := b ^ c ^ d
		t := a + f + x[(5+3*k)&0xf] + table[32+k]
		a, b, c, d = d, b+bits.RotateLeft32(t, shifts[2][k&3]), b, c
	}
	// Round 4: I(b,c,d) = c ^ (b | ^d), words 7k mod 16.
	for k := 0; k < 16; k++ {
		f := c ^ (b | ^d)
		t := a + f + x[(7*k)&0xf] + table[48+k]
		a, b, c, d = d, b+bits.RotateLeft32(t, shifts[3][k&3]), b, c
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d

	return state
}
