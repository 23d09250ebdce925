//
// padding.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//
// Merkle-Damgård length padding, RFC 1321 section 3.1-3.2 and FIPS
// 180-1 section 4.

// Package padding implements the message padding and length encoding
// shared by the MD5 and SHA-1 engines. The padding is a pure function
// of the message and a block Geometry.
package padding

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/markkurossi/mdhash/pkg/math"
)

// Geometry specifies the block and length field layout of a padding
// variant.
type Geometry struct {
	// BlockSize specifies the block size in bytes.
	BlockSize int

	// LengthSize specifies the width of the trailing length field in
	// bytes. The maximum supported width is 16 bytes.
	LengthSize int

	// Order specifies the byte order of the length field.
	Order binary.ByteOrder

	// Wrap specifies if message bit lengths exceeding the length
	// field are encoded modulo 2^(8*LengthSize). If Wrap is false,
	// Pad returns ErrSizeOverflow for such messages.
	Wrap bool
}

// Padding variants.
var (
	// V1 is the 512-bit block variant with a 64-bit big-endian
	// length field. It is used by SHA-1.
	V1 = Geometry{
		BlockSize:  64,
		LengthSize: 8,
		Order:      binary.BigEndian,
	}

	// V2 is the 1024-bit block variant with a 128-bit big-endian
	// length field. It is reserved for hash families with 64-bit
	// words.
	V2 = Geometry{
		BlockSize:  128,
		LengthSize: 16,
		Order:      binary.BigEndian,
	}

	// MD5 is the 512-bit block variant with a 64-bit little-endian
	// length field. RFC 1321 defines the length modulo 2^64 so this
	// variant never fails.
	MD5 = Geometry{
		BlockSize:  64,
		LengthSize: 8,
		Order:      binary.LittleEndian,
		Wrap:       true,
	}
)

var (
	// ErrSizeOverflow is returned if the message bit length can't be
	// represented in the length field of the padding variant.
	ErrSizeOverflow = errors.New("message size overflow")

	// ErrNotPadded is returned if a buffer is not a padded message.
	ErrNotPadded = errors.New("buffer is not padded")
)

const (
	marker      = 0x80
	maxLenBytes = 16
)

func (g Geometry) String() string {
	return fmt.Sprintf("%d/%d", g.BlockSize*math.ByteBits,
		g.LengthSize*math.ByteBits)
}

func (g Geometry) check() {
	if g.BlockSize <= 0 || g.LengthSize <= 0 || g.LengthSize >= g.BlockSize ||
		g.LengthSize > maxLenBytes || g.Order == nil {
		panic(fmt.Sprintf("padding: invalid geometry: block=%d, length=%d",
			g.BlockSize, g.LengthSize))
	}
}

func (g Geometry) little() bool {
	return g.Order.Uint16([]byte{1, 0}) == 1
}

// fits tests if the 128-bit value hi:lo fits into the length field.
func (g Geometry) fits(hi, lo uint64) bool {
	switch {
	case g.LengthSize >= maxLenBytes:
		return true
	case g.LengthSize > 8:
		return hi>>uint((g.LengthSize-8)*math.ByteBits) == 0
	case g.LengthSize == 8:
		return hi == 0
	default:
		return hi == 0 && lo>>uint(g.LengthSize*math.ByteBits) == 0
	}
}

// truncate reduces hi:lo modulo the length field width.
func (g Geometry) truncate(hi, lo uint64) (uint64, uint64) {
	switch {
	case g.LengthSize >= maxLenBytes:
		return hi, lo
	case g.LengthSize > 8:
		return hi & (1<<uint((g.LengthSize-8)*math.ByteBits) - 1), lo
	case g.LengthSize == 8:
		return 0, lo
	default:
		return 0, lo & (1<<uint(g.LengthSize*math.ByteBits) - 1)
	}
}

// PaddedLen returns the length of the padded buffer for a message of
// n bytes.
func PaddedLen(n int, g Geometry) int {
	g.check()
	l := n + 1 + g.LengthSize
	return (l + g.BlockSize - 1) / g.BlockSize * g.BlockSize
}

// Pad pads the message msg according to the geometry g. The function
// returns a new buffer and does not modify msg. The padded buffer
// contains msg, followed by a single 0x80 byte, zero bytes until the
// buffer length is LengthSize bytes short of a block boundary, and
// the bit length of msg as a LengthSize wide integer.
//
//	P = M || 80 || 00* || L .
func Pad(msg []byte, g Geometry) ([]byte, error) {
	g.check()

	hi, lo := bits.Mul64(uint64(len(msg)), math.ByteBits)
	if !g.fits(hi, lo) {
		if !g.Wrap {
			return nil, fmt.Errorf("%w: %d bytes does not fit %d-bit length",
				ErrSizeOverflow, len(msg), g.LengthSize*math.ByteBits)
		}
		hi, lo = g.truncate(hi, lo)
	}

	buf := make([]byte, len(msg), PaddedLen(len(msg), g))
	copy(buf, msg)
	buf = append(buf, marker)
	for len(buf)%g.BlockSize != g.BlockSize-g.LengthSize {
		buf = append(buf, 0)
	}
	return append(buf, g.encode(hi, lo)...), nil
}

func (g Geometry) encode(hi, lo uint64) []byte {
	var field [maxLenBytes]byte
	if g.little() {
		g.Order.PutUint64(field[0:], lo)
		g.Order.PutUint64(field[8:], hi)
		return field[:g.LengthSize]
	}
	g.Order.PutUint64(field[0:], hi)
	g.Order.PutUint64(field[8:], lo)
	return field[maxLenBytes-g.LengthSize:]
}

// Length returns the message bit length hi:lo encoded in the trailing
// length field of the padded buffer.
func Length(padded []byte, g Geometry) (hi, lo uint64, err error) {
	g.check()
	if len(padded) == 0 || len(padded)%g.BlockSize != 0 {
		return 0, 0, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrNotPadded, len(padded), g.BlockSize)
	}
	var field [maxLenBytes]byte
	tail := padded[len(padded)-g.LengthSize:]
	if g.little() {
		copy(field[:], tail)
		return g.Order.Uint64(field[8:]), g.Order.Uint64(field[0:]), nil
	}
	copy(field[maxLenBytes-g.LengthSize:], tail)
	return g.Order.Uint64(field[0:]), g.Order.Uint64(field[8:]), nil
}
