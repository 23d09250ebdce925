// -*- go -*-
//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package math

const (
	MaxUint8  = 0xff
	MaxUint16 = 0xffff
	MaxUint32 = 0xffffffff
	MaxUint64 = 0xffffffffffffffff
)

// Bit widths of the fixed-size integers used by the digest engines.
const (
	ByteBits   = 8
	Uint32Bits = 32
	Uint64Bits = 64
)
