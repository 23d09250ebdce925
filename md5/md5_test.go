//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5

import (
	gomd5 "crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/markkurossi/mdhash/prg"
)

var md5Tests = []struct {
	in  string
	out string
}{
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{
		"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		"d174ab98d277d9f5a5611c2c9f419d9f",
	},
	{
		strings.Repeat("1234567890", 8),
		"57edf4a22be3c955ac49da2e2107b67a",
	},
}

func TestVectors(t *testing.T) {
	for _, test := range md5Tests {
		sum := Sum([]byte(test.in))
		if got := hex.EncodeToString(sum[:]); got != test.out {
			t.Errorf("Sum(%q)=%s, expected %s", test.in, got, test.out)
		}
	}
}

func TestBoundaries(t *testing.T) {
	for _, n := range []int{55, 56, 63, 64, 65, 119, 120, 127, 128, 1000} {
		msg := prg.Message([]byte("md5 boundary"), n)
		sum := Sum(msg)
		ref := gomd5.Sum(msg)
		if sum != ref {
			t.Errorf("Sum(%d bytes)=%x, expected %x", n, sum, ref)
		}
	}
}

func TestDeterministic(t *testing.T) {
	msg := prg.Message([]byte("md5 deterministic"), 300)
	a := Sum(msg)
	b := Sum(msg)
	if a != b {
		t.Fatalf("digests differ: %x != %x", a, b)
	}
}

func TestBitFlip(t *testing.T) {
	for _, n := range []int{1, 3, 64, 200} {
		msg := prg.Message([]byte(fmt.Sprintf("md5 flip %d", n)), n)
		orig := Sum(msg)
		for bit := 0; bit < n*8; bit += 7 {
			msg[bit/8] ^= 1 << uint(bit%8)
			flipped := Sum(msg)
			msg[bit/8] ^= 1 << uint(bit%8)
			if flipped == orig {
				t.Fatalf("%d bytes: flipping bit %d did not change digest",
					n, bit)
			}
		}
	}
}

func TestInputNotModified(t *testing.T) {
	msg := []byte("abc")
	Sum(msg)
	if string(msg) != "abc" {
		t.Fatalf("input modified: %q", msg)
	}
}

func TestBlockLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Block did not panic on short block")
		}
	}()
	Block([4]uint32{init0, init1, init2, init3}, make([]byte, BlockSize-1))
}

func BenchmarkSum1K(b *testing.B) {
	msg := prg.Message([]byte("bench"), 1024)
	b.SetBytes(int64(len(msg)))
	for i := 0; i < b.N; i++ {
		Sum(msg)
	}
}
