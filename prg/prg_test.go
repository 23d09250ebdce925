//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package prg

import (
	"bytes"
	"testing"
)

func TestDeterministic(t *testing.T) {
	a := Message([]byte("seed"), 200)
	b := Message([]byte("seed"), 200)
	if !bytes.Equal(a, b) {
		t.Fatalf("same seed produced different messages")
	}
	c := Message([]byte("Seed"), 200)
	if bytes.Equal(a, c) {
		t.Fatalf("different seeds produced identical messages")
	}
}

func TestReaderContinues(t *testing.T) {
	r := New([]byte{1, 2, 3})
	var first, second [64]byte
	r.Read(first[:])
	r.Read(second[:])
	if first == second {
		t.Fatalf("keystream repeated")
	}

	all := Message([]byte{1, 2, 3}, 128)
	if !bytes.Equal(all[:64], first[:]) || !bytes.Equal(all[64:], second[:]) {
		t.Fatalf("chunked reads differ from a single read")
	}
}

func TestEmptySeed(t *testing.T) {
	msg := Message(nil, 32)
	if len(msg) != 32 {
		t.Fatalf("unexpected length %d", len(msg))
	}
	if bytes.Equal(msg, make([]byte, 32)) {
		t.Fatalf("zero keystream")
	}
}
