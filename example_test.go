//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mdhash_test

import (
	"fmt"
	"log"

	"github.com/markkurossi/mdhash"
)

func ExampleLookup() {
	alg, err := mdhash.Lookup("sha-1")
	if err != nil {
		log.Fatal(err)
	}
	digest, err := alg.Hash([]byte("abc"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s/%d: %x\n", alg.Name(), alg.DigestSize(), digest)
	// Output: sha-1/160: a9993e364706816aba3e25717850c26c9cd0d89d
}
