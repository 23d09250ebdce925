//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package mdhash implements the legacy MD5 and SHA-1 message digests
// over in-memory messages. The algorithms are exposed through the
// Algorithm interface which describes the block geometry of each
// algorithm and computes its digests:
//
//	alg, err := mdhash.Lookup("sha-1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	digest, err := alg.Hash([]byte("abc"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The SHA1 algorithm returns the standard big-endian SHA-1 digest.
// The SHA1LE algorithm serializes each of the five state words in
// little-endian byte order for compatibility with digests created by
// implementations using that format.
//
// Both MD5 and SHA-1 are cryptographically broken and must only be
// used for compatibility.
package mdhash
