//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package mdhash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markkurossi/mdhash/md5"
	"github.com/markkurossi/mdhash/pkg/math"
	"github.com/markkurossi/mdhash/sha1"
)

// Algorithm describes a message digest algorithm and computes its
// digests. All sizes are in bits. Algorithms are stateless and safe
// for concurrent use.
type Algorithm interface {
	// Name returns the algorithm name.
	Name() string

	// BlockSize returns the size of the blocks the algorithm
	// operates on.
	BlockSize() int

	// DigestSize returns the size of the digest.
	DigestSize() int

	// WordSize returns the size of the working variables.
	WordSize() int

	// MaxSize returns the maximum message size. The value 0 means
	// that the message size is unbounded. The value is informational;
	// the limit is enforced by the algorithm's padding.
	MaxSize() uint64

	// Hash returns the digest of the message. The function returns
	// an error if the message is too long for the algorithm.
	Hash(msg []byte) ([]byte, error)
}

// Algorithm names.
const (
	NameMD5    = "md5"
	NameSHA1   = "sha-1"
	NameSHA1LE = "sha-1-le"
)

var (
	// MD5 implements the MD5 algorithm.
	MD5 Algorithm = md5Algorithm{}

	// SHA1 implements the SHA-1 algorithm with the standard
	// big-endian digest.
	SHA1 Algorithm = sha1Algorithm{}

	// SHA1LE implements the SHA-1 algorithm with the state words
	// serialized in little-endian byte order.
	SHA1LE Algorithm = sha1Algorithm{
		le: true,
	}
)

// ErrUnknownAlgorithm is returned by Lookup for unknown algorithm
// names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var algorithms = []Algorithm{MD5, SHA1, SHA1LE}

var aliases = map[string]string{
	"sha1":   NameSHA1,
	"sha1le": NameSHA1LE,
}

// Algorithms returns all supported algorithms.
func Algorithms() []Algorithm {
	result := make([]Algorithm, len(algorithms))
	copy(result, algorithms)
	return result
}

// Lookup returns the algorithm by its name. The name is case
// insensitive.
func Lookup(name string) (Algorithm, error) {
	n := strings.ToLower(name)
	if alias, ok := aliases[n]; ok {
		n = alias
	}
	for _, alg := range algorithms {
		if alg.Name() == n {
			return alg, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
}

type md5Algorithm struct{}

func (alg md5Algorithm) Name() string    { return NameMD5 }
func (alg md5Algorithm) BlockSize() int  { return md5.BlockSize * math.ByteBits }
func (alg md5Algorithm) DigestSize() int { return md5.Size * math.ByteBits }
func (alg md5Algorithm) WordSize() int   { return math.Uint32Bits }
func (alg md5Algorithm) MaxSize() uint64 { return 0 }

func (alg md5Algorithm) Hash(msg []byte) ([]byte, error) {
	sum := md5.Sum(msg)
	return sum[:], nil
}

type sha1Algorithm struct {
	le bool
}

func (alg sha1Algorithm) Name() string {
	if alg.le {
		return NameSHA1LE
	}
	return NameSHA1
}

func (alg sha1Algorithm) BlockSize() int  { return sha1.BlockSize * math.ByteBits }
func (alg sha1Algorithm) DigestSize() int { return sha1.Size * math.ByteBits }
func (alg sha1Algorithm) WordSize() int   { return math.Uint32Bits }
func (alg sha1Algorithm) MaxSize() uint64 { return math.MaxUint64 }

func (alg sha1Algorithm) Hash(msg []byte) ([]byte, error) {
	var sum [sha1.Size]byte
	var err error
	if alg.le {
		sum, err = sha1.SumLE(msg)
	} else {
		sum, err = sha1.Sum(msg)
	}
	if err != nil {
		return nil, err
	}
	return sum[:], nil
}
