//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/bits"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/prg"
	"github.com/markkurossi/mdhash/timing"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Params specify the mdsum parameters.
type Params struct {
	Algorithm string
	Timing    bool
	List      bool

	// Bench specifies the benchmark message size in bytes. The value
	// 0 disables benchmarking.
	Bench int

	// Seed specifies the seed of the benchmark message.
	Seed string
}

// NewParams returns new params object, initialized with the default
// values.
func NewParams() *Params {
	return &Params{
		Algorithm: mdhash.NameMD5,
		Seed:      "mdsum",
	}
}

func main() {
	params := NewParams()
	flag.StringVar(&params.Algorithm, "a", params.Algorithm,
		"digest algorithm: md5, sha-1, sha-1-le")
	flag.BoolVar(&params.Timing, "timing", false, "print timing report")
	flag.BoolVar(&params.List, "list", false, "list digest algorithms")
	flag.IntVar(&params.Bench, "bench", 0,
		"benchmark all algorithms with a `size` byte message")
	flag.StringVar(&params.Seed, "seed", params.Seed, "benchmark message seed")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if params.List {
		printAlgorithms(os.Stdout, mdhash.Algorithms())
		return
	}
	if params.Bench > 0 {
		err := benchmark(os.Stdout, mdhash.Algorithms(), params.Bench,
			[]byte(params.Seed))
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	alg, err := mdhash.Lookup(params.Algorithm)
	if err != nil {
		log.Fatal(err)
	}

	logger := NewLogger(os.Stderr)
	tm := timing.NewTiming()

	var failed int
	if flag.NArg() == 0 {
		if err := sum(os.Stdout, tm, alg, "-", os.Stdin); err != nil {
			logger.Errorf("-", "%s", err)
			failed++
		}
	}
	for _, arg := range flag.Args() {
		f, err := os.Open(arg)
		if err != nil {
			logger.Errorf(arg, "%s", err)
			failed++
			continue
		}
		err = sum(os.Stdout, tm, alg, arg, f)
		f.Close()
		if err != nil {
			logger.Errorf(arg, "%s", err)
			failed++
		}
	}
	if params.Timing {
		tm.Print(os.Stdout)
	}
	if failed > 0 {
		pprof.StopCPUProfile()
		log.Fatalf("%d input(s) failed", failed)
	}
}

// sum reads the whole input, prints its digest, and records the
// hashing time into tm.
func sum(out io.Writer, tm *timing.Timing, alg mdhash.Algorithm,
	name string, in io.Reader) error {

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	tm.Sample("Read "+name, 0)

	digest, err := alg.Hash(data)
	if err != nil {
		return err
	}
	tm.Sample(alg.Name()+" "+name, uint64(len(data)))

	fmt.Fprintf(out, "%x  %s\n", digest, name)
	return nil
}

// benchmark hashes a size byte deterministic message with all
// algorithms and prints the digests and a timing report.
func benchmark(out io.Writer, algs []mdhash.Algorithm, size int,
	seed []byte) error {

	msg := prg.Message(seed, size)

	tm := timing.NewTiming()
	for _, alg := range algs {
		digest, err := alg.Hash(msg)
		if err != nil {
			return err
		}
		tm.Sample(alg.Name(), uint64(len(msg)))
		fmt.Fprintf(out, "%-10s %x\n", alg.Name(), digest)
	}
	tm.Print(out)
	return nil
}

func printAlgorithms(out io.Writer, algs []mdhash.Algorithm) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Algorithm").SetAlign(tabulate.ML)
	tab.Header("Block").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.MR)
	tab.Header("Word").SetAlign(tabulate.MR)
	tab.Header("Max").SetAlign(tabulate.MR)

	for _, alg := range algs {
		row := tab.Row()
		row.Column(alg.Name())
		row.Column(strconv.Itoa(alg.BlockSize()))
		row.Column(strconv.Itoa(alg.DigestSize()))
		row.Column(strconv.Itoa(alg.WordSize()))
		row.Column(maxSize(alg.MaxSize()))
	}
	tab.Print(out)
}

// maxSize formats the maximum message size in bits.
func maxSize(max uint64) string {
	switch {
	case max == 0:
		return "unbounded"
	case max&(max+1) == 0:
		return "2" + superscript.Itoa(bits.Len64(max)) + "-1"
	default:
		return strconv.FormatUint(max, 10)
	}
}
