//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package md5_test

import (
	"fmt"

	"github.com/markkurossi/mdhash/md5"
)

func ExampleSum() {
	fmt.Printf("%x\n", md5.Sum([]byte("abc")))
	// Output: 900150983cd24fb0d6963f7d28e17f72
}
