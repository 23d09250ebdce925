//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package timing

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		size FileSize
		str  string
	}{
		{0, "0B"},
		{1000, "1000B"},
		{1001, "1kB"},
		{2500000, "2MB"},
		{3000000001, "3GB"},
		{4000000000001, "4TB"},
	}
	for _, test := range tests {
		if got := test.size.String(); got != test.str {
			t.Errorf("FileSize(%d)=%s, expected %s", test.size, got, test.str)
		}
	}
}

func TestThroughput(t *testing.T) {
	if got := Throughput(2000000, time.Second); got != "2MB/s" {
		t.Errorf("Throughput=%s", got)
	}
	if got := Throughput(100, 0); got != "-" {
		t.Errorf("Throughput with zero duration=%s", got)
	}
}

func TestSamples(t *testing.T) {
	timing := NewTiming()
	a := timing.Sample("md5", 100)
	b := timing.Sample("sha-1", 200)
	if !b.Start.Equal(a.End) {
		t.Fatalf("sample does not start from the end of the previous one")
	}
	if timing.Total() < a.Duration()+b.Duration() {
		t.Fatalf("total %v shorter than samples", timing.Total())
	}

	var buf bytes.Buffer
	timing.Print(&buf)
	out := buf.String()
	for _, label := range []string{"md5", "sha-1", "Total", "300B"} {
		if !strings.Contains(out, label) {
			t.Errorf("report does not contain %q:\n%s", label, out)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTiming().Print(&buf)
	if buf.Len() != 0 {
		t.Errorf("empty timing printed %q", buf.String())
	}
}
