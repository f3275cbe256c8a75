// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The tracelogcat command prints the events in a tracelog stream, as written
// by the golang.org/x/exp/tracelog/stream package, as logfmt lines.
//
// With no arguments it reads the stream from stdin. Otherwise each argument
// names a file to read, in order. Streams compressed with zstd are
// decompressed.
//
// Example usage:
//
//	tracelogcat --provider MyCompany.MyComponent -l verbose trace.cbor.zst
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logfmt/logfmt"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/pflag"
	"golang.org/x/exp/tracelog"
	tlogfmt "golang.org/x/exp/tracelog/adapter/logfmt"
	"golang.org/x/exp/tracelog/stream"
	"golang.org/x/xerrors"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err != pflag.ErrHelp {
			fmt.Fprintln(os.Stderr, "tracelogcat:", err)
		}
		os.Exit(2)
	}
}

type filter struct {
	provider string
	level    tracelog.Level
}

func (f *filter) match(r *tracelog.Record) bool {
	if f.provider != "" && !strings.EqualFold(f.provider, r.Provider) {
		return false
	}
	if f.level != tracelog.LevelNone && r.Descriptor.Level > f.level {
		return false
	}
	return true
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("tracelogcat", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var f filter
	fs.StringVarP(&f.provider, "provider", "p", "", "only print events from the named provider")
	level := fs.StringP("level", "l", "", "only print events at or above this level (critical, error, warning, info, verbose)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *level != "" {
		l, ok := parseLevel(*level)
		if !ok {
			return xerrors.Errorf("unknown level %q", *level)
		}
		f.level = l
	}

	enc := logfmt.NewEncoder(stdout)
	if fs.NArg() == 0 {
		return cat(enc, &f, "stdin", stdin)
	}
	for _, name := range fs.Args() {
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		err = cat(enc, &f, name, file)
		file.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func cat(enc *logfmt.Encoder, f *filter, name string, in io.Reader) error {
	br := bufio.NewReader(in)
	src := io.Reader(br)
	if magic, _ := br.Peek(len(zstdMagic)); bytes.Equal(magic, zstdMagic) {
		zr, err := zstd.NewReader(br)
		if err != nil {
			return xerrors.Errorf("%s: %w", name, err)
		}
		defer zr.Close()
		src = zr
	}

	var p tlogfmt.Printer
	r := stream.NewReader(src)
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return xerrors.Errorf("%s: %w", name, err)
		}
		if !f.match(&rec) {
			continue
		}
		// the stream carries no timestamps
		if err := p.Record(enc, time.Time{}, &rec); err != nil {
			return err
		}
	}
}

func parseLevel(s string) (tracelog.Level, bool) {
	for l := tracelog.LevelCritical; l <= tracelog.LevelVerbose; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, true
		}
	}
	return tracelog.LevelNone, false
}
