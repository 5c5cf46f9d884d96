// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the jam encoding against general-purpose
// compressors with respect to encode speed, decode speed, and output size.
//
// jam already shares repeated subterms through back-references, so a
// general-purpose compressor running over jammed output measures how much
// redundancy the back-reference heuristic leaves behind. Individual
// compressors register themselves under a short name.
package bench

import (
	"bytes"
	"io"

	"github.com/nockio/nock/internal/testutil"
	"github.com/nockio/nock/jam"
	"github.com/nockio/nock/noun"
)

type Compressor func(io.Writer) io.WriteCloser
type Decompressor func(io.Reader) io.ReadCloser

var (
	Compressors   = make(map[string]Compressor)
	Decompressors = make(map[string]Decompressor)
)

func RegisterCompressor(name string, comp Compressor) {
	Compressors[name] = comp
}

func RegisterDecompressor(name string, decomp Decompressor) {
	Decompressors[name] = decomp
}

// Corpus generates a deterministic set of nouns for benchmarking, together
// with their jammed forms.
func Corpus(seed, count, size int) (nouns []noun.Noun, jams [][]byte) {
	r := testutil.NewRand(seed)
	for i := 0; i < count; i++ {
		n := testutil.GenNoun(r, size)
		nouns = append(nouns, n)
		jams = append(jams, jam.Jam(n))
	}
	return nouns, jams
}

// CompressedSize reports the size of buf after running it through the named
// compressor.
func CompressedSize(name string, buf []byte) int {
	bb := new(bytes.Buffer)
	zw := Compressors[name](bb)
	if _, err := zw.Write(buf); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return bb.Len()
}

// RoundTrip runs buf through the named compressor and decompressor and
// reports whether the output matches.
func RoundTrip(name string, buf []byte) bool {
	bb := new(bytes.Buffer)
	zw := Compressors[name](bb)
	if _, err := zw.Write(buf); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	zr := Decompressors[name](bb)
	got, err := io.ReadAll(zr)
	if err != nil {
		panic(err)
	}
	if err := zr.Close(); err != nil {
		panic(err)
	}
	return bytes.Equal(got, buf)
}
