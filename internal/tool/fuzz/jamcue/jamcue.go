// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

package jamcue

import (
	"github.com/nockio/nock/jam"
	"github.com/nockio/nock/noun"
)

func Fuzz(data []byte) int {
	n, err := jam.Cue(data)
	if err != nil {
		return 0
	}
	testRoundTrip(n)
	return 1
}

// testRoundTrip encodes the noun and decodes it again, checking that the
// result is structurally identical.
func testRoundTrip(want noun.Noun) {
	buf := jam.Jam(want)
	got, err := jam.Cue(buf)
	if err != nil {
		panic(err)
	}
	if !noun.Equal(got, want) {
		panic("mismatching nouns")
	}
}
