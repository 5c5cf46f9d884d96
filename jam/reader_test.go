// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jam

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nockio/nock/internal/testutil"
	"github.com/nockio/nock/noun"
)

func TestCueMalformed(t *testing.T) {
	for _, v := range []struct {
		name string
		buf  []byte
	}{
		{"empty input", nil},
		{"no significant bits", []byte{0x00}},
		{"no significant bits, long", []byte{0x00, 0x00, 0x00}},
		{"lone cell tag bit", []byte{0x01}},
		{"lone back-reference tag", []byte{0x03}},
		{"back-reference to start of stream", []byte{0x07}},
		{"back-reference into open cell", []byte{0x1d}},
		{"residual bit after atom 0", []byte{0x06}},
		{"length past end", []byte{0x08}},
		{"value past end", []byte{0x28}},
		{"cell missing tail", []byte{0x09}},
	} {
		n, err := Cue(v.buf)
		assert.Nil(t, n, v.name)
		assert.Equal(t, ErrMalformed, err, v.name)
	}
}

func TestCueBackRef(t *testing.T) {
	// The encoder re-emits the 4-bit atom 1 rather than back-reference it,
	// but the back-referenced spelling of [1 1] is still valid input.
	buf := testutil.MustDecodeBitGen(`
		01      # Cell
		1100    # Head: the atom 1
		11      # Tail: back-reference...
		100100  # ...to offset 2
	`)
	assert.Equal(t, []byte{0xf1, 0x24}, buf)

	n, err := Cue(buf)
	assert.Nil(t, err)
	assert.True(t, noun.Equal(noun.Cons(noun.New(1), noun.New(1)), n))

	// Re-encoding such input is never larger than its significant bits.
	assert.True(t, realSize(Jam(n)) <= realSize(buf))
}

func TestCueNonMinimalAtom(t *testing.T) {
	// An atom whose declared bit length exceeds its value's width decodes
	// to the smaller atom; jam never produces this spelling, so the
	// re-encoding shrinks.
	buf := testutil.MustDecodeBitGen(`
		01       # Cell
		0101000  # Head: the atom 1 padded to a declared length of 2
		10       # Tail: the atom 0
	`)
	assert.Equal(t, []byte{0xa1, 0x04}, buf)

	n, err := Cue(buf)
	assert.Nil(t, err)
	assert.True(t, noun.Equal(noun.Cons(noun.New(1), noun.New(0)), n))
	assert.True(t, realSize(Jam(n)) < realSize(buf))
}

func TestCueSoleLowBit(t *testing.T) {
	// Any spelling of the 2-bit stream for the atom 0 decodes to 0
	// regardless of trailing zero padding.
	for _, buf := range [][]byte{{0x02}, {0x02, 0x00}, {0x02, 0x00, 0x00, 0x00}} {
		n, err := Cue(buf)
		assert.Nil(t, err)
		assert.True(t, noun.Equal(noun.New(0), n))
	}
}

func TestMustCue(t *testing.T) {
	assert.True(t, noun.Equal(noun.New(1), MustCue([]byte{0x0c})))
	assert.PanicsWithValue(t, ErrMalformed, func() { MustCue(nil) })
}
