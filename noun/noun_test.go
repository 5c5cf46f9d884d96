// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package noun

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtoms(t *testing.T) {
	zero := New(0)
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.BitLen())
	assert.Equal(t, []byte(nil), zero.Bytes())
	assert.Equal(t, "0", zero.String())

	one := New(1)
	assert.False(t, one.IsZero())
	assert.Equal(t, 1, one.BitLen())
	assert.Equal(t, []byte{0x01}, one.Bytes())

	v, ok := New(1 << 40).Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<40, v)

	big1 := FromBig(new(big.Int).Lsh(big.NewInt(1), 100))
	assert.Equal(t, 101, big1.BitLen())
	_, ok = big1.Uint64()
	assert.False(t, ok)
}

func TestAtomBytes(t *testing.T) {
	// Little-endian, minimal; zero bytes at the big end are ignored on
	// input and never produced on output.
	a := FromBytes([]byte{0x34, 0x12})
	assert.Equal(t, []byte{0x34, 0x12}, a.Bytes())
	assert.Equal(t, 13, a.BitLen())

	b := FromBytes([]byte{0x34, 0x12, 0x00, 0x00})
	assert.True(t, Equal(a, b))
	assert.Equal(t, []byte{0x34, 0x12}, b.Bytes())

	assert.True(t, FromBytes(nil).IsZero())
	assert.True(t, FromBytes([]byte{0x00, 0x00}).IsZero())

	v, ok := a.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(0x1234), v)
}

func TestBigCopies(t *testing.T) {
	v := big.NewInt(42)
	a := FromBig(v)
	v.SetInt64(7) // Mutating the input must not affect the atom
	assert.Equal(t, "42", a.String())

	w := a.Big()
	w.SetInt64(7) // Mutating the output must not affect the atom
	assert.Equal(t, "42", a.String())

	assert.Panics(t, func() { FromBig(big.NewInt(-1)) })
}

func TestCells(t *testing.T) {
	c := Cons(New(1), Cons(New(2), New(3)))
	assert.True(t, Equal(New(1), c.Head()))
	assert.Equal(t, "[1 2 3]", c.String())
	assert.Equal(t, "[[1 2] 3]", Cons(Cons(New(1), New(2)), New(3)).String())

	assert.Panics(t, func() { Cons(nil, New(0)) })
}

func TestEqual(t *testing.T) {
	a := Cons(New(1), Cons(New(2), New(3)))
	b := Cons(New(1), Cons(New(2), New(3)))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(a, a))
	assert.False(t, Equal(a, Cons(New(1), Cons(New(2), New(4)))))
	assert.False(t, Equal(a, New(1)))
	assert.False(t, Equal(New(1), a))
	assert.True(t, Equal(New(0), Atom{}))
}

func TestHash(t *testing.T) {
	a := Cons(New(1), Cons(New(2), New(3)))
	b := Cons(New(1), Cons(New(2), New(3)))
	assert.Equal(t, Hash(a), Hash(b))
	assert.NotEqual(t, uint32(0), Hash(a))

	// Memoized on the cell; repeated calls are stable.
	assert.Equal(t, Hash(a), Hash(a))

	assert.NotEqual(t, Hash(New(1)), Hash(Cons(New(1), New(0))))
}

func TestReverseBytes(t *testing.T) {
	assert.Equal(t, []byte{}, ReverseBytes(nil))
	assert.Equal(t, []byte{0x03, 0x02, 0x01}, ReverseBytes([]byte{0x01, 0x02, 0x03}))

	buf := []byte{0xaa, 0xbb}
	assert.Equal(t, buf, ReverseBytes(ReverseBytes(buf)))
}
