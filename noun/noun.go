// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package noun implements the noun data model of the Nock virtual machine.
//
// A noun is either an atom, a non-negative integer of arbitrary width, or a
// cell, an ordered pair of two nouns. Atoms and cells are immutable and may
// be shared freely across goroutines.
//
// Atoms cross the package boundary as minimal little-endian byte strings.
// An atom has no intrinsic width; its bit length is the position of its
// highest set bit plus one, where the atom 0 has bit length 0.
package noun

import (
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"
)

// Noun is either an Atom or a *Cell.
type Noun interface {
	fmt.Stringer
	isNoun()
}

func (Atom) isNoun()  {}
func (*Cell) isNoun() {}

// Atom is a non-negative integer of arbitrary width.
// The zero value is the atom 0.
type Atom struct {
	val *big.Int // Normalized positive value; nil means zero
}

// New constructs an atom from an unsigned integer.
func New(v uint64) Atom {
	if v == 0 {
		return Atom{}
	}
	return Atom{new(big.Int).SetUint64(v)}
}

// FromBig constructs an atom from an arbitrary-width integer.
// The input is copied and must not be negative.
func FromBig(v *big.Int) Atom {
	switch v.Sign() {
	case -1:
		panic("noun: negative atom")
	case 0:
		return Atom{}
	}
	return Atom{new(big.Int).Set(v)}
}

// FromBytes constructs an atom from its little-endian byte representation.
// Zero bytes at the big end are permitted and ignored.
func FromBytes(buf []byte) Atom {
	v := new(big.Int).SetBytes(ReverseBytes(buf))
	if v.Sign() == 0 {
		return Atom{}
	}
	return Atom{v}
}

// Bytes returns the minimal little-endian representation of the atom.
// The atom 0 yields an empty slice.
func (a Atom) Bytes() []byte {
	if a.val == nil {
		return nil
	}
	return ReverseBytes(a.val.Bytes())
}

// BitLen returns the minimal number of bits needed to represent the atom.
// The atom 0 has bit length 0.
func (a Atom) BitLen() int {
	if a.val == nil {
		return 0
	}
	return a.val.BitLen()
}

// IsZero reports whether the atom is 0.
func (a Atom) IsZero() bool { return a.val == nil }

// Uint64 returns the value of the atom and reports whether it fits in an
// unsigned 64-bit integer.
func (a Atom) Uint64() (uint64, bool) {
	if a.val == nil {
		return 0, true
	}
	if !a.val.IsUint64() {
		return 0, false
	}
	return a.val.Uint64(), true
}

// Big returns a copy of the atom as an arbitrary-width integer.
func (a Atom) Big() *big.Int {
	if a.val == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.val)
}

func (a Atom) String() string {
	if a.val == nil {
		return "0"
	}
	return a.val.String()
}

// Cell is an ordered pair of nouns.
type Cell struct {
	head, tail Noun
	fp         atomic.Uint32 // Memoized structural fingerprint; 0 means unset
}

// Cons constructs the cell [h t].
func Cons(h, t Noun) *Cell {
	if h == nil || t == nil {
		panic("noun: nil noun")
	}
	return &Cell{head: h, tail: t}
}

// Head returns the first component of the pair.
func (c *Cell) Head() Noun { return c.head }

// Tail returns the second component of the pair.
func (c *Cell) Tail() Noun { return c.tail }

// String renders the cell in Nock syntax, where [a b c] is [a [b c]].
func (c *Cell) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(c.head.String())
	n := c.tail
	for {
		t, ok := n.(*Cell)
		if !ok {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(t.head.String())
		n = t.tail
	}
	sb.WriteByte(' ')
	sb.WriteString(n.String())
	sb.WriteByte(']')
	return sb.String()
}

// ReverseBytes returns a copy of buf with its byte order reversed.
// It converts between the big-endian order of big.Int and the little-endian
// order that atoms use on the wire.
func ReverseBytes(buf []byte) []byte {
	r := make([]byte, len(buf))
	for i, b := range buf {
		r[len(buf)-1-i] = b
	}
	return r
}
