// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jam

import (
	"github.com/dsnet/golib/bits"

	"github.com/nockio/nock/internal"
	"github.com/nockio/nock/noun"
)

// Jam encodes a noun as its jammed byte sequence.
//
// The encoding of a subterm that occurred earlier in the stream is either a
// back-reference to the first occurrence or a verbatim re-emission,
// whichever is shorter; ties go to the re-emission.
func Jam(n noun.Noun) []byte {
	zw := writer{
		bb:    bits.NewBuffer(nil),
		cache: make(map[uint32][]*jamEntry),
	}
	zw.encode(n)
	return zw.bb.Bytes()
}

// JamAtom encodes a noun as an atom holding the jammed bit stream.
func JamAtom(n noun.Noun) noun.Atom {
	return noun.FromBytes(Jam(n))
}

type writer struct {
	bb    *bits.Buffer
	cache map[uint32][]*jamEntry // Fingerprint-keyed buckets of first emissions
}

// jamEntry records the bit range of the first emission of a subterm.
// end stays 0 while the emission is still open.
type jamEntry struct {
	n        noun.Noun
	off, end int64
}

// encode walks the noun with an explicit work stack, so input depth is
// bounded by memory rather than the goroutine stack. A work item either
// emits a subterm or, once the head and tail emissions of a cell are
// complete, closes its cache entry.
func (zw *writer) encode(n noun.Noun) {
	type work struct {
		n noun.Noun
		e *jamEntry
	}
	stack := []work{{n: n}}
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w.e != nil {
			w.e.end = int64(zw.bb.BitsWritten())
			continue
		}
		switch n := w.n.(type) {
		case noun.Atom:
			zw.atom(n)
		case *noun.Cell:
			if zw.repeat(n) {
				continue
			}
			e := zw.insert(n)
			zw.bb.WriteBit(true)
			zw.bb.WriteBit(false)
			stack = append(stack, work{e: e}, work{n: n.Tail()}, work{n: n.Head()})
		default:
			panic(internal.Error("jam: invalid noun"))
		}
	}
}

// atom emits an atom subterm.
func (zw *writer) atom(a noun.Atom) {
	if a.IsZero() {
		// 0 is its own shortest encoding and is never cached; no
		// back-reference can beat 2 bits.
		zw.bb.WriteBit(false)
		zw.bb.WriteBit(true)
		return
	}
	if zw.repeat(a) {
		return
	}
	e := zw.insert(a)
	zw.bb.WriteBit(false)
	zw.mat(a.Bytes(), a.BitLen())
	e.end = int64(zw.bb.BitsWritten())
}

// repeat looks for an earlier emission of n and, if one exists, emits either
// a back-reference to it or a verbatim copy of it, whichever costs fewer
// bits. It reports whether n was handled.
func (zw *writer) repeat(n noun.Noun) bool {
	e := zw.lookup(n)
	if e == nil {
		return false
	}
	if e.end == 0 {
		// A subterm cannot repeat an enclosing cell; trees are finite.
		panic(internal.Error("jam: repeat of open subterm"))
	}
	direct := e.end - e.off
	ref := 2 + matLen(intLen(e.off))
	if direct <= ref {
		zw.copyBits(e.off, e.end)
	} else {
		zw.bb.WriteBit(true)
		zw.bb.WriteBit(true)
		off := noun.New(uint64(e.off))
		zw.mat(off.Bytes(), off.BitLen())
	}
	return true
}

// mat emits the length-prefixed form of a value given its minimal
// little-endian bytes and bit length.
func (zw *writer) mat(buf []byte, bitLen int) {
	if bitLen == 0 {
		zw.bb.WriteBit(true)
		return
	}
	s := uint(intLen(int64(bitLen)))
	zw.bb.WriteBits(1<<s, int(s+1))                     // Unary length-of-length
	zw.bb.WriteBits(uint(bitLen)&^(1<<(s-1)), int(s-1)) // Length, implicit high bit dropped
	for i, b := range buf {                             // Value, low bit first
		n := 8
		if rem := bitLen - 8*i; rem < 8 {
			n = rem
		}
		zw.bb.WriteBits(uint(b), n)
	}
}

// copyBits re-emits the bit range [lo, hi) of the output written so far.
// Back-references embedded in the range hold absolute offsets and stay
// valid under copying. No cache entries are created for the copy.
func (zw *writer) copyBits(lo, hi int64) {
	buf := zw.bb.Bytes()
	for i := lo; i < hi; i++ {
		zw.bb.WriteBit(bits.Get(buf, int(i)))
	}
}

func (zw *writer) lookup(n noun.Noun) *jamEntry {
	for _, e := range zw.cache[noun.Hash(n)] {
		if noun.Equal(e.n, n) {
			return e
		}
	}
	return nil
}

func (zw *writer) insert(n noun.Noun) *jamEntry {
	e := &jamEntry{n: n, off: int64(zw.bb.BitsWritten())}
	fp := noun.Hash(n)
	zw.cache[fp] = append(zw.cache[fp], e)
	return e
}
