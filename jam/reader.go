// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jam

import (
	"bytes"

	"github.com/dsnet/golib/bits"
	"github.com/dsnet/golib/errs"

	"github.com/nockio/nock/noun"
)

// Cue decodes a jammed byte sequence into a noun.
//
// The decoder consumes exactly the significant bits of the input; an empty
// input, a truncated stream, a dangling back-reference, or residual bits
// after the outermost subterm all yield ErrMalformed.
func Cue(buf []byte) (noun.Noun, error) {
	n, err := cue(buf)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func cue(buf []byte) (n noun.Noun, err error) {
	defer errs.Recover(&err)
	var zr reader
	zr.rd.Init(buf)
	errs.Assert(zr.rd.size > 0, ErrMalformed)
	zr.cache = make(map[int64]noun.Noun)
	n = zr.decode()
	errs.Assert(zr.rd.off == zr.rd.size, ErrMalformed)
	return n, nil
}

// MustCue is like Cue but panics on malformed input.
// It is intended for inputs already known to be valid.
func MustCue(buf []byte) noun.Noun {
	n, err := Cue(buf)
	if err != nil {
		panic(err)
	}
	return n
}

// CueAtom decodes a noun from an atom produced by JamAtom.
func CueAtom(a noun.Atom) (noun.Noun, error) {
	return Cue(a.Bytes())
}

type reader struct {
	rd    bitReader
	cache map[int64]noun.Noun // Decoded subterms keyed by starting bit offset
}

// decode runs the tag dispatch loop with an explicit stack of open cells, so
// input depth is bounded by memory rather than the goroutine stack. Each
// decoded subterm is recorded at its starting offset; a back-reference is
// not recorded at its own offset.
func (zr *reader) decode() noun.Noun {
	type frame struct {
		off  int64     // Offset at which the cell began
		head noun.Noun // Decoded head, or nil while it is pending
	}
	var stack []*frame
	for {
		off := zr.rd.off
		var n noun.Noun
		switch {
		case !zr.rd.ReadBit(): // Atom
			n = noun.FromBytes(zr.rub())
			zr.cache[off] = n
		case !zr.rd.ReadBit(): // Cell
			stack = append(stack, &frame{off: off})
			continue
		default: // Back-reference
			n = zr.deref(zr.rub())
		}
		// Deliver the decoded subterm to the innermost open cell.
		for {
			if len(stack) == 0 {
				return n
			}
			f := stack[len(stack)-1]
			if f.head == nil {
				f.head = n
				break
			}
			stack = stack[:len(stack)-1]
			n = noun.Cons(f.head, n)
			zr.cache[f.off] = n
		}
	}
}

// rub decodes a mat-encoded value starting at the current offset and returns
// its little-endian bytes. The declared length is validated against the
// remaining input before any allocation sized by it.
func (zr *reader) rub() []byte {
	// Unary length-of-length, terminator inclusive.
	var s int
	for !zr.rd.ReadBit() {
		s++
	}
	if s == 0 {
		return nil // mat of 0
	}
	errs.Assert(s <= 63, ErrMalformed)
	// The low s-1 bits of the length, with the implicit high bit restored.
	l := int64(zr.rd.ReadBits(s-1)) | 1<<uint(s-1)
	errs.Assert(l <= zr.rd.size-zr.rd.off, ErrMalformed)
	// Value bits, low bit first, packed into little-endian bytes.
	buf := make([]byte, divCeil(int(l), 8))
	for i := range buf {
		n := 8
		if rem := int(l) - 8*i; rem < 8 {
			n = rem
		}
		buf[i] = byte(zr.rd.ReadBits(n))
	}
	return buf
}

// deref resolves a back-reference given the little-endian bytes of the
// referent's starting offset.
func (zr *reader) deref(buf []byte) noun.Noun {
	errs.Assert(len(buf) <= 8, ErrMalformed)
	var off uint64
	for i, b := range buf {
		off |= uint64(b) << uint(8*i)
	}
	errs.Assert(off>>63 == 0, ErrMalformed)
	n, ok := zr.cache[int64(off)]
	errs.Assert(ok, ErrMalformed)
	return n
}

// bitReader reads the significant bits of a byte string from the low end up,
// failing on any read past the highest set bit.
type bitReader struct {
	br   bits.Reader
	size int64 // Number of significant bits in the stream
	off  int64 // Number of bits consumed
}

func (br *bitReader) Init(buf []byte) {
	br.br.Reset(bytes.NewReader(buf))
	br.size = realSize(buf)
	br.off = 0
}

// ReadBits reads num bits from the low end of the remaining stream.
// This function panics if the stream ends first.
func (br *bitReader) ReadBits(num int) uint {
	errs.Assert(br.off+int64(num) <= br.size, ErrMalformed)
	val, _, err := br.br.ReadBits(num)
	errs.Panic(err)
	br.off += int64(num)
	return val
}

func (br *bitReader) ReadBit() bool {
	return br.ReadBits(1) == 1
}
