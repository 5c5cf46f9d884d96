// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package jam implements the jam and cue serialization of Nock nouns.
//
// jam encodes a noun as a compact bit stream, sharing repeated subterms
// through back-references; cue decodes such a stream back into a noun.
// The stream is packed least-significant-bit first into bytes, low byte
// first, so the octet form of an encoding is the minimal little-endian
// representation of the stream read as one large integer. The format is the
// one used by the reference Nock implementations.
//
// Described in emission order, every subterm starts with a tag:
//
//	0    atom; followed by the length-prefixed value (mat)
//	1,0  cell; followed by the head encoding, then the tail encoding
//	1,1  back-reference; followed by the starting bit offset (mat) of an
//	     earlier, structurally equal subterm
//
// mat encodes an unsigned value as a unary-coded length-of-length, the bit
// length of the value with its implicit leading one dropped, and finally the
// bits of the value itself, all low-bit first. mat of 0 is the single bit 1.
package jam

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return string(e) }

var (
	// ErrMalformed reports input that does not decode to a noun.
	ErrMalformed = Error("jam: stream is malformed")
)
