// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "github.com/nockio/nock/noun"

// GenNoun generates a pseudo-random noun with roughly the given number of
// atom leaves. Already generated subterms are reused occasionally so that
// the output exercises subterm sharing.
func GenNoun(r *Rand, size int) noun.Noun {
	var pool []noun.Noun
	var gen func(size int) noun.Noun
	gen = func(size int) (n noun.Noun) {
		defer func() { pool = append(pool, n) }()
		if size > 1 && len(pool) > 0 && r.Intn(4) == 0 {
			return pool[r.Intn(len(pool))]
		}
		if size <= 1 {
			return GenAtom(r, r.Intn(9))
		}
		half := 1 + r.Intn(size-1)
		return noun.Cons(gen(half), gen(size-half))
	}
	return gen(size)
}

// GenAtom generates a pseudo-random atom of up to n bytes.
func GenAtom(r *Rand, n int) noun.Atom {
	return noun.FromBytes(r.Bytes(n))
}

// GenChain generates the right-nested chain [a a ... a 0] of the given
// depth.
func GenChain(a noun.Noun, depth int) noun.Noun {
	n := noun.Noun(noun.New(0))
	for i := 0; i < depth; i++ {
		n = noun.Cons(a, n)
	}
	return n
}
