// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package jam

// Divide n by m, rounding the quotient up.
func divCeil(n, m int) int {
	return (n + m - 1) / m
}

// Number of bits needed to pad n-bits to a byte alignment.
func numPads(n int) int {
	return divCeil(n, 8)*8 - n
}

// Bit length of a non-negative integer; 0 has length 0.
func intLen(n int64) int {
	var l int
	for ; n > 0; n >>= 1 {
		l++
	}
	return l
}

// matLen computes the number of bits that mat occupies for a value of the
// given bit length.
func matLen(bitLen int) int64 {
	if bitLen == 0 {
		return 1
	}
	return int64(2*intLen(int64(bitLen)) + bitLen)
}

// realSize locates the highest set bit of the byte string and returns its
// position plus one. A string of zero bytes has size 0.
func realSize(buf []byte) int64 {
	for i := len(buf) - 1; i >= 0; i-- {
		if b := buf[i]; b != 0 {
			return 8*int64(i) + int64(intLen(int64(b)))
		}
	}
	return 0
}
