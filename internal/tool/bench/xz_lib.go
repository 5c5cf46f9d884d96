// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterCompressor("xz", func(w io.Writer) io.WriteCloser {
		zw, err := xz.NewWriter(w)
		if err != nil {
			panic(err)
		}
		return zw
	})
	RegisterDecompressor("xz", func(r io.Reader) io.ReadCloser {
		zr, err := xz.NewReader(r)
		if err != nil {
			panic(err)
		}
		return io.NopCloser(zr)
	})
}
