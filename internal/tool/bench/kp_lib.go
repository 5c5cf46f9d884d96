// Copyright 2023, The nockio Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	RegisterCompressor("fl", func(w io.Writer) io.WriteCloser {
		zw, err := flate.NewWriter(w, flate.DefaultCompression)
		if err != nil {
			panic(err)
		}
		return zw
	})
	RegisterDecompressor("fl", func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})
}
