// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// decompressZstdStream returns an io.Reader that decompresses src with zstandard algorithm.
// The decoder is returned as io.ReadCloser to release its resources after use.
func decompressZstdStream(src io.Reader) (io.Reader, error) {
	d, err := zstd.NewReader(src)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
