// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"io"

	"github.com/klauspost/compress/snappy"
)

// decompressSnappyStream returns an io.Reader that decompresses framed snappy from src
func decompressSnappyStream(src io.Reader) (io.Reader, error) {
	return snappy.NewReader(src), nil
}
