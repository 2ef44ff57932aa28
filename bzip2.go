// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"compress/bzip2"
	"io"
)

// decompressBz2Stream returns an io.Reader that decompresses src with bzip2 algorithm
func decompressBz2Stream(src io.Reader) (io.Reader, error) {
	return bzip2.NewReader(src), nil
}
