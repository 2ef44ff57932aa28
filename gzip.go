// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// decompressGZipStream returns an io.Reader that decompresses src with gzip algorithm.
// The gzip header is read immediately, so src is rejected early if it is not gzip.
func decompressGZipStream(src io.Reader) (io.Reader, error) {
	return gzip.NewReader(src)
}
