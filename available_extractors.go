// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"os"
)

// extractFunc writes the content of the archive src next to it and returns
// the written paths in the order of the entries in the archive.
type extractFunc func(context.Context, *os.File, *Config, *TelemetryData) ([]string, error)

// availableExtractors is the collection of extractors per format. It is
// not modified after initialization.
var availableExtractors = map[Format]extractFunc{
	Format7Zip:   extract7Zip,
	FormatBrotli: streamExtractor(FormatBrotli, decompressBrotliStream),
	FormatBzip2:  streamExtractor(FormatBzip2, decompressBz2Stream),
	FormatGzip:   streamExtractor(FormatGzip, decompressGZipStream),
	FormatLZ4:    streamExtractor(FormatLZ4, decompressLZ4Stream),
	FormatSnappy: streamExtractor(FormatSnappy, decompressSnappyStream),
	FormatTar:    extractTar,
	FormatXz:     streamExtractor(FormatXz, decompressXzStream),
	FormatZip:    extractZip,
	FormatZstd:   streamExtractor(FormatZstd, decompressZstdStream),
}
