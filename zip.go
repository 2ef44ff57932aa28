// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"io"
	"os"

	"github.com/klauspost/compress/zip"
)

// extractZip writes all regular files of the zip archive src next to it. The
// content is converted to cfg.ZipEncoding() if one is configured.
func extractZip(ctx context.Context, src *os.File, cfg *Config, td *TelemetryData) ([]string, error) {
	cfg.Logger().Info("extracting zip", "archive", src.Name())

	reader, err := zip.NewReader(src, td.InputSize)
	if err != nil {
		return nil, corruptArchive(src.Name(), FormatZip, err)
	}
	return extractEntries(ctx, src.Name(), &zipWalker{zr: reader}, cfg, cfg.ZipEncoding(), td)
}

// zipWalker is a walker for zip files
type zipWalker struct {
	zr *zip.Reader
	fp int
}

// Type returns the format of zip files
func (z *zipWalker) Type() Format {
	return FormatZip
}

// Next returns the next entry in the zip archive
func (z *zipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.zr.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &zipEntry{z.zr.File[z.fp]}, nil
}

// zipEntry is an entry in a zip archive
type zipEntry struct {
	zf *zip.File
}

// IsRegular returns true if the entry is a regular file
func (z *zipEntry) IsRegular() bool {
	return z.zf.FileHeader.Mode().Type() == 0
}

// Name returns the name of the entry
func (z *zipEntry) Name() string {
	return z.zf.FileHeader.Name
}

// Open returns a reader for the entry
func (z *zipEntry) Open() (io.ReadCloser, error) {
	return z.zf.Open()
}

// Size returns the size of the entry
func (z *zipEntry) Size() int64 {
	return int64(z.zf.FileHeader.UncompressedSize64)
}
