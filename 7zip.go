// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"io"
	"os"

	"github.com/bodgit/sevenzip"
)

// extract7Zip writes all regular files of the 7zip archive src next to it.
func extract7Zip(ctx context.Context, src *os.File, cfg *Config, td *TelemetryData) ([]string, error) {
	cfg.Logger().Info("extracting 7zip", "archive", src.Name())

	reader, err := sevenzip.NewReader(src, td.InputSize)
	if err != nil {
		return nil, corruptArchive(src.Name(), Format7Zip, err)
	}
	return extractEntries(ctx, src.Name(), &sevenZipWalker{r: reader}, cfg, nil, td)
}

// sevenZipWalker is a walker for 7zip files
type sevenZipWalker struct {
	r  *sevenzip.Reader
	fp int
}

// Type returns the format of 7zip files
func (z *sevenZipWalker) Type() Format {
	return Format7Zip
}

// Next returns the next entry in the 7zip file
func (z *sevenZipWalker) Next() (archiveEntry, error) {
	if z.fp >= len(z.r.File) {
		return nil, io.EOF
	}
	defer func() { z.fp++ }()
	return &sevenZipEntry{z.r.File[z.fp]}, nil
}

// sevenZipEntry is an entry in a 7zip file
type sevenZipEntry struct {
	f *sevenzip.File
}

// IsRegular returns true if the 7zip entry is a regular file
func (z *sevenZipEntry) IsRegular() bool {
	return z.f.FileInfo().Mode().IsRegular()
}

// Name returns the name of the 7zip entry
func (z *sevenZipEntry) Name() string {
	return z.f.Name
}

// Open returns a reader for the 7zip entry
func (z *sevenZipEntry) Open() (io.ReadCloser, error) {
	return z.f.Open()
}

// Size returns the size of the 7zip entry
func (z *sevenZipEntry) Size() int64 {
	return z.f.FileInfo().Size()
}
