// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"archive/tar"
	"context"
	"io"
	"os"
)

// extractTar writes all regular files of the tar archive src next to it.
//
// Long names (GNU long name records and PAX path records) are resolved by
// archive/tar before a header is returned, so every entry carries its full name.
func extractTar(ctx context.Context, src *os.File, cfg *Config, td *TelemetryData) ([]string, error) {
	cfg.Logger().Info("extracting tar", "archive", src.Name())
	return extractEntries(ctx, src.Name(), &tarWalker{tr: tar.NewReader(src)}, cfg, nil, td)
}

// tarWalker is a walker for tar files
type tarWalker struct {
	tr *tar.Reader
}

// Type returns the format of tar files
func (t *tarWalker) Type() Format {
	return FormatTar
}

// Next returns the next entry in the tar archive
func (t *tarWalker) Next() (archiveEntry, error) {
	hdr, err := t.tr.Next()
	if err != nil {
		return nil, err
	}
	return &tarEntry{hdr, t.tr}, nil
}

// tarEntry is an entry in a tar archive
type tarEntry struct {
	hdr *tar.Header
	tr  *tar.Reader
}

// IsRegular returns true if the entry is a regular file
func (t *tarEntry) IsRegular() bool {
	return t.hdr.Typeflag == tar.TypeReg
}

// Name returns the name of the entry
func (t *tarEntry) Name() string {
	return t.hdr.Name
}

// Open returns a reader for the entry
func (t *tarEntry) Open() (io.ReadCloser, error) {
	return io.NopCloser(t.tr), nil
}

// Size returns the size of the entry
func (t *tarEntry) Size() int64 {
	return t.hdr.Size
}
