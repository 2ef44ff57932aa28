// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/text/encoding"
)

// archiveWalker is an interface that represents a file walker in an archive
type archiveWalker interface {
	Type() Format
	Next() (archiveEntry, error)
}

// archiveEntry is an interface that represents a file in an archive
type archiveEntry interface {
	IsRegular() bool
	Name() string
	Open() (io.ReadCloser, error)
	Size() int64
}

// extractEntries walks over all entries of the archive and writes the regular files
// next to the archive. The written paths are returned in the order of the entries.
func extractEntries(ctx context.Context, archive string, w archiveWalker, cfg *Config, enc encoding.Encoding, td *TelemetryData) ([]string, error) {
	dst := filepath.Dir(archive)
	var files []string

	for {
		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return files, err
		}

		// get next entry
		ae, err := w.Next()
		if err == io.EOF {
			return files, nil
		}
		if err != nil {
			return files, corruptArchive(archive, w.Type(), err)
		}

		// directories, links and other special entries are not written
		if !ae.IsRegular() {
			cfg.Logger().Debug("skip entry", "name", ae.Name())
			td.SkippedEntries++
			continue
		}

		// check size before anything is written
		if err := cfg.CheckExtractionSize(ae.Size()); err != nil {
			return files, fmt.Errorf("cannot extract %s: %w", ae.Name(), err)
		}

		p, n, err := extractEntry(archive, w.Type(), dst, ae, cfg, enc)
		td.ExtractionSize += n
		if err != nil {
			return files, err
		}
		td.ExtractedFiles++
		files = append(files, p)
		cfg.Logger().Debug("extracted entry", "name", ae.Name(), "path", p, "size", n)
	}
}

// extractEntry opens a single entry and writes it below dst.
func extractEntry(archive string, f Format, dst string, ae archiveEntry, cfg *Config, enc encoding.Encoding) (string, int64, error) {
	// an entry must never replace the archive it is read from
	p, err := entryPath(dst, ae.Name())
	if err != nil {
		return "", 0, err
	}
	if p == filepath.Clean(archive) {
		return "", 0, fmt.Errorf("entry %s would overwrite its own archive", ae.Name())
	}

	rc, err := ae.Open()
	if err != nil {
		return "", 0, corruptArchive(archive, f, fmt.Errorf("cannot open entry %s: %w", ae.Name(), err))
	}
	defer rc.Close()

	sr := &sourceReader{r: rc}
	p, n, err := writeEntry(sr, dst, ae.Name(), cfg, enc)
	if sr.err != nil {
		return p, n, corruptArchive(archive, f, fmt.Errorf("cannot read entry %s: %w", ae.Name(), sr.err))
	}
	return p, n, err
}
