// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// entryPath joins dst with the slash separated entry name. Names that would
// leave dst are rejected with ErrPathTraversal.
func entryPath(dst string, name string) (string, error) {
	// check if a name is provided
	if len(name) == 0 {
		return "", fmt.Errorf("cannot create file without name")
	}

	// absolute names are never local
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, name)
	}

	// adjust path to be os specific
	rel := filepath.Join(strings.Split(name, "/")...)
	// "." names the destination directory itself
	if !filepath.IsLocal(rel) || rel == "." {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, name)
	}
	return filepath.Join(dst, rel), nil
}

// writeEntry writes the content of src to the entry name below dst and returns
// the written path together with the number of written bytes.
//
// Missing parent directories are created with cfg.CustomCreateDirMode(). If enc is
// not nil, the content is converted to enc while it is copied and characters that
// cannot be represented are replaced.
func writeEntry(src io.Reader, dst string, name string, cfg *Config, enc encoding.Encoding) (string, int64, error) {
	p, err := entryPath(dst, name)
	if err != nil {
		return "", 0, err
	}

	// tar entries may point into directories that do not exist yet
	t := cfg.Target()
	if err := t.CreateDir(filepath.Dir(p), cfg.CustomCreateDirMode()); err != nil {
		return p, 0, fmt.Errorf("cannot create directory: %w", err)
	}

	if enc != nil {
		src = transform.NewReader(src, encoding.ReplaceUnsupported(enc.NewEncoder()))
	}

	n, err := t.CreateFile(p, src, cfg.CustomDecompressFileMode(), cfg.Overwrite(), cfg.MaxExtractionSize())
	if err != nil {
		return p, n, fmt.Errorf("cannot create file %s: %w", p, err)
	}
	return p, n, nil
}
