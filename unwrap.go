// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"path/filepath"
)

// LeafFunc is called by [Decompress] for every file that is not an archive.
// Returning an error stops the decompression and the error is returned by
// [Decompress] unmodified.
type LeafFunc func(path string) error

// Decompress unwraps the file at path until only files remain that are not
// identified as archive, and calls onLeaf for each of them. Archives are
// visited depth-first, and the files of an archive in the order of its entries.
//
// A file that is not an archive is passed to onLeaf as is. The format override
// of cfg applies to path only, the files produced while unwrapping are identified
// by their extension. Intermediate files are left on disk, removing them is up to
// the caller. The first error aborts the decompression.
func Decompress(ctx context.Context, path string, onLeaf LeafFunc, cfg *Config) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	if onLeaf == nil {
		onLeaf = func(string) error { return nil }
	}

	walkCfg := cfg.withoutFormat()
	if cfg.Format() != FormatUnknown {
		return unwrapArchive(ctx, path, onLeaf, cfg, walkCfg)
	}
	return visit(ctx, path, onLeaf, walkCfg)
}

// visit passes path to onLeaf or unwraps it, if it is an archive.
func visit(ctx context.Context, path string, onLeaf LeafFunc, cfg *Config) error {
	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return err
	}

	if !IsCompressed(path) {
		return onLeaf(path)
	}
	return unwrapArchive(ctx, path, onLeaf, cfg, cfg)
}

// unwrapArchive extracts path with extractCfg and visits every produced file with walkCfg.
func unwrapArchive(ctx context.Context, path string, onLeaf LeafFunc, extractCfg *Config, walkCfg *Config) error {
	extractCfg.Logger().Debug("decompressing", "file", filepath.Base(path))

	files, err := Extract(ctx, path, extractCfg)
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := visit(ctx, f, onLeaf, walkCfg); err != nil {
			return err
		}
	}
	return nil
}
