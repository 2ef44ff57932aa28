// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"fmt"
	"os"
)

// Extract unwraps a single layer of the archive at path and returns the written
// files in the order of the entries in the archive. All files are written to the
// directory of path.
//
// The format is taken from cfg.Format() if set, otherwise it is identified by the
// file extension. If no extractor is registered for the format, an
// [*UnhandledFormatError] is returned and nothing is written. If the archive cannot
// be parsed, the returned error wraps [ErrCorruptArchive]. On error, the
// returned paths are the files written before the failure.
func Extract(ctx context.Context, path string, cfg *Config) ([]string, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// resolve format, the override takes precedence
	f := cfg.Format()
	if f == FormatUnknown {
		f, _ = Identify(path)
	}
	ex, ok := availableExtractors[f]
	if !ok {
		return nil, &UnhandledFormatError{Path: path, Format: f}
	}

	// prepare telemetry capturing
	td := &TelemetryData{ExtractedType: f.String()}
	defer cfg.TelemetryHook()(ctx, td)
	defer captureExtractionDuration(td, now())

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, captureError(td, err)
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, captureError(td, fmt.Errorf("cannot open archive: %w", err))
	}
	defer src.Close()

	// check input
	stat, err := src.Stat()
	if err != nil {
		return nil, captureError(td, fmt.Errorf("cannot stat archive: %w", err))
	}
	if !stat.Mode().IsRegular() {
		return nil, captureError(td, fmt.Errorf("cannot extract %s: not a regular file", path))
	}
	td.InputSize = stat.Size()
	if cfg.MaxInputSize() != -1 && td.InputSize > cfg.MaxInputSize() {
		return nil, captureError(td, fmt.Errorf("cannot extract %s: %w", path, ErrMaxInputSizeExceeded))
	}

	files, err := ex(ctx, src, cfg, td)
	return files, captureError(td, err)
}
