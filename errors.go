// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	// ErrUnhandledFormat is returned if no extractor is registered for the
	// resolved format of a file.
	ErrUnhandledFormat = errors.New("unhandled format")

	// ErrCorruptArchive is returned if an archive cannot be read as the format it claims to be.
	ErrCorruptArchive = errors.New("corrupt archive")

	// ErrPathTraversal is returned if an entry would be written outside of the
	// directory of its archive.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrFileExists is returned if a destination already exists and overwriting is disabled.
	ErrFileExists = errors.New("file already exists")

	// ErrMaxExtractionSizeExceeded is returned if a written file exceeds the configured maximum.
	ErrMaxExtractionSizeExceeded = errors.New("maximum extraction size exceeded")

	// ErrMaxInputSizeExceeded is returned if an archive exceeds the configured maximum input size.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")
)

// UnhandledFormatError reports a file for which no extractor is registered.
type UnhandledFormatError struct {
	// Path is the file that could not be decompressed.
	Path string

	// Format is the resolved format, [FormatUnknown] if the extension is not known.
	Format Format
}

// Error implements the error interface.
func (e *UnhandledFormatError) Error() string {
	return fmt.Sprintf("could not decompress %s: no handler for files of type %s", filepath.Base(e.Path), e.Format)
}

// Is reports whether target is [ErrUnhandledFormat].
func (e *UnhandledFormatError) Is(target error) bool {
	return target == ErrUnhandledFormat
}

// corruptArchive wraps err into an [ErrCorruptArchive] that names the archive.
func corruptArchive(path string, f Format, err error) error {
	return fmt.Errorf("%w: cannot read %s as %s: %w", ErrCorruptArchive, filepath.Base(path), f, err)
}
