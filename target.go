// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"io"
	"io/fs"
)

// Target specifies all functions that need to be implemented to write the entries of an archive.
type Target interface {
	// CreateFile creates a file at the specified path with src as content. The mode parameter is the file mode that
	// should be set on the file. If the file already exists and overwrite is false, an error wrapping
	// [ErrFileExists] should be returned. The size of the file should not exceed maxSize. The number of
	// bytes written should be returned, also along with an error. If maxSize < 0, the file size is not limited.
	CreateFile(path string, src io.Reader, mode fs.FileMode, overwrite bool, maxSize int64) (int64, error)

	// CreateDir creates the directory at the specified path with the specified mode, including all
	// parents. If the directory already exists, nothing is done.
	CreateDir(path string, mode fs.FileMode) error

	// Lstat see docs for os.Lstat.
	Lstat(path string) (fs.FileInfo, error)
}
