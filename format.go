// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"path/filepath"
	"sort"
	"strings"
)

// Format is the canonical identifier of an archive or compression format.
// The zero value [FormatUnknown] marks a file that is not an archive.
type Format uint8

const (
	// FormatUnknown is returned for files with an unrecognized extension.
	FormatUnknown Format = iota

	// FormatGzip identifies gzip compressed files.
	FormatGzip

	// FormatTar identifies tar archives.
	FormatTar

	// FormatZip identifies zip archives.
	FormatZip

	// FormatBzip2 identifies bzip2 compressed files.
	FormatBzip2

	// FormatXz identifies xz compressed files.
	FormatXz

	// FormatZstd identifies zstandard compressed files.
	FormatZstd

	// FormatLZ4 identifies lz4 compressed files.
	FormatLZ4

	// FormatBrotli identifies brotli compressed files.
	FormatBrotli

	// FormatSnappy identifies framed snappy compressed files.
	FormatSnappy

	// Format7Zip identifies 7zip archives.
	Format7Zip
)

// formatNames maps each format to its canonical name.
var formatNames = map[Format]string{
	FormatGzip:   "gzip",
	FormatTar:    "tar",
	FormatZip:    "zip",
	FormatBzip2:  "bzip2",
	FormatXz:     "xz",
	FormatZstd:   "zstd",
	FormatLZ4:    "lz4",
	FormatBrotli: "brotli",
	FormatSnappy: "snappy",
	Format7Zip:   "7zip",
}

// String returns the canonical name of the format, or "<none>" for
// [FormatUnknown] and values outside the enumeration.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "<none>"
}

// ParseFormat returns the format with the given canonical name. Extension
// tokens are accepted as well, so "gz" and "gzip" both yield [FormatGzip].
func ParseFormat(name string) (Format, bool) {
	for f, n := range formatNames {
		if n == name {
			return f, true
		}
	}
	f, ok := extensionFormats[name]
	return f, ok
}

// extensionFormats is the immutable lookup table from file extension token
// to format. Tokens are case-sensitive and carry no leading dot.
var extensionFormats = map[string]Format{
	"gzip": FormatGzip,
	"gz":   FormatGzip,
	"tar":  FormatTar,
	"zip":  FormatZip,
	"bz2":  FormatBzip2,
	"xz":   FormatXz,
	"zst":  FormatZstd,
	"lz4":  FormatLZ4,
	"br":   FormatBrotli,
	"sz":   FormatSnappy,
	"7z":   Format7Zip,
}

// extension returns the token after the last dot of the base name of path.
// A base name whose only dot is the leading one has no extension.
func extension(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}

// Identify returns the format of path based on its file extension. The
// second return value is false if the extension is unknown.
func Identify(path string) (Format, bool) {
	f, ok := extensionFormats[extension(path)]
	return f, ok
}

// IsCompressed returns true if path has the extension of a known format.
func IsCompressed(path string) bool {
	_, ok := Identify(path)
	return ok
}

// Extensions returns the sorted extension tokens that identify f.
func Extensions(f Format) []string {
	var exts []string
	for ext, ef := range extensionFormats {
		if ef == f {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
