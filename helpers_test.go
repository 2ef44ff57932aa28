// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap_test

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// compressFunc is a function that compresses a byte slice
type compressFunc func(*testing.T, []byte) []byte

// archiveContent describes a single entry of a test archive
type archiveContent struct {
	Content  []byte
	Linkname string
	Mode     int64
	Name     string
	Filetype byte
}

// packTar creates a tar archive with the given contents
func packTar(t *testing.T, contents []archiveContent) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, c := range contents {
		hdr := &tar.Header{
			Name:     c.Name,
			Mode:     c.Mode,
			Typeflag: c.Filetype,
			Linkname: c.Linkname,
		}
		if c.Filetype == tar.TypeReg {
			hdr.Size = int64(len(c.Content))
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("cannot write tar header: %v", err)
		}
		if c.Filetype == tar.TypeReg {
			if _, err := tw.Write(c.Content); err != nil {
				t.Fatalf("cannot write tar content: %v", err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("cannot close tar writer: %v", err)
	}
	return buf.Bytes()
}

// packZip creates a zip archive with the given contents. Names ending
// with a slash are added as directories.
func packZip(t *testing.T, contents []archiveContent) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, c := range contents {
		w, err := zw.Create(c.Name)
		if err != nil {
			t.Fatalf("cannot create zip entry: %v", err)
		}
		if len(c.Content) > 0 {
			if _, err := w.Write(c.Content); err != nil {
				t.Fatalf("cannot write zip entry: %v", err)
			}
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("cannot close zip writer: %v", err)
	}
	return buf.Bytes()
}

// compressGzip compresses data with gzip
func compressGzip(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write gzip: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close gzip writer: %v", err)
	}
	return buf.Bytes()
}

// compressBzip2 compresses data with bzip2
func compressBzip2(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		t.Fatalf("cannot create bzip2 writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write bzip2: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close bzip2 writer: %v", err)
	}
	return buf.Bytes()
}

// compressXz compresses data with xz
func compressXz(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("cannot create xz writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write xz: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close xz writer: %v", err)
	}
	return buf.Bytes()
}

// compressZstd compresses data with zstandard
func compressZstd(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("cannot create zstd writer: %v", err)
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write zstd: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close zstd writer: %v", err)
	}
	return buf.Bytes()
}

// compressLZ4 compresses data with lz4
func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write lz4: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close lz4 writer: %v", err)
	}
	return buf.Bytes()
}

// compressBrotli compresses data with brotli
func compressBrotli(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write brotli: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close brotli writer: %v", err)
	}
	return buf.Bytes()
}

// compressSnappy compresses data with the framed snappy format
func compressSnappy(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("cannot write snappy: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("cannot close snappy writer: %v", err)
	}
	return buf.Bytes()
}

// newTestFile writes data to name inside dir and returns the path
func newTestFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("cannot create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0640); err != nil {
		t.Fatalf("cannot create test file: %v", err)
	}
	return path
}

// readFile returns the content of path
func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read %s: %v", path, err)
	}
	return data
}

// encodingByName looks up an encoding by its WHATWG name
func encodingByName(t *testing.T, name string) (encoding.Encoding, bool) {
	t.Helper()
	enc, err := htmlindex.Get(name)
	return enc, err == nil
}
