// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// decompressionFunc returns a reader that decompresses src.
type decompressionFunc func(io.Reader) (io.Reader, error)

// defaultDecompressedSuffix is appended to the output name if the
// input name does not end with a file extension
const defaultDecompressedSuffix = "decompressed"

// streamExtractor returns an extractFunc for single stream compression formats,
// which are decompressed with decFunc.
func streamExtractor(f Format, decFunc decompressionFunc) extractFunc {
	return func(ctx context.Context, src *os.File, cfg *Config, td *TelemetryData) ([]string, error) {
		return decompress(ctx, src, cfg, td, f, decFunc)
	}
}

// decompress writes the decompressed content of src next to it. The output name
// is the name of src without its extension, e.g. foo.txt.gz becomes foo.txt.
func decompress(ctx context.Context, src *os.File, cfg *Config, td *TelemetryData, f Format, decFunc decompressionFunc) ([]string, error) {
	cfg.Logger().Info("decompress", "format", f, "archive", src.Name())

	// start decompression
	decompressedStream, err := decFunc(src)
	if err != nil {
		return nil, corruptArchive(src.Name(), f, err)
	}
	defer func() {
		if closer, ok := decompressedStream.(io.Closer); ok {
			closer.Close()
		}
	}()

	// check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// determine name and decompress content
	outputName := determineOutputName(filepath.Base(src.Name()))
	cfg.Logger().Debug("determined output name", "name", outputName)
	sr := &sourceReader{r: decompressedStream}
	p, n, err := writeEntry(sr, filepath.Dir(src.Name()), outputName, cfg, nil)
	td.ExtractionSize += n
	if sr.err != nil {
		return nil, corruptArchive(src.Name(), f, sr.err)
	}
	if err != nil {
		return nil, err
	}
	td.ExtractedFiles++

	return []string{p}, nil
}

// determineOutputName strips the extension of inputName. If there is no
// extension to strip, a suffix is added instead so the input is never replaced.
func determineOutputName(inputName string) string {
	if ext := extension(inputName); ext != "" {
		return inputName[:len(inputName)-len(ext)-1]
	}
	return fmt.Sprintf("%s.%s", inputName, defaultDecompressedSuffix)
}

// sourceReader remembers the last read error of the underlying reader, so
// a failing decompressor can be told apart from a failing destination.
type sourceReader struct {
	r   io.Reader
	err error
}

// Read reads from the underlying reader and captures any error besides io.EOF.
func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}
	return n, err
}
