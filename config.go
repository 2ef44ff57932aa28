// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap

import (
	"context"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/text/encoding"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all options for the decompression process.
// The options can be adjusted using the option pattern style.
type Config struct {
	// customCreateDirMode is the file mode for created directories (respecting umask)
	customCreateDirMode fs.FileMode

	// customDecompressFileMode is the file mode for written files (respecting umask)
	customDecompressFileMode fs.FileMode

	// format overrides the extension based identification
	format Format

	// logger stream for decompression
	logger logger

	// maxExtractionSize is the maximum size of a single written file.
	// Set value to -1 to disable the check.
	maxExtractionSize int64

	// maxInputSize is the maximum size of a single archive.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// overwrite decides if existing files in the destination are replaced
	overwrite bool

	// target is the filesystem the entries are written to
	target Target

	// telemetryHook is a function to consume telemetry data after each extraction
	telemetryHook TelemetryHook

	// zipEncoding re-encodes the content of zip entries, nil keeps the bytes as is
	zipEncoding encoding.Encoding
}

// CheckExtractionSize checks if fileSize exceeds the configured maximum. If the maximum is exceeded,
// a [ErrMaxExtractionSizeExceeded] error is returned.
func (c *Config) CheckExtractionSize(fileSize int64) error {

	// check if disabled
	if c.MaxExtractionSize() == -1 {
		return nil
	}

	// check value
	if fileSize > c.MaxExtractionSize() {
		return ErrMaxExtractionSizeExceeded
	}
	return nil
}

// CustomCreateDirMode returns the file mode for created directories. (respecting umask)
func (c *Config) CustomCreateDirMode() fs.FileMode {
	return c.customCreateDirMode
}

// CustomDecompressFileMode returns the file mode for written files. (respecting umask)
func (c *Config) CustomDecompressFileMode() fs.FileMode {
	return c.customDecompressFileMode
}

// Format returns the format override, [FormatUnknown] if the format
// is identified by the file extension.
func (c *Config) Format() Format {
	return c.format
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxExtractionSize returns the maximum size of a single written file.
func (c *Config) MaxExtractionSize() int64 {
	return c.maxExtractionSize
}

// MaxInputSize returns the maximum size of a single archive.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// Overwrite returns true if files should be overwritten in the destination.
func (c *Config) Overwrite() bool {
	return c.overwrite
}

// Target returns the target the entries are written to.
func (c *Config) Target() Target {
	return c.target
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

// ZipEncoding returns the encoding the content of zip entries is converted to,
// nil if the content is written unmodified.
func (c *Config) ZipEncoding() encoding.Encoding {
	return c.zipEncoding
}

// withoutFormat returns a copy of c that identifies files by their extension.
func (c *Config) withoutFormat() *Config {
	cp := *c
	cp.format = FormatUnknown
	return &cp
}

const (
	defaultCustomCreateDirMode      = 0750 // default directory permissions rwxr-x---
	defaultCustomDecompressFileMode = 0640 // default file permissions rw-r-----
	defaultMaxExtractionSize        = -1   // don't limit written files
	defaultMaxInputSize             = -1   // don't limit archive size
	defaultOverwrite                = true // last write wins
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		customCreateDirMode:      defaultCustomCreateDirMode,
		customDecompressFileMode: defaultCustomDecompressFileMode,
		format:                   FormatUnknown,
		logger:                   defaultLogger,
		maxExtractionSize:        defaultMaxExtractionSize,
		maxInputSize:             defaultMaxInputSize,
		overwrite:                defaultOverwrite,
		target:                   NewTargetDisk(),
		telemetryHook:            defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithCustomCreateDirMode options pattern function to set the file mode
// for created directories. (respecting umask)
func WithCustomCreateDirMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.customCreateDirMode = mode
	}
}

// WithCustomDecompressFileMode options pattern function to set the file mode for
// written files. (respecting umask)
func WithCustomDecompressFileMode(mode fs.FileMode) ConfigOption {
	return func(c *Config) {
		c.customDecompressFileMode = mode
	}
}

// WithFormat options pattern function to bypass the extension based identification.
// The override applies to the file passed to [Extract] or [Decompress], files
// produced during decompression are identified by their extension.
func WithFormat(f Format) ConfigOption {
	return func(c *Config) {
		c.format = f
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxExtractionSize options pattern function to set the maximum size of a
// single written file. (-1 to disable check)
func WithMaxExtractionSize(maxExtractionSize int64) ConfigOption {
	return func(c *Config) {
		c.maxExtractionSize = maxExtractionSize
	}
}

// WithMaxInputSize options pattern function to set the maximum size of a single archive. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithOverwrite options pattern function specify if files should be overwritten in the destination.
func WithOverwrite(enable bool) ConfigOption {
	return func(c *Config) {
		c.overwrite = enable
	}
}

// WithTarget options pattern function to write entries to a custom [Target].
func WithTarget(t Target) ConfigOption {
	return func(c *Config) {
		if t != nil {
			c.target = t
		}
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is called after
// every extraction.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// WithZipEncoding options pattern function to convert the content of zip entries
// to enc. Characters that cannot be represented in enc are replaced.
func WithZipEncoding(enc encoding.Encoding) ConfigOption {
	return func(c *Config) {
		c.zipEncoding = enc
	}
}
