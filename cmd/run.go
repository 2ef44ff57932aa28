// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-unwrap"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
)

// CLI are the cli parameters for go-unwrap binary
type CLI struct {
	Archive           string           `arg:"" name:"archive" help:"Path to archive." type:"existing file"`
	Format            string           `short:"f" optional:"" help:"Force the format of the archive instead of using its extension (e.g. gzip, tar, zip)."`
	MaxExtractionSize int64            `optional:"" default:"-1" help:"Maximum size of a single written file (in bytes). (disable check: -1)"`
	MaxInputSize      int64            `optional:"" default:"-1" help:"Maximum size of a single archive (in bytes). (disable check: -1)"`
	NoOverwrite       bool             `short:"N" help:"Fail instead of overwriting existing files."`
	Telemetry         bool             `short:"T" optional:"" default:"false" help:"Print telemetry data to log after each extraction."`
	Verbose           bool             `short:"v" optional:"" help:"Verbose logging."`
	Version           kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
	ZipEncoding       string           `short:"e" optional:"" help:"Convert the content of zip entries to this encoding (e.g. shift_jis, windows-1252)."`
}

// Run the entrypoint into go-unwrap as a cli tool
func Run(version, commit, date string) {
	var cli CLI
	kong.Parse(&cli,
		kong.Description("Recursively decompress nested archives and print the resulting files."),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	if err := run(context.Background(), cli, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error during decompression: %v\n", err)
		os.Exit(-1)
	}
}

// run decompresses cli.Archive and writes every leaf file to out.
func run(ctx context.Context, cli CLI, out io.Writer) error {
	// Check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *unwrap.TelemetryData) {
		if cli.Telemetry {
			logger.Info("extraction finished", "telemetry", td)
		}
	}

	opts, err := configOptions(cli)
	if err != nil {
		return err
	}
	opts = append(opts,
		unwrap.WithLogger(logger),
		unwrap.WithTelemetryHook(telemetryToLog),
	)

	// decompress archive
	err = unwrap.Decompress(ctx, cli.Archive, func(path string) error {
		_, err := fmt.Fprintln(out, path)
		return err
	}, unwrap.NewConfig(opts...))
	return errors.Wrapf(err, "cannot decompress %s", cli.Archive)
}

// configOptions converts the cli parameters into options for the decompression.
func configOptions(cli CLI) ([]unwrap.ConfigOption, error) {
	opts := []unwrap.ConfigOption{
		unwrap.WithMaxExtractionSize(cli.MaxExtractionSize),
		unwrap.WithMaxInputSize(cli.MaxInputSize),
		unwrap.WithOverwrite(!cli.NoOverwrite),
	}

	if len(cli.Format) > 0 {
		f, ok := unwrap.ParseFormat(cli.Format)
		if !ok {
			return nil, errors.Errorf("unknown format %q", cli.Format)
		}
		opts = append(opts, unwrap.WithFormat(f))
	}

	if len(cli.ZipEncoding) > 0 {
		enc, err := htmlindex.Get(cli.ZipEncoding)
		if err != nil {
			return nil, errors.Wrapf(err, "unknown encoding %q", cli.ZipEncoding)
		}
		opts = append(opts, unwrap.WithZipEncoding(enc))
	}

	return opts, nil
}
