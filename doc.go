// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package unwrap recursively decompresses archives of unknown or mixed nesting
// into a flat set of regular files on disk.
//
// The format of a file is determined solely by its file extension, see [Identify].
// [Decompress] unwraps one layer after the other, e.g. a .tar.gz is first
// decompressed to a .tar, which is then extracted, and calls a [LeafFunc] for
// every file that is not an archive anymore. [Extract] unwraps a single layer
// and returns the files it has written.
//
// Configuration is done using the [Config], which is adjusted with [ConfigOption]
// functions, e.g. to force a [Format] or to re-encode the content of zip entries.
// Telemetry data is captured for every unwrapped layer and can be consumed with
// a [TelemetryHook].
package unwrap
