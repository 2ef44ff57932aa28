// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package unwrap_test

import (
	"reflect"
	"testing"

	"github.com/hashicorp/go-unwrap"
)

func TestIdentify(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   unwrap.Format
		wantOk bool
	}{
		{name: "gzip short", input: "foo.txt.gz", want: unwrap.FormatGzip, wantOk: true},
		{name: "gzip long", input: "foo.txt.gzip", want: unwrap.FormatGzip, wantOk: true},
		{name: "tar", input: "foo.tar", want: unwrap.FormatTar, wantOk: true},
		{name: "zip in path", input: "/tmp/dir.tar/foo.zip", want: unwrap.FormatZip, wantOk: true},
		{name: "tar gzip is gzip", input: "foo.tar.gz", want: unwrap.FormatGzip, wantOk: true},
		{name: "bzip2", input: "foo.bz2", want: unwrap.FormatBzip2, wantOk: true},
		{name: "xz", input: "foo.xz", want: unwrap.FormatXz, wantOk: true},
		{name: "zstd", input: "foo.zst", want: unwrap.FormatZstd, wantOk: true},
		{name: "lz4", input: "foo.lz4", want: unwrap.FormatLZ4, wantOk: true},
		{name: "brotli", input: "foo.br", want: unwrap.FormatBrotli, wantOk: true},
		{name: "snappy", input: "foo.sz", want: unwrap.FormatSnappy, wantOk: true},
		{name: "7zip", input: "foo.7z", want: unwrap.Format7Zip, wantOk: true},
		{name: "unsupported rar", input: "foo.rar", want: unwrap.FormatUnknown, wantOk: false},
		{name: "case sensitive", input: "foo.ZIP", want: unwrap.FormatUnknown, wantOk: false},
		{name: "no extension", input: "foo", want: unwrap.FormatUnknown, wantOk: false},
		{name: "trailing dot", input: "foo.", want: unwrap.FormatUnknown, wantOk: false},
		{name: "dot file", input: ".gz", want: unwrap.FormatUnknown, wantOk: false},
		{name: "extension of directory is ignored", input: "foo.zip/bar", want: unwrap.FormatUnknown, wantOk: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := unwrap.Identify(test.input)
			if got != test.want || ok != test.wantOk {
				t.Errorf("Identify(%q) = %v, %v, want %v, %v", test.input, got, ok, test.want, test.wantOk)
			}
			if unwrap.IsCompressed(test.input) != test.wantOk {
				t.Errorf("IsCompressed(%q) = %v, want %v", test.input, !test.wantOk, test.wantOk)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format unwrap.Format
		want   string
	}{
		{unwrap.FormatGzip, "gzip"},
		{unwrap.FormatTar, "tar"},
		{unwrap.FormatZip, "zip"},
		{unwrap.Format7Zip, "7zip"},
		{unwrap.FormatUnknown, "<none>"},
		{unwrap.Format(200), "<none>"},
	}

	for _, test := range tests {
		if got := test.format.String(); got != test.want {
			t.Errorf("Format(%d).String() = %q, want %q", test.format, got, test.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input  string
		want   unwrap.Format
		wantOk bool
	}{
		{"gzip", unwrap.FormatGzip, true},
		{"gz", unwrap.FormatGzip, true},
		{"zstd", unwrap.FormatZstd, true},
		{"zst", unwrap.FormatZstd, true},
		{"7zip", unwrap.Format7Zip, true},
		{"rar", unwrap.FormatUnknown, false},
		{"", unwrap.FormatUnknown, false},
	}

	for _, test := range tests {
		got, ok := unwrap.ParseFormat(test.input)
		if got != test.want || ok != test.wantOk {
			t.Errorf("ParseFormat(%q) = %v, %v, want %v, %v", test.input, got, ok, test.want, test.wantOk)
		}
	}
}

func TestExtensions(t *testing.T) {
	if got, want := unwrap.Extensions(unwrap.FormatGzip), []string{"gz", "gzip"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Extensions(gzip) = %v, want %v", got, want)
	}
	if got := unwrap.Extensions(unwrap.FormatUnknown); len(got) != 0 {
		t.Errorf("Extensions(unknown) = %v, want none", got)
	}
}
