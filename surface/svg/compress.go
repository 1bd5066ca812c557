// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects how a document is encoded on output.
type Compression uint8

const (
	// None writes plain SVG.
	None Compression = iota
	// Gzip writes gzip-compressed SVG (.svgz).
	Gzip
	// Zstd writes zstd-compressed SVG.
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	}
	return "none"
}

// CompressionFor infers the compression from a file name: ".svgz" is
// gzip and ".zst" is zstd.
func CompressionFor(name string) Compression {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svgz", ".gz":
		return Gzip
	case ".zst":
		return Zstd
	}
	return None
}

// Encode writes the document to w with the given compression.
func (c *Canvas) Encode(w io.Writer, comp Compression) error {
	switch comp {
	case None:
		_, err := c.WriteTo(w)
		return err
	case Gzip:
		zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			return err
		}
		if _, err := c.WriteTo(zw); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	case Zstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return err
		}
		if _, err := c.WriteTo(zw); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}
	return fmt.Errorf("svg: unknown compression %d", comp)
}

// SaveFile writes the document to path, compressing according to its
// extension.
func (c *Canvas) SaveFile(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.Encode(f, CompressionFor(path)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
