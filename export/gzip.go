// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Gzip streams everything fill writes into w as a single gzip member.
func Gzip(w io.Writer, fill func(io.Writer) error) error {
	zw, err := gzip.NewWriterLevel(w, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("export: gzip: %w", err)
	}
	if err := fill(zw); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("export: gzip close: %w", err)
	}

	return nil
}

// IsGzipPath reports whether path names a gzip file by extension.
func IsGzipPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".gz")
}
