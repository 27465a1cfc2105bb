// Package archive bundles generated manifest documents into a ZIP.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file of the output bundle.
type Entry struct {
	Name string
	Data []byte
}

// Build writes the entries into a deflate-compressed ZIP and returns its
// bytes. Entry order is preserved.
func Build(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("create archive entry %q: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			zw.Close()
			return nil, fmt.Errorf("write archive entry %q: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
