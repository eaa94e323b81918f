// Package projfile reads and writes project files on behalf of the
// streaming pipeline, which itself performs no I/O. Visual Studio writes
// project files with a UTF-8 byte-order mark; the mark is stripped before
// the bytes reach the pipeline and restored on write, and writes go
// through a temp file + rename so a failed transform never persists
// partial output.
package projfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read loads path and strips a UTF-8 byte-order mark if present. The
// returned flag reports whether one was found so Write can restore it.
func Read(path string) (data []byte, bom bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	bom = bytes.HasPrefix(raw, utf8BOM)
	data, _, err = transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", path, err)
	}
	return data, bom, nil
}

// Write atomically replaces path with data via a temp file in the same
// directory and a rename, restoring the byte-order mark when bom is set.
func Write(path string, data []byte, bom bool) error {
	if bom {
		out, _, err := transform.Bytes(unicode.UTF8BOM.NewEncoder(), data)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		data = out
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vcxml-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmp = nil
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
