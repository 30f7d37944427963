// Package fileio implements the sender's file-enumerator external
// collaborator (spec.md §6): producing (name, size) pairs from a
// directory, filtered by extension, and reading a file into memory
// under a size cap.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions accepted by the enumerator, matching the transmitter's
// JPEG/WebP scope.
var Extensions = []string{".jpg", ".jpeg", ".webp"}

// Entry is one candidate file.
type Entry struct {
	Path string
	Size int64
}

// ErrOversize is returned by Read when a file exceeds the size cap.
var ErrOversize = fmt.Errorf("fileio: file exceeds size cap")

func hasAcceptedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan lists every accepted file directly inside dir (non-recursive),
// sorted by name for deterministic transmission order.
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fileio: scan %s: %w", dir, err)
	}

	var out []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !hasAcceptedExt(de.Name()) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Path: filepath.Join(dir, de.Name()), Size: info.Size()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Read loads path into memory, refusing anything over cap bytes (the
// "oversize file" error kind from spec.md §7: the caller skips the
// file and advances to the next).
func Read(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: stat %s: %w", path, err)
	}
	if info.Size() > maxBytes {
		return nil, ErrOversize
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fileio: read %s: %w", path, err)
	}
	return data, nil
}
