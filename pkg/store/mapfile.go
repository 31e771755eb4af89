package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Separator divides the identifier from the value in a persisted line.
// Identifiers never contain it; values may, so lines are split on the
// first occurrence only.
const Separator = ":"

// LoadMap reads a registry file into a map. Each line is
// "identifier:value". A missing file is the first-run state and yields
// an empty map with no error. Any other read failure also yields an
// empty map, with the error returned so the caller can log it.
func LoadMap(path string) (map[string]string, error) {
	entries := map[string]string{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return entries, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		id, value, _ := strings.Cut(line, Separator)
		entries[id] = value
	}

	return entries, nil
}

// SaveMap writes the map to path, one "identifier:value" line per entry,
// sorted by identifier. The file is written to a temporary sibling and
// renamed into place so a crash mid-write never leaves a torn file.
func SaveMap(path string, entries map[string]string) error {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id)
		b.WriteString(Separator)
		b.WriteString(entries[id])
		b.WriteString("\n")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.WriteString(b.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
