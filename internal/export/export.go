// Package export serializes a single dossier to a pretty-printed JSON
// document named after its identifier.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"importflow/internal/dossier"
)

// Encode renders the dossier as indented JSON.
func Encode(d *dossier.Dossier) ([]byte, error) {
	if d == nil {
		return nil, errors.New("dossier is nil")
	}
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode dossier %s: %w", d.ID, err)
	}
	return raw, nil
}

// Decode parses a previously exported dossier document.
func Decode(raw []byte) (*dossier.Dossier, error) {
	var d dossier.Dossier
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode dossier: %w", err)
	}
	return &d, nil
}

// Write stores the encoded dossier as "<id>.json" under dir and returns
// the full path.
func Write(d *dossier.Dossier, dir string) (string, error) {
	raw, err := Encode(d)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, d.ID+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write export %s: %w", path, err)
	}
	return path, nil
}
