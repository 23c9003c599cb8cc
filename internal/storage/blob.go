package storage

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BlobFile stores the high-score table as base64-encoded JSON in a single
// file, the legacy "highscore" format.
type BlobFile struct {
	Path string
}

// NewBlobFile creates a blob store at path, expanding a leading ~.
func NewBlobFile(path string) (*BlobFile, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &BlobFile{Path: path}, nil
}

// LoadHighScores reads and decodes the file.
func (b *BlobFile) LoadHighScores() (map[string]int, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", b.Path, err)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot decode %s: %w", b.Path, err)
	}

	scores := make(map[string]int)
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w", b.Path, err)
	}
	return scores, nil
}

// SaveHighScores encodes scores and replaces the file.
func (b *BlobFile) SaveHighScores(scores map[string]int) error {
	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("storage: cannot encode high scores: %w", err)
	}

	if dir := filepath.Dir(b.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	encoded := base64.StdEncoding.EncodeToString(raw)
	if err := os.WriteFile(b.Path, []byte(encoded), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", b.Path, err)
	}
	return nil
}
