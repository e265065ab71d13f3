package tokenstore

// Package tokenstore provides file-backed implementations of the credential
// slots. The durable slot is a JSON bundle; the replica is a serialized
// Set-Cookie line the edge routing layer can read without parsing JSON.
// Single-writer contract: only the session controller writes either slot.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/corpevents/eventdesk/internal/ports"
)

// FileSlot is the durable credential store backed by a local JSON file.
type FileSlot struct {
	path string
}

// NewFileSlot creates a file-backed durable slot, creating parent
// directories as needed.
func NewFileSlot(path string) (*FileSlot, error) {
	if path == "" {
		return nil, errors.New("token slot path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create token slot directory: %w", err)
	}
	return &FileSlot{path: path}, nil
}

// Load returns the stored bundle; an empty bundle when the file is absent.
func (s *FileSlot) Load(_ context.Context) (ports.TokenBundle, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ports.TokenBundle{}, nil
		}
		return ports.TokenBundle{}, fmt.Errorf("read token slot: %w", err)
	}

	var bundle ports.TokenBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		// A corrupt slot is treated as absent; the next login rewrites it.
		return ports.TokenBundle{}, nil
	}
	return bundle, nil
}

// Store persists the bundle atomically (temp file + rename).
func (s *FileSlot) Store(_ context.Context, bundle ports.TokenBundle) error {
	if bundle.Empty() {
		return errors.New("refusing to store an empty credential")
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal token bundle: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write token slot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit token slot: %w", err)
	}
	return nil
}

// Clear removes the stored bundle. Clearing an absent slot is not an error.
func (s *FileSlot) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear token slot: %w", err)
	}
	return nil
}

// Ensure compile-time conformance to ports.
var _ ports.TokenSlot = (*FileSlot)(nil)
