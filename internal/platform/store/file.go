package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one <slot>.json file per slot under a data directory.
// Saves write to a temp file in the same directory and rename into place, so
// a crash never leaves a half-written slot. A crash between two Save calls
// can still leave different slots mutually inconsistent; slots are
// independent by contract.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted at it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the data directory backing the store.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) pathFor(slot string) (string, error) {
	if strings.TrimSpace(slot) == "" {
		return "", ErrInvalidSlot
	}
	if strings.ContainsAny(slot, "/\\") || strings.Contains(slot, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return filepath.Join(s.dir, slot+".json"), nil
}

func (s *FileStore) Load(slot string, v any) error {
	path, err := s.pathFor(slot)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %q", ErrSlotNotFound, slot)
	}
	if err != nil {
		return fmt.Errorf("read slot %q: %w", slot, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Save(slot string, v any) error {
	path, err := s.pathFor(slot)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	tmp, err := os.CreateTemp(s.dir, "."+slot+"-*")
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync slot %q: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close slot %q: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace slot %q: %w", slot, err)
	}
	return nil
}

func (s *FileStore) Delete(slot string) error {
	path, err := s.pathFor(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}
