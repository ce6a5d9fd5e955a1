package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSStorage materializes rendered pages under a target root. Paths are
// slash-separated and relative to the root.
type FSStorage struct {
	Root string
}

func NewFSStorage(root string) *FSStorage {
	return &FSStorage{Root: root}
}

// WritePage writes a page unconditionally, creating parent
// directories as needed.
func (s *FSStorage) WritePage(destPath string, content []byte) error {
	return s.writeFile(s.abs(destPath), content)
}

// WritePageIfAbsent writes a page only when no file exists at the
// destination yet. It reports whether the write happened, so callers
// can count skips. An existing file is never touched, whatever its
// content.
func (s *FSStorage) WritePageIfAbsent(destPath string, content []byte) (bool, error) {
	fullPath := s.abs(destPath)
	if _, err := os.Lstat(fullPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat existing: %w", err)
	}
	if err := s.writeFile(fullPath, content); err != nil {
		return false, err
	}
	return true, nil
}

// ClearLocale removes a locale's output tree so a run starts from a
// clean slate, then recreates the empty directory.
func (s *FSStorage) ClearLocale(locale string) error {
	dir := filepath.Join(s.Root, locale)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear locale %s: %w", locale, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("recreate locale %s: %w", locale, err)
	}
	return nil
}

func (s *FSStorage) abs(destPath string) string {
	return filepath.Join(s.Root, filepath.FromSlash(destPath))
}

func (s *FSStorage) writeFile(fullPath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
