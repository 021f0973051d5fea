package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type LocalStorage struct {
	DirMode  os.FileMode
	FileMode os.FileMode
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{DirMode: 0o755, FileMode: 0o644}
}

// EnsureDir creates dir and any missing parents.
func (l *LocalStorage) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, l.DirMode); err != nil {
		return fmt.Errorf("klasör oluşturulamadı %s: %w", dir, err)
	}
	return nil
}

// WriteFile streams into a hidden temporary sibling of path and renames it
// into place once write succeeds.
func (l *LocalStorage) WriteFile(path string, write func(w io.Writer) error) (err error) {
	tmpPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	out, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, l.FileMode)
	if err != nil {
		return fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = write(out); err != nil {
		_ = out.Close()
		return fmt.Errorf("dosya yazılamadı: %w", err)
	}
	if err = out.Sync(); err != nil {
		_ = out.Close()
		return fmt.Errorf("dosya yazılamadı: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("dosya kapatılamadı: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("dosya taşınamadı: %w", err)
	}
	return nil
}
