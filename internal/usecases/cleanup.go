package usecases

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"image-previewer/internal/domain/entities"
	"image-previewer/internal/domain/repositories"
	"image-previewer/pkg/errors"

	"github.com/gofiber/fiber/v2/log"
)

type CleanupService interface {
	// CleanupOldTempFiles removes entries of the temp root older than maxAge
	// and returns how many were removed.
	CleanupOldTempFiles(maxAge time.Duration) (int, error)
}

type cleanupService struct {
	tempDir string
	now     func() time.Time
}

func NewCleanupService(roots repositories.RootTable) (CleanupService, error) {
	tempDir, ok := roots.Lookup(entities.RootTemp)
	if !ok {
		return nil, errors.ErrInvalidRoot(fmt.Errorf("root %q is not configured", entities.RootTemp))
	}
	return &cleanupService{tempDir: tempDir, now: time.Now}, nil
}

func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	now := s.now()
	removed := 0
	var errs []error
	for _, entry := range entries {
		entryPath := filepath.Join(s.tempDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			errs = append(errs, errors.ErrCannotStat(err))
			continue
		}

		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.RemoveAll(entryPath); err != nil {
			errs = append(errs, errors.ErrCannotRemove(err))
			continue
		}
		removed++
		log.Infow("removed old temp entry", "path", entryPath, "age", now.Sub(info.ModTime()))
	}
	return removed, stderrors.Join(errs...)
}
