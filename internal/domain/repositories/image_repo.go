package repositories

import (
	"context"
	"io"
	"time"

	"image-previewer/internal/domain/entities"
)

// RootTable resolves root keys to absolute directories.
type RootTable interface {
	Lookup(key entities.RootKey) (string, bool)
	Relative(path string) string
}

// ImageCodec decodes inputPath, applies settings and writes a JPEG to outputPath.
type ImageCodec interface {
	Encode(inputPath, outputPath string, settings entities.EncodeSettings) error
}

type DirEnsurer interface {
	EnsureDir(dir string) error
}

// FileWriter writes path through write; the file appears only on success.
type FileWriter interface {
	WriteFile(path string, write func(w io.Writer) error) error
}

// ArtifactPublisher üretilen dosyaları ikincil bir depoya kopyalar
type ArtifactPublisher interface {
	Publish(ctx context.Context, artifacts []entities.Artifact) error
}

type TranscodeObserver interface {
	ObserveAttempt(err error)
	ObserveTranscode(attempts int, elapsed time.Duration, err error)
}
