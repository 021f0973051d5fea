package usecases

import (
	"context"
	"path/filepath"
	"time"

	"image-previewer/internal/domain/entities"
	"image-previewer/internal/domain/repositories"
	"image-previewer/pkg/errors"

	"github.com/gofiber/fiber/v2/log"
)

const (
	DefaultMaxAttempts = 3
	DefaultBackoff     = time.Second
	DefaultJPEGQuality = 60
)

// TranscodeExecutor runs one input→output transcode under the retry policy.
type TranscodeExecutor interface {
	Transcode(ctx context.Context, inputPath, outputPath string, opts entities.TransformOptions) error
}

// Result is the outcome of a transcode: Err is nil on success, otherwise the
// terminal error after Attempts tries.
type Result struct {
	Attempts int
	Err      error
}

type TranscoderConfig struct {
	MaxAttempts    int
	Backoff        time.Duration
	DefaultQuality int
}

type Transcoder struct {
	codec    repositories.ImageCodec
	dirs     repositories.DirEnsurer
	observer repositories.TranscodeObserver
	sleep    func(ctx context.Context, d time.Duration) error
	cfg      TranscoderConfig
}

type TranscoderOption func(*Transcoder)

func WithObserver(o repositories.TranscodeObserver) TranscoderOption {
	return func(t *Transcoder) {
		if o != nil {
			t.observer = o
		}
	}
}

// WithSleep replaces the wait between attempts.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) TranscoderOption {
	return func(t *Transcoder) {
		if sleep != nil {
			t.sleep = sleep
		}
	}
}

func NewTranscoder(codec repositories.ImageCodec, dirs repositories.DirEnsurer, cfg TranscoderConfig, opts ...TranscoderOption) *Transcoder {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Backoff < 0 {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.DefaultQuality <= 0 {
		cfg.DefaultQuality = DefaultJPEGQuality
	}

	t := &Transcoder{
		codec:    codec,
		dirs:     dirs,
		observer: nopObserver{},
		sleep:    sleepContext,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transcoder) Transcode(ctx context.Context, inputPath, outputPath string, opts entities.TransformOptions) error {
	return t.TranscodeResult(ctx, inputPath, outputPath, opts).Err
}

// TranscodeResult tries the transcode up to MaxAttempts times with a fixed
// wait between attempts.
func (t *Transcoder) TranscodeResult(ctx context.Context, inputPath, outputPath string, opts entities.TransformOptions) Result {
	settings := t.settings(opts)
	start := time.Now()

	for attempt := 1; ; attempt++ {
		err := t.attempt(inputPath, outputPath, settings)
		t.observer.ObserveAttempt(err)

		if err == nil {
			log.Infow("preview created", "attempt", attempt, "output", outputPath)
			t.observer.ObserveTranscode(attempt, time.Since(start), nil)
			return Result{Attempts: attempt}
		}

		log.Warnw("transcode attempt failed",
			"attempt", attempt,
			"maxAttempts", t.cfg.MaxAttempts,
			"input", inputPath,
			"output", outputPath,
			"resize", settings.Resize != nil,
			"quality", settings.Quality,
			"preserveMetadata", settings.PreserveMetadata,
			"error", err,
		)

		if attempt >= t.cfg.MaxAttempts {
			log.Errorw("all transcode attempts failed", "attempts", attempt, "output", outputPath, "error", err)
			t.observer.ObserveTranscode(attempt, time.Since(start), err)
			return Result{Attempts: attempt, Err: errors.ErrTranscodeFailed(err)}
		}

		log.Infow("retrying transcode", "after", t.cfg.Backoff, "nextAttempt", attempt+1, "output", outputPath)
		if sleepErr := t.sleep(ctx, t.cfg.Backoff); sleepErr != nil {
			t.observer.ObserveTranscode(attempt, time.Since(start), sleepErr)
			return Result{Attempts: attempt, Err: errors.ErrTranscodeFailed(sleepErr)}
		}
	}
}

func (t *Transcoder) attempt(inputPath, outputPath string, settings entities.EncodeSettings) error {
	// Hedef klasör her denemede garanti edilir
	if err := t.dirs.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return err
	}
	return t.codec.Encode(inputPath, outputPath, settings)
}

// settings resolves defaults. Quality only applies together with a resize;
// a plain re-encode keeps the encoder default.
func (t *Transcoder) settings(opts entities.TransformOptions) entities.EncodeSettings {
	s := entities.EncodeSettings{
		Resize:           opts.Resize,
		PreserveMetadata: opts.PreserveMetadata(),
	}
	if opts.Resize != nil {
		s.Quality = opts.ResolvedQuality(t.cfg.DefaultQuality)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type nopObserver struct{}

func (nopObserver) ObserveAttempt(error) {}
func (nopObserver) ObserveTranscode(int, time.Duration, error) {}
