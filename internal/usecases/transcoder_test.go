package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"image-previewer/internal/domain/entities"
	apperrors "image-previewer/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeCall struct {
	input    string
	output   string
	settings entities.EncodeSettings
}

// fakeCodec fails the first failures calls, then succeeds.
type fakeCodec struct {
	failures int
	err      error
	calls    []encodeCall
}

func (c *fakeCodec) Encode(inputPath, outputPath string, settings entities.EncodeSettings) error {
	c.calls = append(c.calls, encodeCall{inputPath, outputPath, settings})
	if len(c.calls) <= c.failures {
		if c.err != nil {
			return c.err
		}
		return errors.New("decode failed")
	}
	return nil
}

type fakeDirs struct {
	failures int
	dirs     []string
}

func (d *fakeDirs) EnsureDir(dir string) error {
	d.dirs = append(d.dirs, dir)
	if len(d.dirs) <= d.failures {
		return errors.New("mkdir: permission denied")
	}
	return nil
}

type recordingSleeper struct {
	waits []time.Duration
}

func (s *recordingSleeper) sleep(_ context.Context, d time.Duration) error {
	s.waits = append(s.waits, d)
	return nil
}

type recordingObserver struct {
	attempts []error
	final    *Result
}

func (o *recordingObserver) ObserveAttempt(err error) {
	o.attempts = append(o.attempts, err)
}

func (o *recordingObserver) ObserveTranscode(attempts int, _ time.Duration, err error) {
	o.final = &Result{Attempts: attempts, Err: err}
}

func newTestTranscoder(codec *fakeCodec, dirs *fakeDirs, sleeper *recordingSleeper, opts ...TranscoderOption) *Transcoder {
	opts = append(opts, WithSleep(sleeper.sleep))
	return NewTranscoder(codec, dirs, TranscoderConfig{
		MaxAttempts:    3,
		Backoff:        time.Second,
		DefaultQuality: 60,
	}, opts...)
}

func TestTranscodeSucceedsFirstAttempt(t *testing.T) {
	codec := &fakeCodec{}
	dirs := &fakeDirs{}
	sleeper := &recordingSleeper{}

	res := newTestTranscoder(codec, dirs, sleeper).
		TranscodeResult(context.Background(), "/app/temp/a.png", "/app/previews/x/a-preview.jpg", entities.TransformOptions{})

	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, []string{"/app/previews/x"}, dirs.dirs)
	assert.Empty(t, sleeper.waits)
	require.Len(t, codec.calls, 1)
	assert.Equal(t, "/app/temp/a.png", codec.calls[0].input)
	assert.Equal(t, "/app/previews/x/a-preview.jpg", codec.calls[0].output)
}

func TestTranscodeRetriesThenSucceeds(t *testing.T) {
	codec := &fakeCodec{failures: 2}
	sleeper := &recordingSleeper{}
	observer := &recordingObserver{}

	res := newTestTranscoder(codec, &fakeDirs{}, sleeper, WithObserver(observer)).
		TranscodeResult(context.Background(), "in.png", "out/p.jpg", entities.TransformOptions{})

	require.NoError(t, res.Err)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, sleeper.waits)
	require.Len(t, observer.attempts, 3)
	assert.Error(t, observer.attempts[0])
	assert.NoError(t, observer.attempts[2])
	require.NotNil(t, observer.final)
	assert.Equal(t, 3, observer.final.Attempts)
}

func TestTranscodeGivesUpAfterMaxAttempts(t *testing.T) {
	cause := errors.New("unsupported image format")
	codec := &fakeCodec{failures: 100, err: cause}
	sleeper := &recordingSleeper{}

	res := newTestTranscoder(codec, &fakeDirs{}, sleeper).
		TranscodeResult(context.Background(), "in.heic", "out/p.jpg", entities.TransformOptions{})

	require.Error(t, res.Err)
	assert.Equal(t, 3, res.Attempts)
	assert.Len(t, codec.calls, 3)
	// fixed delay, none after the last attempt
	assert.Equal(t, []time.Duration{time.Second, time.Second}, sleeper.waits)
	assert.ErrorIs(t, res.Err, cause)

	var ie *apperrors.ImageError
	require.ErrorAs(t, res.Err, &ie)
	assert.Equal(t, apperrors.CodeTranscodeFailed, ie.Code)
}

func TestTranscodeRetriesDirectoryFailures(t *testing.T) {
	codec := &fakeCodec{}
	dirs := &fakeDirs{failures: 1}
	sleeper := &recordingSleeper{}

	err := newTestTranscoder(codec, dirs, sleeper).
		Transcode(context.Background(), "in.png", "out/p.jpg", entities.TransformOptions{})

	require.NoError(t, err)
	assert.Len(t, dirs.dirs, 2)
	assert.Len(t, codec.calls, 1, "codec must not run when the directory is missing")
	assert.Len(t, sleeper.waits, 1)
}

func TestTranscodeQualityPolicy(t *testing.T) {
	width := 320
	zero := 0
	custom := 85

	tests := []struct {
		name string
		opts entities.TransformOptions
		want int
	}{
		{"resize without quality uses default", entities.TransformOptions{
			Resize: &entities.ResizeOptions{Width: &width},
		}, 60},
		{"zero quality falls back to default", entities.TransformOptions{
			Resize: &entities.ResizeOptions{Width: &width},
			JPEG:   &entities.JPEGOptions{Quality: &zero},
		}, 60},
		{"explicit quality", entities.TransformOptions{
			Resize: &entities.ResizeOptions{Width: &width},
			JPEG:   &entities.JPEGOptions{Quality: &custom},
		}, 85},
		{"no resize keeps encoder default", entities.TransformOptions{
			JPEG: &entities.JPEGOptions{Quality: &custom},
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := &fakeCodec{}
			err := newTestTranscoder(codec, &fakeDirs{}, &recordingSleeper{}).
				Transcode(context.Background(), "in.png", "out.jpg", tt.opts)

			require.NoError(t, err)
			require.Len(t, codec.calls, 1)
			assert.Equal(t, tt.want, codec.calls[0].settings.Quality)
		})
	}
}

func TestTranscodePassesMetadataPolicy(t *testing.T) {
	codec := &fakeCodec{}
	opts := entities.TransformOptions{Metadata: &entities.MetadataOptions{Preserve: true}}

	err := newTestTranscoder(codec, &fakeDirs{}, &recordingSleeper{}).
		Transcode(context.Background(), "in.heic", "out.jpg", opts)

	require.NoError(t, err)
	assert.True(t, codec.calls[0].settings.PreserveMetadata)
}

func TestTranscodeStopsWhenContextEnds(t *testing.T) {
	codec := &fakeCodec{failures: 100}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := NewTranscoder(codec, &fakeDirs{}, TranscoderConfig{MaxAttempts: 3, Backoff: time.Hour})
	res := tr.TranscodeResult(ctx, "in.png", "out.jpg", entities.TransformOptions{})

	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Equal(t, 1, res.Attempts)
}

func TestNewTranscoderDefaults(t *testing.T) {
	tr := NewTranscoder(&fakeCodec{}, &fakeDirs{}, TranscoderConfig{})

	assert.Equal(t, DefaultMaxAttempts, tr.cfg.MaxAttempts)
	assert.Equal(t, DefaultJPEGQuality, tr.cfg.DefaultQuality)
}
