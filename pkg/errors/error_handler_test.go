package errors

import (
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return HandleError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	return resp.StatusCode, string(body)
}

func TestHandleErrorValidation(t *testing.T) {
	status, body := serve(t, ErrInvalidRoot(stderrors.New("unknown root \"uploads\"")))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid main directory name.", body)
}

func TestHandleErrorTranscodeIncludesCause(t *testing.T) {
	status, body := serve(t, ErrTranscodeFailed(stderrors.New("unsupported image format")))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Error processing image: unsupported image format", body)
}

func TestHandleErrorFallback(t *testing.T) {
	status, body := serve(t, stderrors.New("disk full"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "disk full")
}

func TestImageErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := ErrTranscodeFailed(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "transcode_failed: Error processing image (boom)", err.Error())

	var ie *ImageError
	require.ErrorAs(t, error(err), &ie)
	assert.Equal(t, CodeTranscodeFailed, ie.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(CodeInvalidFit))
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(CodeInvalidOption))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFor(CodeCannotRemove))
}
