package errors

import (
	"errors"
	"strings"

	"image-previewer/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// StatusFor validation hataları 400, geri kalanlar 500
func StatusFor(code string) int {
	if strings.HasPrefix(code, "invalid_") {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// HandleError writes err as a plain-text response. Client errors carry only
// the localized message; server errors append the underlying error text.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var ie *ImageError
	if errors.As(err, &ie) {
		status := StatusFor(ie.Code)
		if status == fiber.StatusBadRequest {
			if ie.Err != nil {
				log.Debugw("request rejected", "code", ie.Code, "error", ie.Err)
			}
			return c.Status(status).SendString(ie.Message)
		}

		log.Errorw("request failed", "code", ie.Code, "error", ie.Err)
		message := ie.Message
		if ie.Err != nil {
			message += ": " + ie.Err.Error()
		}
		return c.Status(status).SendString(message)
	}

	// Yakalanmayan hatalar için fallback
	log.Errorw("unexpected error", "error", err)
	return c.Status(fiber.StatusInternalServerError).
		SendString(i18n.T(CodeTranscodeFailed) + ": " + err.Error())
}
