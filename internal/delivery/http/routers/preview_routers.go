package routers

import (
	"image-previewer/internal/delivery/http/handlers"
	"image-previewer/internal/domain/dto"
	"image-previewer/internal/usecases"
	consts "image-previewer/pkg/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupPreviewRoutes(app *fiber.App, previewService usecases.PreviewService) {
	previewHandler := handlers.NewPreviewHandler(previewService)

	// Eski istemciler için
	app.Get("/sharp", previewHandler.CreatePreview)

	api := app.Group("/api/v1")
	api.Get("/preview", previewHandler.CreatePreview)
}

func SetupSystemRoutes(app *fiber.App, gatherer prometheus.Gatherer) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: consts.StatusOK})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	app.Get("/swagger/*", swagger.HandlerDefault)
}
