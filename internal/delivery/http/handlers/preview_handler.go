package handlers

import (
	"image-previewer/internal/domain/dto"
	"image-previewer/internal/domain/mapper"
	"image-previewer/internal/usecases"
	"image-previewer/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type PreviewHandler struct {
	previewService usecases.PreviewService
}

func NewPreviewHandler(previewService usecases.PreviewService) *PreviewHandler {
	return &PreviewHandler{previewService: previewService}
}

// CreatePreview
//
// @Summary      Create Preview
// @Description  Writes a resized JPEG preview (and, for HEIC sources, a full-size JPEG) next to the configured roots
// @Tags         Preview
// @Produce      json
// @Param        inputMainDirName           query  string true  "Input root (temp, volumes, previews)"
// @Param        fileNameWithExtension      query  string true  "Input file relative to the root"
// @Param        outputPreviewMainDirName   query  string false "Preview root, defaults to the input root"
// @Param        outputFullSizeMainDirName  query  string false "Full-size root, defaults to the input root"
// @Param        outputPreviewFilePath      query  string false "Explicit preview path"
// @Param        outputFullSizeFilePath     query  string false "Explicit full-size path"
// @Param        previewSubfolder           query  string false "Preview subfolder"
// @Param        fullSizeSubfolder          query  string false "Full-size subfolder"
// @Param        fileType                   query  string false "MIME type of the input"
// @Param        convertHeicToFullSizeJpeg  query  string false "true/false, default true"
// @Param        resizeOptionsWidth         query  int    false "Target width"
// @Param        resizeOptionsHeight        query  int    false "Target height"
// @Param        resizeOptionsFit           query  string false "cover, contain, fill, inside, outside"
// @Param        jpegOptionsQuality         query  int    false "JPEG quality 1-100"
// @Param        withMetadata               query  string false "Copy EXIF from HEIC sources"
// @Success      200  {object}  dto.PreviewResponse
// @Failure      400  {string}  string  "Invalid parameter"
// @Failure      500  {string}  string  "Processing error"
// @Router       /sharp [get]
// @Router       /api/v1/preview [get]
func (h *PreviewHandler) CreatePreview(c *fiber.Ctx) error {
	var query dto.PreviewQueryDTO
	if err := c.QueryParser(&query); err != nil {
		return errors.HandleError(c, errors.ErrInvalidParam(err))
	}
	log.Debugw("preview request", "query", query, "requestId", c.Locals("requestid"))

	req, err := mapper.PreviewQueryToRequest(query)
	if err != nil {
		return errors.HandleError(c, err)
	}

	result, err := h.previewService.Process(c.UserContext(), req)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(mapper.PreviewResultToDTO(result))
}
