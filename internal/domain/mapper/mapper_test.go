package mapper

import (
	"testing"

	"image-previewer/internal/domain/dto"
	"image-previewer/internal/domain/entities"
	apperrors "image-previewer/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseQuery() dto.PreviewQueryDTO {
	return dto.PreviewQueryDTO{
		InputMainDirName:      "temp",
		FileNameWithExtension: "photo.heic",
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var ie *apperrors.ImageError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, code, ie.Code)
}

func TestPreviewQueryDefaults(t *testing.T) {
	req, err := PreviewQueryToRequest(baseQuery())
	require.NoError(t, err)

	assert.Equal(t, entities.RootTemp, req.Paths.Input.Root)
	assert.Equal(t, "photo.heic", req.Paths.Input.Path)
	assert.Empty(t, req.Paths.PreviewRoot)
	assert.True(t, req.ConvertHeicToFullSizeJpeg)
	assert.Nil(t, req.Options.Resize)
	assert.Nil(t, req.Options.JPEG)
	assert.False(t, req.Options.PreserveMetadata())
}

func TestPreviewQueryFullOptions(t *testing.T) {
	q := baseQuery()
	q.OutputPreviewMainDirName = "previews"
	q.OutputFullSizeMainDirName = "volumes"
	q.PreviewSubfolder = "u1"
	q.OutputPreviewFilePath = "p.jpg"
	q.FileType = "image/heic"
	q.ConvertHeicToFullSizeJpeg = "false"
	q.ResizeOptionsWidth = "640"
	q.ResizeOptionsFit = "inside"
	q.JpegOptionsQuality = "0"
	q.WithMetadata = "true"

	req, err := PreviewQueryToRequest(q)
	require.NoError(t, err)

	assert.Equal(t, entities.RootPreviews, req.Paths.PreviewRoot)
	assert.Equal(t, entities.RootVolumes, req.Paths.FullSizeRoot)
	assert.Equal(t, "p.jpg", req.Paths.PreviewFilePath)
	assert.False(t, req.ConvertHeicToFullSizeJpeg)

	require.NotNil(t, req.Options.Resize)
	assert.Equal(t, 640, *req.Options.Resize.Width)
	assert.Nil(t, req.Options.Resize.Height)
	assert.Equal(t, entities.FitInside, req.Options.Resize.Fit)

	require.NotNil(t, req.Options.JPEG)
	assert.Equal(t, 0, *req.Options.JPEG.Quality)
	assert.Equal(t, 60, req.Options.ResolvedQuality(60))
	assert.True(t, req.Options.PreserveMetadata())
}

func TestPreviewQueryZeroDimensionsMeanNoResize(t *testing.T) {
	q := baseQuery()
	q.ResizeOptionsWidth = "0"
	q.ResizeOptionsFit = "cover"

	req, err := PreviewQueryToRequest(q)
	require.NoError(t, err)
	assert.Nil(t, req.Options.Resize)
}

func TestPreviewQueryValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*dto.PreviewQueryDTO)
		code   string
	}{
		{"missing input root", func(q *dto.PreviewQueryDTO) { q.InputMainDirName = "" }, apperrors.CodeInvalidRoot},
		{"unknown input root", func(q *dto.PreviewQueryDTO) { q.InputMainDirName = "uploads" }, apperrors.CodeInvalidRoot},
		{"unknown preview root", func(q *dto.PreviewQueryDTO) { q.OutputPreviewMainDirName = "x" }, apperrors.CodeInvalidRoot},
		{"unknown full size root", func(q *dto.PreviewQueryDTO) { q.OutputFullSizeMainDirName = "x" }, apperrors.CodeInvalidRoot},
		{"missing file name", func(q *dto.PreviewQueryDTO) { q.FileNameWithExtension = " " }, apperrors.CodeInvalidParam},
		{"non numeric width", func(q *dto.PreviewQueryDTO) { q.ResizeOptionsWidth = "wide" }, apperrors.CodeInvalidOption},
		{"negative height", func(q *dto.PreviewQueryDTO) { q.ResizeOptionsHeight = "-1" }, apperrors.CodeInvalidOption},
		{"quality out of range", func(q *dto.PreviewQueryDTO) { q.JpegOptionsQuality = "101" }, apperrors.CodeInvalidOption},
		{"unknown fit", func(q *dto.PreviewQueryDTO) { q.ResizeOptionsFit = "stretch" }, apperrors.CodeInvalidFit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := baseQuery()
			tt.modify(&q)

			_, err := PreviewQueryToRequest(q)
			requireCode(t, err, tt.code)
		})
	}
}

func TestPreviewResultToDTO(t *testing.T) {
	resp := PreviewResultToDTO(map[string]string{"previewPath": "previews/a-preview.jpg"})

	assert.Equal(t, "previews/a-preview.jpg", resp.PreviewPath)
	assert.Empty(t, resp.FullSizePath)
}
