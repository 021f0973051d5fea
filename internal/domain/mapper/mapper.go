package mapper

import (
	"fmt"
	"strconv"
	"strings"

	"image-previewer/internal/domain/dto"
	"image-previewer/internal/domain/entities"
	"image-previewer/internal/usecases"
	"image-previewer/pkg/constants"
	"image-previewer/pkg/errors"
)

// PreviewQueryToRequest validates the query and builds the domain request.
// Nothing here touches the filesystem.
func PreviewQueryToRequest(q dto.PreviewQueryDTO) (usecases.ProcessRequest, error) {
	for _, root := range []struct {
		value    string
		required bool
	}{
		{q.InputMainDirName, true},
		{q.OutputPreviewMainDirName, false},
		{q.OutputFullSizeMainDirName, false},
	} {
		if root.value == "" && !root.required {
			continue
		}
		if !entities.RootKey(root.value).Valid() {
			return usecases.ProcessRequest{}, errors.ErrInvalidRoot(fmt.Errorf("unknown root %q", root.value))
		}
	}

	if strings.TrimSpace(q.FileNameWithExtension) == "" {
		return usecases.ProcessRequest{}, errors.ErrInvalidParam(fmt.Errorf("fileNameWithExtension is required"))
	}

	opts, err := transformOptions(q)
	if err != nil {
		return usecases.ProcessRequest{}, err
	}

	return usecases.ProcessRequest{
		Paths: usecases.ResolveRequest{
			Input: entities.Location{
				Root: entities.RootKey(q.InputMainDirName),
				Path: q.FileNameWithExtension,
			},
			PreviewRoot:       entities.RootKey(q.OutputPreviewMainDirName),
			FullSizeRoot:      entities.RootKey(q.OutputFullSizeMainDirName),
			PreviewSubfolder:  q.PreviewSubfolder,
			FullSizeSubfolder: q.FullSizeSubfolder,
			PreviewFilePath:   q.OutputPreviewFilePath,
			FullSizeFilePath:  q.OutputFullSizeFilePath,
		},
		FileType:                  q.FileType,
		ConvertHeicToFullSizeJpeg: q.ConvertHeicToFullSizeJpeg != "false",
		Options:                   opts,
	}, nil
}

// PreviewResultToDTO artifact haritasını yanıta çevirir
func PreviewResultToDTO(result map[string]string) dto.PreviewResponse {
	return dto.PreviewResponse{
		PreviewPath:  result[constants.ResultPreviewPath],
		FullSizePath: result[constants.ResultFullSizePath],
	}
}

func transformOptions(q dto.PreviewQueryDTO) (entities.TransformOptions, error) {
	var opts entities.TransformOptions

	width, err := parseDimension("resizeOptionsWidth", q.ResizeOptionsWidth)
	if err != nil {
		return opts, err
	}
	height, err := parseDimension("resizeOptionsHeight", q.ResizeOptionsHeight)
	if err != nil {
		return opts, err
	}

	fit := entities.Fit(q.ResizeOptionsFit)
	if !fit.Valid() {
		return opts, errors.ErrInvalidFit(fmt.Errorf("unknown fit %q", q.ResizeOptionsFit))
	}

	// Boyut yoksa resize yok, sadece yeniden kodlama
	if width != nil || height != nil {
		opts.Resize = &entities.ResizeOptions{Width: width, Height: height, Fit: fit}
	}

	if q.JpegOptionsQuality != "" {
		quality, err := strconv.Atoi(strings.TrimSpace(q.JpegOptionsQuality))
		if err != nil || quality < 0 || quality > 100 {
			return opts, errors.ErrInvalidOption(fmt.Errorf("jpegOptionsQuality %q", q.JpegOptionsQuality))
		}
		opts.JPEG = &entities.JPEGOptions{Quality: &quality}
	}

	if q.WithMetadata == "true" {
		opts.Metadata = &entities.MetadataOptions{Preserve: true}
	}

	return opts, nil
}

// parseDimension returns nil for an absent or zero value.
func parseDimension(name, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return nil, errors.ErrInvalidOption(fmt.Errorf("%s %q", name, raw))
	}
	if v == 0 {
		return nil, nil
	}
	return &v, nil
}
