package usecases

import (
	"context"

	"image-previewer/internal/domain/entities"
	"image-previewer/internal/domain/repositories"
	"image-previewer/pkg/constants"
	"image-previewer/pkg/helper"

	"github.com/gofiber/fiber/v2/log"
)

type ProcessRequest struct {
	Paths                     ResolveRequest
	FileType                  string
	ConvertHeicToFullSizeJpeg bool
	Options                   entities.TransformOptions
}

type PreviewService interface {
	// Process writes the derived artifacts and returns their base-relative
	// paths keyed by artifact name.
	Process(ctx context.Context, req ProcessRequest) (map[string]string, error)
}

type previewService struct {
	resolver   *PathResolver
	transcoder TranscodeExecutor
	publisher  repositories.ArtifactPublisher
}

func NewPreviewService(
	resolver *PathResolver,
	transcoder TranscodeExecutor,
	publisher repositories.ArtifactPublisher,
) PreviewService {
	return &previewService{
		resolver:   resolver,
		transcoder: transcoder,
		publisher:  publisher,
	}
}

func (s *previewService) Process(ctx context.Context, req ProcessRequest) (map[string]string, error) {
	paths, err := s.resolver.Resolve(req.Paths)
	if err != nil {
		return nil, err
	}

	var artifacts []entities.Artifact

	if helper.IsHEIC(req.FileType) && req.ConvertHeicToFullSizeJpeg {
		// Önce boyutlandırılmadan tam boy JPEG, sonra ondan önizleme
		if err := s.transcoder.Transcode(ctx, paths.InputFilePath, paths.FullSizePath, req.Options.WithoutResize()); err != nil {
			log.Errorw("full-size conversion failed", "input", paths.InputFilePath, "error", err)
			return nil, err
		}
		if err := s.transcoder.Transcode(ctx, paths.FullSizePath, paths.PreviewPath, req.Options); err != nil {
			log.Errorw("preview creation failed", "input", paths.FullSizePath, "error", err)
			return nil, err
		}
		artifacts = append(artifacts,
			s.artifact(constants.ResultFullSizePath, paths.FullSizePath),
			s.artifact(constants.ResultPreviewPath, paths.PreviewPath),
		)
	} else {
		if err := s.transcoder.Transcode(ctx, paths.InputFilePath, paths.PreviewPath, req.Options); err != nil {
			log.Errorw("preview creation failed", "input", paths.InputFilePath, "error", err)
			return nil, err
		}
		artifacts = append(artifacts, s.artifact(constants.ResultPreviewPath, paths.PreviewPath))
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, artifacts); err != nil {
			log.Warnw("publishing artifacts failed", "error", err)
		}
	}

	result := make(map[string]string, len(artifacts))
	for _, a := range artifacts {
		result[a.Name] = a.RelativePath
	}
	return result, nil
}

func (s *previewService) artifact(name, path string) entities.Artifact {
	return entities.Artifact{
		Name:         name,
		Path:         path,
		RelativePath: s.resolver.Relative(path),
	}
}
