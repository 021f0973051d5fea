package usecases

import (
	"fmt"
	"path/filepath"
	"strings"

	"image-previewer/internal/domain/entities"
	"image-previewer/internal/domain/repositories"
	"image-previewer/pkg/constants"
	"image-previewer/pkg/errors"
)

// ResolveRequest describes where the input lives and where its derivatives go.
// Empty roots default to the input root. A non-empty PreviewFilePath or
// FullSizeFilePath selects explicit mode for that artifact; otherwise the name
// is derived from the input file stem.
type ResolveRequest struct {
	Input             entities.Location
	PreviewRoot       entities.RootKey
	FullSizeRoot      entities.RootKey
	PreviewSubfolder  string
	FullSizeSubfolder string
	PreviewFilePath   string
	FullSizeFilePath  string
}

type PathResolver struct {
	roots            repositories.RootTable
	previewExtension string
}

func NewPathResolver(roots repositories.RootTable, previewExtension string) *PathResolver {
	return &PathResolver{
		roots:            roots,
		previewExtension: strings.TrimPrefix(previewExtension, "."),
	}
}

func (r *PathResolver) Resolve(req ResolveRequest) (entities.DerivedPaths, error) {
	inputRoot, err := r.lookup(req.Input.Root)
	if err != nil {
		return entities.DerivedPaths{}, err
	}

	previewRootKey := req.PreviewRoot
	if previewRootKey == "" {
		previewRootKey = req.Input.Root
	}
	previewRoot, err := r.lookup(previewRootKey)
	if err != nil {
		return entities.DerivedPaths{}, err
	}

	fullSizeRootKey := req.FullSizeRoot
	if fullSizeRootKey == "" {
		fullSizeRootKey = req.Input.Root
	}
	fullSizeRoot, err := r.lookup(fullSizeRootKey)
	if err != nil {
		return entities.DerivedPaths{}, err
	}

	fullSizeSubfolder := req.FullSizeSubfolder
	if fullSizeSubfolder == "" {
		fullSizeSubfolder = req.PreviewSubfolder
	}

	stem := fileStem(req.Input.Path)

	previewName := req.PreviewFilePath
	if previewName == "" {
		previewName = stem + constants.SuffixPreview + "." + r.previewExtension
	}
	fullSizeName := req.FullSizeFilePath
	if fullSizeName == "" {
		fullSizeName = stem + constants.SuffixFullSize + "." + r.previewExtension
	}

	return entities.DerivedPaths{
		InputFilePath: joinNormalized(inputRoot, req.Input.Path),
		PreviewPath:   joinNormalized(previewRoot, req.PreviewSubfolder, previewName),
		FullSizePath:  joinNormalized(fullSizeRoot, fullSizeSubfolder, fullSizeName),
	}, nil
}

// Relative strips the configured base directory from an absolute path.
func (r *PathResolver) Relative(path string) string {
	return r.roots.Relative(path)
}

func (r *PathResolver) lookup(key entities.RootKey) (string, error) {
	if !key.Valid() {
		return "", errors.ErrInvalidRoot(fmt.Errorf("unknown root %q", key))
	}
	dir, ok := r.roots.Lookup(key)
	if !ok {
		return "", errors.ErrInvalidRoot(fmt.Errorf("root %q is not configured", key))
	}
	return dir, nil
}

// fileStem drops any directory prefix and the last extension.
func fileStem(name string) string {
	base := filepath.Base(filepath.ToSlash(name))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// joinNormalized joins parts with "/" and collapses repeated separators.
// ".." segments and symlinks are left alone.
func joinNormalized(parts ...string) string {
	return normalizePath(strings.Join(parts, "/"))
}

func normalizePath(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	prevSep := false
	for _, r := range p {
		if r == '/' {
			if prevSep {
				continue
			}
			prevSep = true
		} else {
			prevSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
