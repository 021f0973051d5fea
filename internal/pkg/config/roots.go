package config

import (
	"path/filepath"
	"strings"

	"image-previewer/internal/domain/entities"
)

// Roots maps every root key to an absolute directory. It is built once at
// startup and never mutated.
type Roots struct {
	base string
	dirs map[entities.RootKey]string
}

func NewRoots(base string) Roots {
	base = filepath.Clean(base)
	dirs := make(map[entities.RootKey]string, len(entities.RootKeys()))
	for _, key := range entities.RootKeys() {
		dirs[key] = filepath.Join(base, string(key))
	}
	return Roots{base: base, dirs: dirs}
}

func (r Roots) Lookup(key entities.RootKey) (string, bool) {
	dir, ok := r.dirs[key]
	return dir, ok
}

// Relative strips the base directory from p so responses do not expose the
// server layout. Paths outside the base are returned unchanged.
func (r Roots) Relative(p string) string {
	prefix := strings.TrimSuffix(r.base, "/") + "/"
	return strings.TrimPrefix(p, prefix)
}
