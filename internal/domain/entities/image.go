package entities

// RootKey ana dizin anahtarı
type RootKey string

const (
	RootTemp     RootKey = "temp"
	RootVolumes  RootKey = "volumes"
	RootPreviews RootKey = "previews"
)

func RootKeys() []RootKey {
	return []RootKey{RootTemp, RootVolumes, RootPreviews}
}

func (k RootKey) Valid() bool {
	for _, key := range RootKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// Location bir kök dizin ve ona göre göreli yol (ya da alt klasör)
type Location struct {
	Root RootKey
	Path string
}

type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
	FitFill    Fit = "fill"
	FitInside  Fit = "inside"
	FitOutside Fit = "outside"
)

// Valid reports whether f is a known fit mode. The empty value means cover.
func (f Fit) Valid() bool {
	switch f {
	case "", FitCover, FitContain, FitFill, FitInside, FitOutside:
		return true
	}
	return false
}

type ResizeOptions struct {
	Width  *int
	Height *int
	Fit    Fit
}

type JPEGOptions struct {
	Quality *int
}

// MetadataOptions: Preserve kaynak EXIF verisini çıktıya kopyalar
type MetadataOptions struct {
	Preserve bool
}

// TransformOptions groups the optional directives of a single transcode.
// A nil Resize means re-encode only.
type TransformOptions struct {
	Resize   *ResizeOptions
	JPEG     *JPEGOptions
	Metadata *MetadataOptions
}

// WithoutResize returns a copy of o with the resize directive dropped.
func (o TransformOptions) WithoutResize() TransformOptions {
	o.Resize = nil
	return o
}

// ResolvedQuality returns the requested JPEG quality, or def when it is
// missing or zero.
func (o TransformOptions) ResolvedQuality(def int) int {
	if o.JPEG != nil && o.JPEG.Quality != nil && *o.JPEG.Quality != 0 {
		return *o.JPEG.Quality
	}
	return def
}

func (o TransformOptions) PreserveMetadata() bool {
	return o.Metadata != nil && o.Metadata.Preserve
}

// EncodeSettings codec'e iletilen, varsayılanları çözülmüş ayarlar.
// Quality 0 ise encoder varsayılanı kullanılır.
type EncodeSettings struct {
	Resize           *ResizeOptions
	Quality          int
	PreserveMetadata bool
}

// DerivedPaths holds the absolute, normalized paths computed for one request.
type DerivedPaths struct {
	InputFilePath string
	PreviewPath   string
	FullSizePath  string
}

// Artifact üretilen bir dosya
type Artifact struct {
	Name         string
	Path         string
	RelativePath string
}
