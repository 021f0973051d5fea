package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"image-previewer/internal/domain/entities"
	"image-previewer/internal/domain/repositories"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
	"github.com/jdeng/goheif"
)

// JPEG APP1 segment en fazla 64KB taşıyabilir
const maxExifSize = 0xffff - 2

var heifBrands = map[string]bool{
	"heic": true, "heix": true, "hevc": true, "hevx": true,
	"heim": true, "heis": true, "mif1": true, "msf1": true,
}

// ImagingCodec decodes with imaging (plus goheif for HEIC/HEIF), applies the
// resize directive and writes a JPEG through the FileWriter.
type ImagingCodec struct {
	files repositories.FileWriter
}

func NewImagingCodec(files repositories.FileWriter) *ImagingCodec {
	return &ImagingCodec{files: files}
}

func (c *ImagingCodec) Encode(inputPath, outputPath string, settings entities.EncodeSettings) error {
	img, exif, err := decode(inputPath, settings.PreserveMetadata)
	if err != nil {
		return err
	}

	if settings.Resize != nil {
		img = Resize(img, *settings.Resize)
	}

	var opts []imaging.EncodeOption
	if settings.Quality > 0 {
		opts = append(opts, imaging.JPEGQuality(settings.Quality))
	}

	return c.files.WriteFile(outputPath, func(w io.Writer) error {
		if len(exif) > 0 {
			ew, err := newExifWriter(w, exif)
			if err != nil {
				return err
			}
			w = ew
		}
		return imaging.Encode(w, img, imaging.JPEG, opts...)
	})
}

func decode(path string, withExif bool) (image.Image, []byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	if isHEIF(file) {
		img, err := goheif.Decode(file)
		if err != nil {
			return nil, nil, fmt.Errorf("decode heif %s: %w", path, err)
		}
		var exif []byte
		if withExif {
			exif = heifExif(file, path)
		}
		return img, exif, nil
	}

	// Diğer formatlarda yönlendirme piksellere uygulanır; EXIF kopyalanmaz
	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil, nil
}

// heifExif returns the EXIF payload of a HEIF container, or nil when it has
// none or it does not fit in a single APP1 segment.
func heifExif(r io.ReaderAt, path string) []byte {
	exif, err := goheif.ExtractExif(r)
	if err != nil {
		log.Debugw("no exif in heif source", "path", path, "error", err)
		return nil
	}
	if len(exif) > maxExifSize {
		log.Warnw("exif too large to embed, dropping", "path", path, "size", len(exif))
		return nil
	}
	return exif
}

// isHEIF sniffs the ISO BMFF ftyp box for a HEIF brand.
func isHEIF(r io.ReaderAt) bool {
	header := make([]byte, 12)
	if _, err := r.ReadAt(header, 0); err != nil {
		return false
	}
	if !bytes.Equal(header[4:8], []byte("ftyp")) {
		return false
	}
	return heifBrands[string(header[8:12])]
}

// Resize applies o to img using the fit semantics of the request.
func Resize(img image.Image, o entities.ResizeOptions) image.Image {
	w, h := derefDim(o.Width), derefDim(o.Height)
	if w == 0 && h == 0 {
		return img
	}
	// Tek boyut verildiyse oran korunur
	if w == 0 || h == 0 {
		return imaging.Resize(img, w, h, imaging.Lanczos)
	}

	bounds := img.Bounds()
	srcW, srcH := float64(bounds.Dx()), float64(bounds.Dy())
	if srcW == 0 || srcH == 0 {
		return img
	}
	scaleW, scaleH := float64(w)/srcW, float64(h)/srcH

	switch o.Fit {
	case entities.FitFill:
		return imaging.Resize(img, w, h, imaging.Lanczos)
	case entities.FitInside:
		return scale(img, math.Min(scaleW, scaleH))
	case entities.FitOutside:
		return scale(img, math.Max(scaleW, scaleH))
	case entities.FitContain:
		inner := scale(img, math.Min(scaleW, scaleH))
		canvas := imaging.New(w, h, color.Black)
		return imaging.PasteCenter(canvas, inner)
	default:
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	}
}

func scale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w := int(math.Max(1, math.Round(float64(b.Dx())*factor)))
	h := int(math.Max(1, math.Round(float64(b.Dy())*factor)))
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

func derefDim(v *int) int {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
