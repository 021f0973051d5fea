package processor

import (
	"fmt"
	"io"
)

// exifWriter writes SOI and an APP1 segment carrying exif, then forwards the
// encoder output minus its own SOI marker.
type exifWriter struct {
	w    io.Writer
	skip int
}

func newExifWriter(w io.Writer, exif []byte) (io.Writer, error) {
	if len(exif) > maxExifSize {
		return nil, fmt.Errorf("exif segment too large: %d bytes", len(exif))
	}
	segmentLen := 2 + len(exif)
	header := []byte{
		0xff, 0xd8, // SOI
		0xff, 0xe1, byte(segmentLen >> 8), byte(segmentLen & 0xff), // APP1
	}
	if _, err := w.Write(header); err != nil {
		return nil, err
	}
	if _, err := w.Write(exif); err != nil {
		return nil, err
	}
	return &exifWriter{w: w, skip: 2}, nil
}

func (e *exifWriter) Write(p []byte) (int, error) {
	n := len(p)
	if e.skip > 0 {
		if len(p) <= e.skip {
			e.skip -= len(p)
			return n, nil
		}
		p = p[e.skip:]
		e.skip = 0
	}
	if _, err := e.w.Write(p); err != nil {
		return 0, err
	}
	return n, nil
}
