package paintbook

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/dustin/go-humanize"
)

// countingWriter tracks how many bytes went through it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// exportImage returns the image to encode. RGB24 surfaces are encoded as
// opaque images so the alpha channel carries no information.
func (s *Surface) exportImage() image.Image {
	if s.format != FormatRGB24 {
		return s.img
	}
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// WritePNG encodes the surface as PNG to w. Straight (non-premultiplied)
// alpha is written.
func (s *Surface) WritePNG(w io.Writer) error {
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, s.exportImage()); err != nil {
		return newError("write_png", ErrIO, err)
	}
	Logger().Debug("png encoded",
		"width", s.Width(),
		"height", s.Height(),
		"size", humanize.Bytes(uint64(cw.n)))
	return nil
}

// WritePNGFile writes the surface to path, creating or truncating the file.
// The parent directory must exist.
func (s *Surface) WritePNGFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return newError("write_png", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError("write_png", ErrIO, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := s.WritePNG(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return newError("write_png", ErrIO, fmt.Errorf("flush %s: %w", path, err))
	}
	Logger().Debug("png written", "path", path)
	return nil
}
