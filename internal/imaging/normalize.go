// Package imaging bounds the storage footprint of image attachments before
// they enter the attachment codec: oversized images are downscaled,
// transparency is flattened onto white, and the result is re-encoded as
// lossy JPEG regardless of the input format.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/khanhtv/traincrew/internal/common"
	"github.com/khanhtv/traincrew/internal/datauri"
)

// Normalize re-encodes an image so its width never exceeds maxWidth (images
// already narrower are left at their size, never upscaled), drawn over an
// opaque white background and compressed as JPEG at the given quality in
// (0, 1]. It fails with common.ErrDecode when the source bytes cannot be
// rasterized.
func Normalize(data []byte, maxWidth int, quality float64) (datauri.Token, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDecode, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	tw, th := w, h
	if w > maxWidth {
		tw = maxWidth
		th = int(math.Round(float64(h) * float64(maxWidth) / float64(w)))
		if th < 1 {
			th = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	// White fill first, so transparent regions flatten deterministically.
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality(quality)}); err != nil {
		return "", fmt.Errorf("jpeg encode: %w", err)
	}

	return datauri.Encode(buf.Bytes(), "image/jpeg"), nil
}

// jpegQuality maps the (0, 1] quality scale onto jpeg's 1..100.
func jpegQuality(q float64) int {
	n := int(math.Round(q * 100))
	if n < 1 {
		n = 1
	}
	if n > 100 {
		n = 100
	}
	return n
}
