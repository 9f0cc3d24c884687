package imaging

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const thumbnailMaxDim = 320

// Decode reads any of the supported upload formats (png, jpeg, gif, webp).
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Thumbnail scales img down so its longer side is at most thumbnailMaxDim.
// Images already small enough are returned as-is.
func Thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= thumbnailMaxDim && h <= thumbnailMaxDim {
		return img
	}

	if w >= h {
		h = h * thumbnailMaxDim / w
		w = thumbnailMaxDim
	} else {
		w = w * thumbnailMaxDim / h
		h = thumbnailMaxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func EncodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Quality: 80})
}
