package logoclean

import (
	"image"

	"github.com/disintegration/imaging"
)

// Enhance applies a mild contrast and sharpness boost to img and
// returns the result as a new image. contrast is a percentage
// passed to imaging.AdjustContrast and sharpen the sigma passed to
// imaging.Sharpen; a zero value skips that adjustment. Both
// adjustments keep the image non premultiplied, so previously wiped
// pixels keep their zero alpha.
func Enhance(img *image.NRGBA, contrast, sharpen float64) *image.NRGBA {
	out := img
	if contrast != 0 {
		out = imaging.AdjustContrast(out, contrast)
	}
	if sharpen > 0 {
		out = imaging.Sharpen(out, sharpen)
	}
	if out == img {
		out = imaging.Clone(img)
	}
	return out
}
