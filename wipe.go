package logoclean

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
)

// Strategy selects the rule used to classify pixels as background.
type Strategy int

const (
	// Simple treats any pixel whose colour channels all exceed the
	// threshold as background.
	Simple Strategy = iota
	// Aggressive uses a lower threshold but also requires the
	// channels to closely match each other, so saturated light
	// colours survive.
	Aggressive
	// Advanced combines the white test with edge detection and a
	// colour distance measure. Best effort, not an exact
	// segmentation.
	Advanced
	// Dominant wipes everything within a tolerance of the most
	// common colour in the image, whatever that colour is.
	Dominant
)

// ParseStrategy returns the Strategy named by s. The names are those
// used by the command line tools: simple, aggressive, advanced and
// ultra (also accepted as dominant).
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "simple":
		return Simple, nil
	case "aggressive":
		return Aggressive, nil
	case "advanced":
		return Advanced, nil
	case "ultra", "dominant":
		return Dominant, nil
	}
	return Simple, fmt.Errorf("unknown method %q", s)
}

func (s Strategy) String() string {
	switch s {
	case Aggressive:
		return "aggressive"
	case Advanced:
		return "advanced"
	case Dominant:
		return "dominant"
	}
	return "simple"
}

// Options holds the numeric parameters of the strategies. Channel
// values run 0-255. A zero field falls back to the default for the
// strategy in use, so the zero Options is always usable.
type Options struct {
	// Threshold is the channel value above which a pixel counts as
	// white.
	Threshold int
	// Delta is the pairwise channel difference below which a pixel
	// counts as achromatic. Used by Aggressive.
	Delta int
	// EdgeLevel is the filtered intensity above which a pixel
	// counts as lying on an edge. Used by Advanced.
	EdgeLevel int
	// Tolerance is the per channel distance from the dominant
	// colour within which a pixel is wiped. Used by Dominant.
	Tolerance int
}

// Defaults returns the parameters a strategy uses for Options
// fields left at zero.
func (s Strategy) Defaults() Options {
	switch s {
	case Aggressive:
		return Options{Threshold: 120, Delta: 20}
	case Advanced:
		return Options{Threshold: 120, EdgeLevel: 30}
	case Dominant:
		return Options{Tolerance: 30}
	}
	return Options{Threshold: 240}
}

func (o Options) withDefaults(s Strategy) Options {
	d := s.Defaults()
	if o.Threshold == 0 {
		o.Threshold = d.Threshold
	}
	if o.Delta == 0 {
		o.Delta = d.Delta
	}
	if o.EdgeLevel == 0 {
		o.EdgeLevel = d.EdgeLevel
	}
	if o.Tolerance == 0 {
		o.Tolerance = d.Tolerance
	}
	return o
}

// Mask classifies every pixel of img under the given strategy and
// returns the result as a row major grid of booleans, true marking
// a background pixel.
func Mask(img *image.NRGBA, s Strategy, o Options) []bool {
	o = o.withDefaults(s)
	switch s {
	case Aggressive:
		return aggressiveMask(img, o)
	case Advanced:
		return advancedMask(img, o)
	case Dominant:
		return dominantMask(img, o)
	}
	return simpleMask(img, o)
}

// Wipe returns a copy of img with every background pixel replaced
// by transparent white. Pixels outside the mask are byte for byte
// untouched, and img itself is never modified.
func Wipe(img *image.NRGBA, s Strategy, o Options) *image.NRGBA {
	return apply(img, Mask(img, s, o))
}

// Clean wipes the background from img and trims away the empty
// margins left behind.
func Clean(img *image.NRGBA, s Strategy, o Options) *image.NRGBA {
	return Trim(Wipe(img, s, o))
}

func simpleMask(img *image.NRGBA, o Options) []bool {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			if int(img.Pix[i]) > o.Threshold &&
				int(img.Pix[i+1]) > o.Threshold &&
				int(img.Pix[i+2]) > o.Threshold {
				mask[y*w+x] = true
			}
			i += 4
		}
	}
	return mask
}

func aggressiveMask(img *image.NRGBA, o Options) []bool {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			r := int(img.Pix[i])
			g := int(img.Pix[i+1])
			bl := int(img.Pix[i+2])
			if r > o.Threshold && g > o.Threshold && bl > o.Threshold &&
				abs(r-g) < o.Delta && abs(g-bl) < o.Delta && abs(r-bl) < o.Delta {
				mask[y*w+x] = true
			}
			i += 4
		}
	}
	return mask
}

// advancedMask marks every pixel over the white threshold as
// background, plus any pixel that lies off every detected edge
// within (255-threshold)*1.5 colour distance of pure white. The edge
// and distance tests only ever protect pixels that fail the white
// test, so this wipes more than Simple does, never less.
func advancedMask(img *image.NRGBA, o Options) []bool {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	edges := effect.EdgeDetection(grayscale(img), 1.0)

	near := float64(255-o.Threshold) * 1.5
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			r := int(img.Pix[i])
			g := int(img.Pix[i+1])
			bl := int(img.Pix[i+2])
			i += 4
			if r > o.Threshold && g > o.Threshold && bl > o.Threshold {
				mask[y*w+x] = true
				continue
			}
			if int(edges.Pix[edges.PixOffset(x, y)]) > o.EdgeLevel {
				continue
			}
			dr := float64(255 - r)
			dg := float64(255 - g)
			db := float64(255 - bl)
			if math.Sqrt(dr*dr+dg*dg+db*db) < near {
				mask[y*w+x] = true
			}
		}
	}
	return mask
}

func dominantMask(img *image.NRGBA, o Options) []bool {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	mask := make([]bool, w*h)
	if w == 0 || h == 0 {
		return mask
	}

	counts := make(map[uint32]int)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			c := uint32(img.Pix[i])<<24 | uint32(img.Pix[i+1])<<16 |
				uint32(img.Pix[i+2])<<8 | uint32(img.Pix[i+3])
			counts[c]++
			i += 4
		}
	}

	// The most frequent exact colour wins, with ties going to the
	// lowest packed value so the choice is deterministic.
	var dom uint32
	best := 0
	for c, n := range counts {
		if n > best || (n == best && c < dom) {
			dom, best = c, n
		}
	}

	dr := int(dom >> 24 & 0xff)
	dg := int(dom >> 16 & 0xff)
	db := int(dom >> 8 & 0xff)
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			if abs(int(img.Pix[i])-dr) < o.Tolerance &&
				abs(int(img.Pix[i+1])-dg) < o.Tolerance &&
				abs(int(img.Pix[i+2])-db) < o.Tolerance {
				mask[y*w+x] = true
			}
			i += 4
		}
	}
	return mask
}

// apply copies img and blanks the masked pixels.
func apply(img *image.NRGBA, mask []bool) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	for i, bg := range mask {
		if bg {
			j := i * 4
			out.Pix[j] = 255
			out.Pix[j+1] = 255
			out.Pix[j+2] = 255
			out.Pix[j+3] = 0
		}
	}
	return out
}
