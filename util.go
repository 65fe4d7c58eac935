package logoclean

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// OpenImage decodes the image at path and returns it as NRGBA along
// with the name of the format it was stored in. Any format registered
// with image.Decode can be read; PNG, JPEG, GIF, TIFF, BMP and WebP
// are registered here.
func OpenImage(path string) (*image.NRGBA, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode %s: %w", path, err)
	}
	return asNRGBA(img), format, nil
}

// SavePNG writes img to path as a fully compressed PNG, replacing
// any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("could not encode %s: %w", path, err)
	}
	return f.Close()
}

// asNRGBA returns img as non premultiplied RGBA, converting if
// necessary. Working images stay NRGBA throughout so that colour
// values survive under zero alpha.
func asNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// grayscale converts img to grayscale from the colour channels
// alone. Alpha is ignored rather than composited, so the colour
// under a transparent pixel still contributes.
func grayscale(img *image.NRGBA) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		i := img.PixOffset(b.Min.X, b.Min.Y+y)
		gi := gray.PixOffset(0, y)
		for x := 0; x < w; x++ {
			r := int(img.Pix[i])
			g := int(img.Pix[i+1])
			bl := int(img.Pix[i+2])
			gray.Pix[gi] = uint8((299*r + 587*g + 114*bl + 500) / 1000)
			i += 4
			gi++
		}
	}
	return gray
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
