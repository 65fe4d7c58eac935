package logoclean

import "image"

// ContentBox returns the smallest rectangle containing every pixel
// of img with nonzero alpha. The zero Rectangle is returned when the
// image is fully transparent.
func ContentBox(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y) + 3
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i] != 0 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				maxY = y
			}
			i += 4
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Trim crops img to its ContentBox. A fully transparent image has no
// content to crop to and is returned unchanged, as is an image whose
// content already reaches every edge. Trimming an already trimmed
// image is a no-op.
func Trim(img *image.NRGBA) *image.NRGBA {
	box := ContentBox(img)
	if box.Empty() || box == img.Bounds() {
		return img
	}
	out := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	for y := 0; y < box.Dy(); y++ {
		i := img.PixOffset(box.Min.X, box.Min.Y+y)
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], img.Pix[i:i+box.Dx()*4])
	}
	return out
}
