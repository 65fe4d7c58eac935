package logoclean

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/nfnt/resize"
	"github.com/segmentio/ksuid"
)

const sheetCols = 3
const sheetMargin = 36.0
const cellSize = 160.0
const cellGap = 14.0
const captionH = 24.0

// Report is a PDF contact sheet of logo images: a grid of
// thumbnails with a caption under each, for eyeballing a batch
// before or after cleaning.
type Report struct {
	// ThumbSize is the maximum pixel dimension of the embedded
	// thumbnails. Set before Setup, or leave for the default.
	ThumbSize int

	fpdf *gofpdf.Fpdf
	cell int
}

// Setup creates a new PDF with appropriate settings and fonts
func (r *Report) Setup() error {
	if r.ThumbSize <= 0 {
		r.ThumbSize = 256
	}
	r.fpdf = gofpdf.New("P", "pt", "A4", "")
	r.fpdf.SetFont("Helvetica", "", 8)
	r.fpdf.SetAutoPageBreak(false, 0)
	r.fpdf.AddPage()
	return r.fpdf.Error()
}

// AddLogo decodes the image at path, scales it down to a thumbnail
// and places it in the next free cell of the sheet, with a caption
// of the file name, pixel size and how much of the image is opaque.
// A new page is started whenever the current one fills up.
func (r *Report) AddLogo(path string) error {
	img, _, err := OpenImage(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	b := img.Bounds()

	thumb := resize.Thumbnail(uint(r.ThumbSize), uint(r.ThumbSize), img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return fmt.Errorf("could not encode thumbnail of %s: %w", path, err)
	}

	// Thumbnails are registered under ksuid keys, as the same file
	// name can appear in more than one directory.
	key := ksuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	r.fpdf.RegisterImageOptionsReader(key, opts, &buf)

	x, y := r.nextcell()
	tb := thumb.Bounds()
	w, h := float64(tb.Dx()), float64(tb.Dy())
	scale := cellSize / w
	if s := cellSize / h; s < scale {
		scale = s
	}
	w, h = w*scale, h*scale
	r.fpdf.ImageOptions(key, x+(cellSize-w)/2, y+(cellSize-h)/2, w, h, false, opts, 0, "")

	r.fpdf.SetXY(x, y+cellSize+2)
	r.fpdf.CellFormat(cellSize, 10, filepath.Base(path), "", 2, "C", false, 0, "")
	r.fpdf.CellFormat(cellSize, 10, fmt.Sprintf("%dx%d, %.0f%% opaque", b.Dx(), b.Dy(), 100*opaqueShare(img)), "", 0, "C", false, 0, "")

	r.cell++
	return r.fpdf.Error()
}

// nextcell returns the top left corner of the next thumbnail cell,
// starting a new page if the current one is full
func (r *Report) nextcell() (float64, float64) {
	_, ph := r.fpdf.GetPageSize()
	rows := int((ph - 2*sheetMargin) / (cellSize + captionH + cellGap))
	if rows < 1 {
		rows = 1
	}
	n := r.cell % (sheetCols * rows)
	if n == 0 && r.cell > 0 {
		r.fpdf.AddPage()
	}
	x := sheetMargin + float64(n%sheetCols)*(cellSize+cellGap)
	y := sheetMargin + float64(n/sheetCols)*(cellSize+captionH+cellGap)
	return x, y
}

// Save saves the sheet to the file at path
func (r *Report) Save(path string) error {
	return r.fpdf.OutputFileAndClose(path)
}

// opaqueShare returns the proportion of pixels in img with nonzero
// alpha
func opaqueShare(img *image.NRGBA) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	var n int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y) + 3
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[i] != 0 {
				n++
			}
			i += 4
		}
	}
	return float64(n) / float64(total)
}
