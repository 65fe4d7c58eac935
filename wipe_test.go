package logoclean

import (
	"bytes"
	"fmt"
	"image/color"
	"testing"
)

func TestWipeSimple(t *testing.T) {
	wiped := color.NRGBA{255, 255, 255, 0}
	cases := []struct {
		name string
		in   color.NRGBA
		opts Options
		want color.NRGBA
	}{
		{"above threshold", color.NRGBA{250, 250, 250, 255}, Options{}, wiped},
		{"white", color.NRGBA{255, 255, 255, 255}, Options{}, wiped},
		{"at threshold", color.NRGBA{240, 240, 240, 255}, Options{}, color.NRGBA{240, 240, 240, 255}},
		{"one channel low", color.NRGBA{250, 250, 240, 255}, Options{}, color.NRGBA{250, 250, 240, 255}},
		{"dark", color.NRGBA{10, 10, 10, 255}, Options{}, color.NRGBA{10, 10, 10, 255}},
		{"custom threshold", color.NRGBA{150, 150, 150, 255}, Options{Threshold: 100}, wiped},
		{"already transparent", color.NRGBA{255, 255, 255, 0}, Options{}, wiped},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Wipe(fill(1, 1, c.in), Simple, c.opts).NRGBAAt(0, 0)
			if got != c.want {
				t.Errorf("Wipe of %v gave %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestWipeAggressive(t *testing.T) {
	wiped := color.NRGBA{255, 255, 255, 0}
	cases := []struct {
		name string
		in   color.NRGBA
		opts Options
		want color.NRGBA
	}{
		{"near white grey", color.NRGBA{130, 135, 140, 255}, Options{}, wiped},
		{"saturated red", color.NRGBA{255, 0, 0, 255}, Options{}, color.NRGBA{255, 0, 0, 255}},
		{"bright chromatic", color.NRGBA{200, 150, 200, 255}, Options{}, color.NRGBA{200, 150, 200, 255}},
		{"below threshold", color.NRGBA{100, 105, 110, 255}, Options{}, color.NRGBA{100, 105, 110, 255}},
		{"delta just inside", color.NRGBA{140, 150, 159, 255}, Options{}, wiped},
		{"delta at limit", color.NRGBA{140, 150, 160, 255}, Options{}, color.NRGBA{140, 150, 160, 255}},
		{"custom options", color.NRGBA{210, 215, 220, 255}, Options{Threshold: 200, Delta: 15}, wiped},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Wipe(fill(1, 1, c.in), Aggressive, c.opts).NRGBAAt(0, 0)
			if got != c.want {
				t.Errorf("Wipe of %v gave %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestWipeAdvanced(t *testing.T) {
	t.Run("uniform white wiped", func(t *testing.T) {
		out := Wipe(fill(8, 8, color.NRGBA{255, 255, 255, 255}), Advanced, Options{})
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if got := out.NRGBAAt(x, y); got.A != 0 {
					t.Fatalf("Pixel %d,%d still opaque: %v", x, y, got)
				}
			}
		}
	})

	t.Run("near white wiped", func(t *testing.T) {
		out := Wipe(fill(8, 8, color.NRGBA{200, 200, 200, 255}), Advanced, Options{})
		if got := out.NRGBAAt(4, 4); got.A != 0 {
			t.Errorf("Near white pixel still opaque: %v", got)
		}
	})

	// The distance clause never protects a pixel that passed the
	// white test, so a grey just over the threshold goes too, even
	// though it is further from pure white than the distance limit.
	t.Run("white wiped even when far", func(t *testing.T) {
		out := Wipe(fill(8, 8, color.NRGBA{121, 121, 121, 255}), Advanced, Options{})
		if got := out.NRGBAAt(4, 4); got.A != 0 {
			t.Errorf("Grey over the white threshold still opaque: %v", got)
		}
	})

	t.Run("grey below threshold kept", func(t *testing.T) {
		img := fill(8, 8, color.NRGBA{100, 100, 100, 255})
		out := Wipe(img, Advanced, Options{})
		if !imgsequal(img, out) {
			t.Errorf("Expected image to be untouched, but it changed")
		}
	})

	// Below the white threshold but within the colour distance
	// limit, with no edges anywhere to step in.
	t.Run("near white below threshold wiped", func(t *testing.T) {
		out := Wipe(fill(8, 8, color.NRGBA{255, 255, 110, 255}), Advanced, Options{})
		if got := out.NRGBAAt(4, 4); got.A != 0 {
			t.Errorf("Near white pixel off any edge still opaque: %v", got)
		}
	})

	t.Run("content kept, white margin wiped", func(t *testing.T) {
		img := fill(12, 12, color.NRGBA{255, 255, 255, 255})
		for y := 4; y < 8; y++ {
			for x := 4; x < 8; x++ {
				setpx(img, x, y, color.NRGBA{255, 0, 0, 255})
			}
		}
		out := Wipe(img, Advanced, Options{})
		if got := out.NRGBAAt(0, 0); got.A != 0 {
			t.Errorf("Far corner not wiped: %v", got)
		}
		if got := out.NRGBAAt(5, 5); got != (color.NRGBA{255, 0, 0, 255}) {
			t.Errorf("Content pixel changed: %v", got)
		}
		// White pixels go even where the content casts an edge
		// response over them.
		if got := out.NRGBAAt(3, 5); got.A != 0 {
			t.Errorf("White pixel beside content still opaque: %v", got)
		}
	})

	// Edges only matter for pixels that fail the white test: a pale
	// yellow within the distance limit survives along the boundary
	// the black half casts, and is wiped where the image is flat.
	t.Run("edges protect near white content", func(t *testing.T) {
		img := fill(8, 8, color.NRGBA{0, 0, 0, 255})
		for y := 0; y < 8; y++ {
			for x := 4; x < 8; x++ {
				setpx(img, x, y, color.NRGBA{255, 255, 110, 255})
			}
		}
		out := Wipe(img, Advanced, Options{})
		if got := out.NRGBAAt(4, 4); got != (color.NRGBA{255, 255, 110, 255}) {
			t.Errorf("Near white pixel on the boundary changed: %v", got)
		}
		if got := out.NRGBAAt(6, 4); got.A != 0 {
			t.Errorf("Near white pixel away from the boundary still opaque: %v", got)
		}
		if got := out.NRGBAAt(1, 4); got != (color.NRGBA{0, 0, 0, 255}) {
			t.Errorf("Black pixel changed: %v", got)
		}
	})
}

func TestWipeDominant(t *testing.T) {
	t.Run("majority colour wiped", func(t *testing.T) {
		// 89 pixels of a dark blue, 10 of a red, 1 within the
		// tolerance of the blue. The blue wins despite being
		// nothing like white.
		img := fill(10, 10, color.NRGBA{10, 20, 30, 255})
		for x := 0; x < 10; x++ {
			setpx(img, x, 9, color.NRGBA{200, 50, 50, 255})
		}
		setpx(img, 0, 0, color.NRGBA{30, 40, 50, 255})

		out := Wipe(img, Dominant, Options{})
		if got := out.NRGBAAt(5, 5); got.A != 0 {
			t.Errorf("Dominant colour not wiped: %v", got)
		}
		if got := out.NRGBAAt(0, 0); got.A != 0 {
			t.Errorf("Colour within tolerance of dominant not wiped: %v", got)
		}
		if got := out.NRGBAAt(3, 9); got != (color.NRGBA{200, 50, 50, 255}) {
			t.Errorf("Minority colour changed: %v", got)
		}
	})

	t.Run("tolerance boundary", func(t *testing.T) {
		img := fill(4, 1, color.NRGBA{100, 100, 100, 255})
		setpx(img, 2, 0, color.NRGBA{129, 129, 129, 255})
		setpx(img, 3, 0, color.NRGBA{130, 130, 130, 255})

		out := Wipe(img, Dominant, Options{})
		if got := out.NRGBAAt(2, 0); got.A != 0 {
			t.Errorf("Pixel just inside tolerance kept: %v", got)
		}
		if got := out.NRGBAAt(3, 0); got.A != 255 {
			t.Errorf("Pixel at tolerance wiped: %v", got)
		}
	})

	t.Run("tie picks lowest colour", func(t *testing.T) {
		img := fill(2, 1, color.NRGBA{5, 5, 5, 255})
		setpx(img, 1, 0, color.NRGBA{100, 100, 100, 255})

		out := Wipe(img, Dominant, Options{})
		if got := out.NRGBAAt(0, 0); got.A != 0 {
			t.Errorf("Lower tied colour not treated as dominant: %v", got)
		}
		if got := out.NRGBAAt(1, 0); got.A != 255 {
			t.Errorf("Higher tied colour wiped: %v", got)
		}
	})
}

func TestWipeLeavesInputAlone(t *testing.T) {
	img := fill(4, 4, color.NRGBA{255, 255, 255, 255})
	setpx(img, 1, 2, color.NRGBA{40, 0, 0, 255})
	saved := append([]uint8{}, img.Pix...)

	out := Wipe(img, Simple, Options{})
	if out == img {
		t.Errorf("Wipe returned its input rather than a copy")
	}
	if !bytes.Equal(img.Pix, saved) {
		t.Errorf("Wipe modified its input")
	}
}

func TestMaskIndexing(t *testing.T) {
	img := fill(3, 2, color.NRGBA{250, 250, 250, 255})
	setpx(img, 1, 0, color.NRGBA{0, 0, 0, 255})
	setpx(img, 2, 1, color.NRGBA{0, 0, 0, 255})

	want := []bool{true, false, true, true, true, false}
	got := Mask(img, Simple, Options{})
	if len(got) != len(want) {
		t.Fatalf("Mask length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("mask[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStrategyDefaults(t *testing.T) {
	cases := []struct {
		s    Strategy
		want Options
	}{
		{Simple, Options{Threshold: 240}},
		{Aggressive, Options{Threshold: 120, Delta: 20}},
		{Advanced, Options{Threshold: 120, EdgeLevel: 30}},
		{Dominant, Options{Tolerance: 30}},
	}
	for _, c := range cases {
		t.Run(c.s.String(), func(t *testing.T) {
			if got := c.s.Defaults(); got != c.want {
				t.Errorf("Defaults for %s = %+v, want %+v", c.s, got, c.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in      string
		want    Strategy
		wanterr bool
	}{
		{"simple", Simple, false},
		{"aggressive", Aggressive, false},
		{"advanced", Advanced, false},
		{"ultra", Dominant, false},
		{"dominant", Dominant, false},
		{"", Simple, true},
		{"ULTRA", Simple, true},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%q", c.in), func(t *testing.T) {
			got, err := ParseStrategy(c.in)
			if c.wanterr {
				if err == nil {
					t.Fatalf("Expected error for %q, got none", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", c.in, err)
			}
			if got != c.want {
				t.Errorf("ParseStrategy(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}

	for _, s := range []Strategy{Simple, Aggressive, Advanced, Dominant} {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v; want %v", s.String(), got, err, s)
		}
	}
}

func TestClean(t *testing.T) {
	img := fill(10, 10, color.NRGBA{255, 255, 255, 255})
	for y := 4; y < 6; y++ {
		for x := 4; x < 6; x++ {
			setpx(img, x, y, color.NRGBA{255, 0, 0, 255})
		}
	}

	got := Clean(img, Simple, Options{})
	if got.Bounds().Dx() != 2 || got.Bounds().Dy() != 2 {
		t.Fatalf("Cleaned image is %v, want 2x2", got.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c := got.NRGBAAt(x, y); c != (color.NRGBA{255, 0, 0, 255}) {
				t.Errorf("Pixel %d,%d = %v, want opaque red", x, y, c)
			}
		}
	}
}
