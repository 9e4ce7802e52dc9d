package processor

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"sync"
	"testing"

	"github.com/phambaophuc/ai-photobooth/internal/models"
	"go.uber.org/zap"
)

var gray = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func decode(t *testing.T, data []byte) (image.Image, string) {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("image.Decode() error = %v", err)
	}
	return img, format
}

func newTestProcessor() *ImageProcessor {
	return NewImageProcessor(models.WatermarkSpec{
		Text:    "sgyouthai",
		Opacity: 0.35,
		Scale:   0.1,
		MarginX: 25,
		MarginY: 45,
	}, zap.NewNop())
}

func samePixel(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestComposite_PreservesDimensions(t *testing.T) {
	p := newTestProcessor()

	tests := []struct {
		name  string
		w, h  int
		scale float64
	}{
		{"landscape default scale", 640, 360, 0.1},
		{"portrait small scale", 300, 500, 0.05},
		{"full width logo", 200, 200, 1},
		{"tiny image", 8, 8, 0.5},
		{"single pixel", 1, 1, 0.1},
		{"logo wider than image", 3, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := p.DefaultSpec()
			spec.Scale = tt.scale

			out, format, err := p.Composite(encodePNG(t, solidImage(tt.w, tt.h, gray)), spec)
			if err != nil {
				t.Fatalf("Composite() error = %v", err)
			}
			if format != models.FormatPNG {
				t.Errorf("format = %v, want png", format)
			}

			img, _ := decode(t, out.Bytes())
			if img.Bounds().Dx() != tt.w || img.Bounds().Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestComposite_ZeroOpacityLeavesBaseUntouched(t *testing.T) {
	p := newTestProcessor()

	base := solidImage(500, 300, gray)
	for x := 0; x < 500; x++ {
		base.SetNRGBA(x, x%300, color.NRGBA{R: uint8(x), G: 40, B: 200, A: 255})
	}

	spec := p.DefaultSpec()
	spec.Opacity = 0

	out, _, err := p.Composite(encodePNG(t, base), spec)
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	img, _ := decode(t, out.Bytes())
	for y := 0; y < 300; y++ {
		for x := 0; x < 500; x++ {
			if !samePixel(img.At(x, y), base.At(x, y)) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, img.At(x, y), base.At(x, y))
			}
		}
	}
}

func TestComposite_EmptyTextDrawsOnlyLogo(t *testing.T) {
	p := newTestProcessor()

	spec := p.DefaultSpec()
	spec.Text = ""
	spec.Opacity = 1

	// 400 * 0.1 = 40 wide, 20 high for the 2:1 default badge
	logoRect := image.Rect(400-40-25, 300-20-45, 400-25, 300-45)

	out, _, err := p.Composite(encodePNG(t, solidImage(400, 300, gray)), spec)
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	img, _ := decode(t, out.Bytes())
	changedInside := false
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			pt := image.Pt(x, y)
			same := samePixel(img.At(x, y), gray)
			if pt.In(logoRect) {
				if !same {
					changedInside = true
				}
				continue
			}
			if !same {
				t.Fatalf("pixel (%d,%d) outside logo changed to %v", x, y, img.At(x, y))
			}
		}
	}
	if !changedInside {
		t.Error("expected the logo to change pixels inside its bounding box")
	}
}

func TestComposite_CaptionBelowLogo(t *testing.T) {
	p := newTestProcessor()

	out, _, err := p.Composite(encodePNG(t, solidImage(1000, 600, gray)), p.DefaultSpec())
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	img, _ := decode(t, out.Bytes())

	// caption top edge sits at 600 - 45 + 5 = 560, centred on x = 1000 - 50 - 25
	var lighter, darker int
	for y := 556; y < 600; y++ {
		for x := 800; x < 1000; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			switch {
			case r>>8 > 160:
				lighter++
			case r>>8 < 100:
				darker++
			}
		}
	}

	if lighter == 0 {
		t.Error("expected white fill pixels in the caption area")
	}
	if darker == 0 {
		t.Error("expected dark outline pixels in the caption area")
	}

	for y := 0; y < 400; y++ {
		if !samePixel(img.At(10, y), gray) {
			t.Fatalf("pixel (10,%d) far from the watermark changed", y)
		}
	}
}

func TestComposite_KeepsEncoding(t *testing.T) {
	p := newTestProcessor()
	base := solidImage(120, 80, gray)

	t.Run("jpeg stays jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, base, nil); err != nil {
			t.Fatalf("jpeg.Encode() error = %v", err)
		}

		out, format, err := p.Composite(buf.Bytes(), p.DefaultSpec())
		if err != nil {
			t.Fatalf("Composite() error = %v", err)
		}
		if format != models.FormatJPEG {
			t.Errorf("format = %v, want jpeg", format)
		}
		if _, got := decode(t, out.Bytes()); got != "jpeg" {
			t.Errorf("decoded format = %v, want jpeg", got)
		}
	})

	t.Run("gif stays gif", func(t *testing.T) {
		var buf bytes.Buffer
		if err := gif.Encode(&buf, base, nil); err != nil {
			t.Fatalf("gif.Encode() error = %v", err)
		}

		_, format, err := p.Composite(buf.Bytes(), p.DefaultSpec())
		if err != nil {
			t.Fatalf("Composite() error = %v", err)
		}
		if format != models.FormatGIF {
			t.Errorf("format = %v, want gif", format)
		}
	})
}

func TestComposite_Errors(t *testing.T) {
	p := newTestProcessor()
	good := encodePNG(t, solidImage(100, 100, gray))

	tests := []struct {
		name   string
		base   []byte
		mutate func(*models.WatermarkSpec)
		want   error
	}{
		{"undecodable base", []byte("not an image"), func(*models.WatermarkSpec) {}, ErrDecode},
		{"empty base", nil, func(*models.WatermarkSpec) {}, ErrDecode},
		{"undecodable logo", good, func(s *models.WatermarkSpec) { s.Logo = []byte{1, 2, 3} }, ErrDecode},
		{"bad font with text", good, func(s *models.WatermarkSpec) { s.Font = []byte("nope") }, ErrResource},
		{"opacity above one", good, func(s *models.WatermarkSpec) { s.Opacity = 1.5 }, ErrInvalidArgument},
		{"negative opacity", good, func(s *models.WatermarkSpec) { s.Opacity = -0.1 }, ErrInvalidArgument},
		{"zero scale", good, func(s *models.WatermarkSpec) { s.Scale = 0 }, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := p.DefaultSpec()
			tt.mutate(&spec)

			out, _, err := p.Composite(tt.base, spec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Composite() error = %v, want %v", err, tt.want)
			}
			if out != nil {
				t.Error("expected no output on failure")
			}
		})
	}

	t.Run("bad font without text is ignored", func(t *testing.T) {
		spec := p.DefaultSpec()
		spec.Text = ""
		spec.Font = []byte("nope")

		if _, _, err := p.Composite(good, spec); err != nil {
			t.Fatalf("Composite() error = %v", err)
		}
	})
}

func TestComposite_ConcurrentCallsAgree(t *testing.T) {
	p := newTestProcessor()
	base := encodePNG(t, solidImage(300, 200, gray))

	want, _, err := p.Composite(base, p.DefaultSpec())
	if err != nil {
		t.Fatalf("Composite() error = %v", err)
	}

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, _, err := p.Composite(base, p.DefaultSpec())
			if err != nil {
				t.Errorf("Composite() error = %v", err)
				return
			}
			results[i] = out.Bytes()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !bytes.Equal(got, want.Bytes()) {
			t.Errorf("result %d differs from sequential output", i)
		}
	}
}

func TestValidateImage(t *testing.T) {
	p := newTestProcessor()
	data := encodePNG(t, solidImage(10, 10, gray))

	if err := p.ValidateImage(data, int64(len(data))); err != nil {
		t.Errorf("ValidateImage() error = %v", err)
	}
	if err := p.ValidateImage(data, int64(len(data)-1)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("ValidateImage() error = %v, want ErrTooLarge", err)
	}
	if err := p.ValidateImage([]byte("text"), 0); !errors.Is(err, ErrDecode) {
		t.Errorf("ValidateImage() error = %v, want ErrDecode", err)
	}
}

func TestDefaultLogo(t *testing.T) {
	img, format := decode(t, DefaultLogo())
	if format != "png" {
		t.Errorf("format = %v, want png", format)
	}
	if img.Bounds().Dx() != 2*img.Bounds().Dy() {
		t.Errorf("logo size = %v, want 2:1", img.Bounds().Size())
	}
}
