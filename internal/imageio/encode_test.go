package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/webp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			c := color.NRGBA{200, 40, 10, 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{10, 90, 220, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".WEBP", WebP, false},
		{" tga ", TGA, false},
		{"jpeg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestWithExt(t *testing.T) {
	if got := WebP.WithExt("right_view.png"); got != "right_view.webp" {
		t.Errorf("WithExt = %q", got)
	}
	if got := PNG.WithExt("right_view.png"); got != "right_view.png" {
		t.Errorf("WithExt = %q", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	src := checker()
	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		PNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		WebP: func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
		TGA:  func(r *bytes.Reader) (image.Image, error) { return tga.Decode(r) },
	}
	for _, f := range Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := decoders[f](bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("size = %v, want %v", got.Bounds().Size(), src.Bounds().Size())
			}
			for y := 0; y < 6; y++ {
				for x := 0; x < 8; x++ {
					w := src.NRGBAAt(x, y)
					g := color.NRGBAModel.Convert(got.At(got.Bounds().Min.X+x, got.Bounds().Min.Y+y)).(color.NRGBA)
					if g != w {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g, w)
					}
				}
			}
		})
	}
}

func TestSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	// A directory occupies the target name.
	target := filepath.Join(dir, "view.png")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(target, checker(), PNG); err == nil {
		t.Fatal("expected error writing over a directory")
	}
}

func TestSaveWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(path, checker(), PNG); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("missing PNG signature")
	}
}
