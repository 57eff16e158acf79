package imagewriter

import (
	"bytes"
	"image/png"
	"testing"
)

func TestWriteProducesDecodablePNG(t *testing.T) {
	const w, h = 4, 3
	pixels := make([]byte, w*h*3)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	var buf bytes.Buffer
	if err := Write(&buf, pixels, w, h); err != nil {
		t.Fatalf("Write: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != w || bounds.Dy() != h {
		t.Fatalf("decoded size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), w, h)
	}

	r, g, b, _ := img.At(2, 1).RGBA()
	k := (1*w + 2) * 3
	wantR, wantG, wantB := pixels[k], pixels[k+1], pixels[k+2]
	if uint8(r>>8) != wantR || uint8(g>>8) != wantG || uint8(b>>8) != wantB {
		t.Errorf("pixel (2,1) = (%d,%d,%d), want (%d,%d,%d)", r>>8, g>>8, b>>8, wantR, wantG, wantB)
	}
}

func TestWriteFileCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/out.png"

	pixels := make([]byte, 2*2*3)
	if err := WriteFile(path, pixels, 2, 2); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}
