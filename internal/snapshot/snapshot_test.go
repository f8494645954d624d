package snapshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestToImage(t *testing.T) {
	pixels := []uint32{0xFF0000, 0x00FF00, 0x0000FF, 0x000000}
	img, err := ToImage(pixels, 2, 2)
	if err != nil {
		t.Fatalf("ToImage: %v", err)
	}

	c := img.RGBAAt(0, 0)
	if c.R != 0xFF || c.G != 0 || c.B != 0 || c.A != 0xFF {
		t.Errorf("pixel (0,0) = %+v, want opaque red", c)
	}
	c = img.RGBAAt(1, 1)
	if c.R != 0 || c.B != 0xFF {
		t.Errorf("pixel (1,1) = %+v, want blue", c)
	}
}

func TestToImageShortBuffer(t *testing.T) {
	if _, err := ToImage(make([]uint32, 3), 2, 2); err == nil {
		t.Error("short pixel buffer should be rejected")
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "frame.png")
	pixels := make([]uint32, 8*8)
	pixels[0] = 0xFFFFFF

	if err := WritePNG(path, pixels, 8, 8); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size %v, want 8x8", img.Bounds())
	}
}

func TestCaptureSave(t *testing.T) {
	dir := t.TempDir()
	c := NewCapture(dir, "frame")

	path, err := c.Save(make([]uint32, 4*4), 4, 4)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("file saved outside output dir: %s", path)
	}
}
