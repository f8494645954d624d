// Package snapshot writes rendered frames to PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ToImage converts a packed 0x00RRGGBB frame to an opaque RGBA image.
func ToImage(pixels []uint32, width, height int) (*image.RGBA, error) {
	if len(pixels) < width*height {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d",
			width*height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(p >> 16),
				G: uint8(p >> 8),
				B: uint8(p),
				A: 0xFF,
			})
		}
	}
	return img, nil
}

// WritePNG saves a packed 0x00RRGGBB frame to path, creating parent
// directories as needed.
func WritePNG(path string, pixels []uint32, width, height int) error {
	img, err := ToImage(pixels, width, height)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

// Capture saves frames into a directory with timestamped names.
type Capture struct {
	outputDir string
	prefix    string
}

// NewCapture creates a capture handler writing prefix_<timestamp>.png
// files into outputDir.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{outputDir: outputDir, prefix: prefix}
}

// SetOutputDir sets the output directory for snapshots.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// GenerateFilename generates a snapshot filename without saving.
func (c *Capture) GenerateFilename() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", c.prefix, timestamp)
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// Save writes the frame to a timestamped file and returns its path.
func (c *Capture) Save(pixels []uint32, width, height int) (string, error) {
	filename := c.GenerateFilename()
	if err := WritePNG(filename, pixels, width, height); err != nil {
		return "", err
	}
	return filename, nil
}
