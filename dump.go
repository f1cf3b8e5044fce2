package m7enc

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// binDumpFilename returns <name>/bin/<name>-<n>.bin (spec.md section 6,
// "Output stream").
func binDumpFilename(name string, n int) string {
	base := filepath.Base(name)
	return filepath.Join(name, "bin", fmt.Sprintf("%s-%d.bin", base, n))
}

// deltaDumpFilename returns <name>/delta/<name>-<n>.delta.bin.
func deltaDumpFilename(name string, n int) string {
	base := filepath.Base(name)
	return filepath.Join(name, "delta", fmt.Sprintf("%s-%d.delta.bin", base, n))
}

// DumpFrame writes grid's first frameSize cells to the -save grid dump and
// the delta array built from deltas to the -save delta dump, creating both
// parent directories as needed.
func DumpFrame(opt Options, n int, grid Grid, frameSize int, deltas []deltaCell) error {
	if err := writeDumpFile(binDumpFilename(opt.Name, n), gridBytes(grid, frameSize), opt.Verbose); err != nil {
		return fmt.Errorf("DumpFrame grid failed: %w", err)
	}
	if err := writeDumpFile(deltaDumpFilename(opt.Name, n), deltaArray(deltas, frameSize), opt.Verbose); err != nil {
		return fmt.Errorf("DumpFrame delta failed: %w", err)
	}
	return nil
}

// simgFilename returns <name>/simg/<name>-<n>.png, the -simg dithered
// image dump (spec.md section 6).
func simgFilename(name string, n int) string {
	base := filepath.Base(name)
	return filepath.Join(name, "simg", fmt.Sprintf("%s-%d.png", base, n))
}

// SaveDitheredImage writes src, post greyscale/dither, as a PNG (-simg).
func SaveDitheredImage(opt Options, n int, src *RGBImage) error {
	filename := simgFilename(opt.Name, n)
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll %q failed: %w", filepath.Dir(filename), err)
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("os.Create %q failed: %w", filename, err)
	}
	defer f.Close()

	img := image.NewRGBA(image.Rect(0, 0, src.W, src.H))
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			px := src.At(x, y)
			img.Set(x, y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 255})
		}
	}
	if opt.Verbose {
		log.Printf("going to write file %q", filename)
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png.Encode %q failed: %w", filename, err)
	}
	return nil
}

func writeDumpFile(filename string, data []byte, verbose bool) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll %q failed: %w", filepath.Dir(filename), err)
	}
	if verbose {
		log.Printf("going to write file %q", filename)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile %q failed: %w", filename, err)
	}
	return nil
}
