// Command m7enc converts a numbered sequence of dithered PNG frames into a
// packed Mode 7 teletext byte stream (spec.md section 6).
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/m7enc/m7enc"
)

var (
	help         bool
	greyscale    int
	dither       int
	thresholdInt int
)

func main() {
	t0 := time.Now()
	opt := initAndParseFlags()

	if help {
		flag.Usage()
		return
	}
	if opt.Name == "" {
		flag.Usage()
		return
	}

	if err := run(opt); err != nil {
		log.Fatalf("run failed: %v", err)
	}

	if !opt.Quiet {
		fmt.Printf("elapsed: %v\n", time.Since(t0))
	}
}

func run(opt m7enc.Options) error {
	enc, err := m7enc.NewEncoder(opt)
	if err != nil {
		return fmt.Errorf("NewEncoder failed: %w", err)
	}

	for n := opt.Start; n <= opt.End; n++ {
		src, err := loadFrame(opt, n)
		if err != nil {
			return fmt.Errorf("loadFrame %d failed: %w", n, err)
		}

		m7enc.ApplyGreyscale(src, opt.Greyscale)
		m7enc.Dither(src, opt.Dither, opt.Threshold)

		if opt.SaveImages {
			if err := m7enc.SaveDitheredImage(opt, n, src); err != nil {
				return fmt.Errorf("SaveDitheredImage %d failed: %w", n, err)
			}
		}

		if err := enc.EncodeFrame(src); err != nil {
			return fmt.Errorf("EncodeFrame %d failed: %w", n, err)
		}
	}
	enc.Close()

	if !opt.Quiet {
		s := enc.Stats()
		fmt.Printf("frames=%d totalDeltas=%d totalBytes=%d maxDeltas=%d resetframes=%d\n",
			s.Frames, s.TotalDeltas, s.TotalBytes, s.MaxDeltas, s.RefreshCount)
	}

	outFilename := filepath.Join(opt.Name, filepath.Base(opt.Name)+"_beeb.bin")
	f, err := os.Create(outFilename)
	if err != nil {
		return fmt.Errorf("os.Create %q failed: %w", outFilename, err)
	}
	defer f.Close()

	if opt.Crunch {
		if _, err := enc.WriteCrunched(f); err != nil {
			return fmt.Errorf("WriteCrunched failed: %w", err)
		}
	} else if _, err := enc.WriteTo(f); err != nil {
		return fmt.Errorf("WriteTo failed: %w", err)
	}

	if !opt.Quiet {
		fmt.Printf("wrote %q\n", outFilename)
	}
	return nil
}

func frameFilename(opt m7enc.Options, n int) string {
	base := filepath.Base(opt.Name)
	return filepath.Join(opt.Name, "frames", fmt.Sprintf("%s-%d.%s", base, n, opt.Ext))
}

func loadFrame(opt m7enc.Options, n int) (*m7enc.RGBImage, error) {
	filename := frameFilename(opt, n)
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("os.Open %q failed: %w", filename, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image.Decode %q failed: %w", filename, err)
	}

	b := img.Bounds()
	out := m7enc.NewRGBImage(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			out.Set(x, y, m7enc.RGB{R: byte(r >> 8), G: byte(g >> 8), B: byte(bl >> 8)})
		}
	}
	return out, nil
}

func initAndParseFlags() (opt m7enc.Options) {
	flag.BoolVar(&help, "h", false, "help")

	flag.BoolVar(&opt.Quiet, "q", false, "quiet, only display errors")
	flag.BoolVar(&opt.Verbose, "v", false, "verbose per-frame statistics")

	flag.StringVar(&opt.Name, "i", "", "input directory and filename stem (required)")
	flag.StringVar(&opt.Ext, "e", "png", "image file extension")
	flag.IntVar(&opt.Start, "s", 1, "start frame number")
	flag.IntVar(&opt.End, "n", 1, "last frame number (inclusive)")

	flag.IntVar(&greyscale, "g", 0, "greyscale mode: 0 none, 1 red, 2 green, 3 blue, 4 mean, 5 luminance")
	flag.IntVar(&thresholdInt, "t", 127, "dither threshold")
	flag.IntVar(&dither, "d", 0, "dither mode: 0 threshold, 1 floyd-steinberg, 2 ordered2x2, 3 ordered3x3")

	flag.BoolVar(&opt.NoHold, "nohold", false, "disable hold-graphics control codes")
	flag.BoolVar(&opt.NoFill, "nofill", false, "disable background-change control codes")
	flag.BoolVar(&opt.Separated, "sep", false, "use separated graphics for the row prefix")

	flag.BoolVar(&opt.Save, "save", false, "write per-frame grid and delta dumps")
	flag.BoolVar(&opt.SaveImages, "simg", false, "write per-frame dithered images")

	flag.StringVar(&opt.Profile, "profile", "standard", "encoder profile: standard, separated, legacy-blank")
	flag.BoolVar(&opt.Crunch, "crunch", false, "pipe the finished stream through TSCrunch")
	flag.BoolVar(&opt.Unpacked, "unpacked", false, "use the legacy 3-byte delta codec instead of the packed 2-byte one")

	flag.Parse()

	opt.Greyscale = m7enc.GreyscaleMode(greyscale)
	opt.Dither = m7enc.DitherMode(dither)
	opt.Threshold = byte(thresholdInt)
	opt.SeparatedSet = isFlagSet("sep")
	return opt
}

func isFlagSet(name string) (set bool) {
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
