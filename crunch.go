package m7enc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/staD020/TSCrunch"
)

// WriteCrunched writes the encoder's stream through TSCrunch before handing
// it to w (-crunch, spec.md section 6 extension), the way the teacher's
// animation.go packs its displayer binaries. The Mode 7 stream is raw data
// rather than a C64 PRG, so PRG framing is left off.
func (e *Encoder) WriteCrunched(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if _, err := e.WriteTo(&buf); err != nil {
		return 0, fmt.Errorf("WriteTo buf failed: %w", err)
	}

	opt := TSCrunch.Options{
		PRG:   false,
		QUIET: !e.opt.Verbose,
	}
	tsc, err := TSCrunch.New(opt, &buf)
	if err != nil {
		return 0, fmt.Errorf("TSCrunch.New failed: %w", err)
	}
	n, err := tsc.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("tsc.WriteTo failed: %w", err)
	}
	return n, nil
}
