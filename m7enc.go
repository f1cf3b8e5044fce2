// Package m7enc encodes a sequence of pre-dithered raster images into a
// packed inter-frame byte stream for a 40x25 character Mode 7 teletext
// display. It implements the per-row dynamic-programming glyph/control-code
// search and the inter-frame delta/run-length codec described in SPEC_FULL.md.
package m7enc

import (
	"fmt"
	"io"
	"log"
)

// Version is the module's release string.
const Version = "0.1-dev"

// Grid dimensions, see spec.md section 3.
const (
	GridWidth  = 40
	GridHeight = 25
	GridSize   = GridWidth * GridHeight
)

// Grid is a fixed 40x25 array of glyph bytes.
type Grid [GridSize]Glyph

// Encoder owns the persistent previous-grid state, running statistics and
// output buffer for one encode run. It is not safe for concurrent use:
// frames must be encoded in strict order because each frame's encoding
// depends on the previous one (spec.md section 5).
type Encoder struct {
	opt      Options
	profile  Profile
	previous Grid
	buf      []byte
	first    bool
	stats    stats
}

// NewEncoder returns an Encoder configured by opt, with the previous-grid
// state seeded per opt.Profile (spec.md section 3, "Frame buffer pair").
func NewEncoder(opt Options) (*Encoder, error) {
	profile, err := lookupProfile(opt.Profile)
	if err != nil {
		return nil, fmt.Errorf("lookupProfile failed: %w", err)
	}
	if opt.SeparatedSet {
		profile.Separated = opt.Separated
	}
	e := &Encoder{
		opt:     opt,
		profile: profile,
		first:   true,
	}
	e.previous = blankGrid(profile)
	return e, nil
}

// blankGrid returns the initial previous-grid contents: either an all-blank
// screen, or one with the mandatory row prefix preset in every row, per
// profile.ZeroFramePreset (spec.md "Open Question 4").
func blankGrid(p Profile) (g Grid) {
	for i := range g {
		g[i] = Blank
	}
	if !p.ZeroFramePreset {
		return g
	}
	for row := 0; row < GridHeight; row++ {
		g[row*GridWidth+0] = prefixCell0
		g[row*GridWidth+1] = prefixCell1(p.Separated)
	}
	return g
}

// EncodeFrame encodes one dithered source image and appends its packed
// envelope to the Encoder's internal buffer. The image is expected to have
// already been greyscaled and dithered to {0,255} per channel.
func (e *Encoder) EncodeFrame(src Image) error {
	current, err := assembleFrame(src, e.profile, e.opt)
	if err != nil {
		return fmt.Errorf("assembleFrame failed: %w", err)
	}

	frameWidth, frameHeight := frameDimensions(src)
	frameSize := GridWidth * frameHeight

	if e.first {
		e.buf = append(e.buf, byte(frameSize), byte(frameSize>>8))
		e.first = false
	}

	deltas := computeDelta(e.previous, current, frameSize)
	env, err := packetise(e.previous, current, deltas, frameSize, e.opt)
	if err != nil {
		return fmt.Errorf("packetise failed: %w", err)
	}

	e.stats.record(env, frameSize, len(deltas))
	if e.opt.Verbose {
		log.Printf("frame %d: %s frameWidth=%d frameHeight=%d", e.stats.frames, env.describe(), frameWidth, frameHeight)
	}
	if e.opt.Save {
		if err := DumpFrame(e.opt, e.stats.frames, current, frameSize, deltas); err != nil {
			return fmt.Errorf("DumpFrame failed: %w", err)
		}
	}

	e.buf = append(e.buf, env.bytes...)
	e.previous = current
	return nil
}

// Close appends the stream terminator (spec.md section 4.8, "Stream
// terminator"). It must be called exactly once after the last frame.
func (e *Encoder) Close() {
	e.buf = append(e.buf, 0xff)
}

// WriteTo writes the accumulated byte stream to w, implementing io.WriterTo
// the way the teacher's Koala/Hires/etc. types do.
func (e *Encoder) WriteTo(w io.Writer) (n int64, err error) {
	m, err := w.Write(e.buf)
	n = int64(m)
	if err != nil {
		return n, fmt.Errorf("WriteTo failed: %w", err)
	}
	return n, nil
}

// Stats returns a copy of the running per-frame statistics (stats.go).
func (e *Encoder) Stats() Stats {
	return e.stats.snapshot()
}
