package m7enc

// Glyph is a byte emitted into a Mode 7 character cell: either a mosaic
// (graphics) byte with bit 5 set and bit 7 clear, or a control code >= 128
// that mutates the row's render State without itself displaying pixels
// (other than possibly the held glyph, see State.Displayed).
type Glyph byte

// Mosaic sub-pixel bit positions in scan order {TL, TR, ML, MR, BL, BR}.
// Bit 5 is always set on a mosaic glyph; bit 7 is unused.
const (
	bitTL = 1 << 0
	bitTR = 1 << 1
	bitML = 1 << 2
	bitMR = 1 << 3
	bitBL = 1 << 4
	bitBR = 1 << 6
	bitGraphics = 1 << 5
)

// Blank is the mosaic byte with no sub-pixels set.
const Blank Glyph = bitGraphics

// Control codes, see spec.md section 3.
const (
	gfxColourBase    Glyph = 144 // SetFgColour(c) = gfxColourBase + c, c in 1..7
	BlackBackground  Glyph = 156
	NewBackground    Glyph = 157
	HoldGraphics     Glyph = 158
	ReleaseGraphics  Glyph = 159
)

// SetFgColour returns the control code that sets the foreground colour to c.
// c must be in 1..7; c == 0 has no corresponding control code (bit pattern
// 144 is unused by the display).
func SetFgColour(c ColourIndex) Glyph {
	return gfxColourBase + Glyph(c)
}

// FgColourOf returns the colour index a SetFgColour control code carries,
// and ok=false if g is not such a code.
func FgColourOf(g Glyph) (c ColourIndex, ok bool) {
	if g > gfxColourBase && g < gfxColourBase+8 {
		return ColourIndex(g - gfxColourBase), true
	}
	return 0, false
}

// IsMosaic reports whether g is a mosaic (graphics) byte rather than a
// control code.
func (g Glyph) IsMosaic() bool {
	return g < 128
}

// prefix cell values (spec.md section 3, "Mandatory row prefix").
const (
	prefixCell0            Glyph = 151
	prefixCell1Default     Glyph = 32
	prefixCell1Separated   Glyph = 154
)

// Row prefix cells.
func prefixCell1(separated bool) Glyph {
	if separated {
		return prefixCell1Separated
	}
	return prefixCell1Default
}
