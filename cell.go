package m7enc

// subPixelBits are the six mosaic bit positions in scan order
// {TL, TR, ML, MR, BL, BR}, spec.md section 3/4.2. Bit 5 is skipped (always
// set on a mosaic, never a pixel) and bit 7 is unused.
var subPixelBits = [6]byte{bitTL, bitTR, bitML, bitMR, bitBL, bitBR}

// subPixelCoord returns the (dx, dy) offset of sub-pixel k (0..5) from a
// cell's top-left source pixel: column contributes x, x+1; row contributes
// y, y+1, y+2 (spec.md section 4.2).
func subPixelCoord(k int) (dx, dy int) {
	return k % 2, k / 2
}

// cellSourceOrigin returns the source pixel coordinate of a cell's top-left
// sub-pixel, given the cell's column x7 (image coordinates, including the
// prefix columns) and row y7 (spec.md section 4.2).
func cellSourceOrigin(x7, y7, prefixWidth int) (x, y int) {
	return (x7 - prefixWidth) * 2, y7 * 3
}

// cellError scores emitted glyph e against the six source pixels of the
// cell at (x7, y7) under state s (spec.md section 4.2).
func cellError(src Image, x7, y7, prefixWidth int, e Glyph, s State) int {
	displayed := s.Displayed(e)
	x0, y0 := cellSourceOrigin(x7, y7, prefixWidth)

	total := 0
	for k := 0; k < 6; k++ {
		dx, dy := subPixelCoord(k)
		var fgOrBg RGB
		if byte(displayed)&subPixelBits[k] != 0 {
			fgOrBg = RGBOf(s.Fg)
		} else {
			fgOrBg = RGBOf(s.Bg)
		}
		srcPx := src.At(x0+dx, y0+dy)
		total += sqDiff(fgOrBg.R, srcPx.R) + sqDiff(fgOrBg.G, srcPx.G) + sqDiff(fgOrBg.B, srcPx.B)
	}
	return total
}

func sqDiff(a, b byte) int {
	d := int(a) - int(b)
	return d * d
}

// extractMosaic derives the 6-bit mosaic glyph that best reproduces the
// cell at (x7, y7) against background bg (spec.md section 4.3): bit k is
// set iff the corresponding source pixel's colour index differs from bg.
func extractMosaic(src Image, x7, y7, prefixWidth int, bg ColourIndex) Glyph {
	x0, y0 := cellSourceOrigin(x7, y7, prefixWidth)
	var b byte = bitGraphics
	for k := 0; k < 6; k++ {
		dx, dy := subPixelCoord(k)
		if ColourOf(src.At(x0+dx, y0+dy)) != bg {
			b |= subPixelBits[k]
		}
	}
	return Glyph(b)
}
