package m7enc

// assembleFrame drives row encoding across src and returns the resulting
// character grid (spec.md section 4.5). Rows beyond FRAME_HEIGHT remain at
// their initial blank/prefix values, matching Grid's zero value.
func assembleFrame(src Image, profile Profile, opt Options) (Grid, error) {
	frameWidth, frameHeight := frameDimensions(src)
	if frameWidth <= 0 || frameHeight <= 0 {
		return Grid{}, ErrImageBounds
	}
	prefixWidth := GridWidth - frameWidth

	var grid Grid
	for i := range grid {
		grid[i] = Blank
	}

	for y7 := 0; y7 < frameHeight; y7++ {
		base := y7 * GridWidth
		grid[base+0] = prefixCell0
		grid[base+1] = prefixCell1(profile.Separated)
		encodeRow(&grid, src, y7, prefixWidth, opt.useFill(), opt.useHold())
	}
	return grid, nil
}
