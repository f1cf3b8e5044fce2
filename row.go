package m7enc

// rowCacheEntry is the memoised minimum tail error and its achieving glyph
// for one (state, column) pair (spec.md section 4.4, "Memoisation").
type rowCacheEntry struct {
	err   int
	glyph Glyph
}

// rowSolver holds the per-row DP cache. It is allocated fresh for every row
// and discarded afterwards (spec.md section 5: "row-scoped resource,
// acquired at row start, released before the next row"), replacing the
// teacher's re-architecture note about the original's fixed 40MB array with
// a small sparse map.
type rowSolver struct {
	src         Image
	y7          int
	prefixWidth int
	useFill     bool
	useHold     bool
	cache       map[rowState]map[int]rowCacheEntry
}

func newRowSolver(src Image, y7, prefixWidth int, useFill, useHold bool) *rowSolver {
	return &rowSolver{
		src:         src,
		y7:          y7,
		prefixWidth: prefixWidth,
		useFill:     useFill,
		useHold:     useHold,
		cache:       make(map[rowState]map[int]rowCacheEntry),
	}
}

// candidate is one admissible emission considered at a cell, in the fixed
// evaluation order spec.md section 4.4 mandates for tie-breaking.
type candidate struct {
	glyph Glyph
}

// candidates returns the admissible emissions at state s, in the order
// required for reproducible tie-breaking: mosaic (if blank), NewBackground,
// BlackBackground, Hold/ReleaseGraphics, colour changes 1..7, mosaic (if
// not blank).
func (r *rowSolver) candidates(s State, x7 int) []candidate {
	mosaic := extractMosaic(r.src, x7, r.y7, r.prefixWidth, s.Bg)
	cc := make([]candidate, 0, 11)

	if mosaic == Blank {
		cc = append(cc, candidate{mosaic})
	}
	if r.useFill {
		if s.Bg != s.Fg {
			cc = append(cc, candidate{NewBackground})
		}
		if s.Bg != Black {
			cc = append(cc, candidate{BlackBackground})
		}
	}
	if r.useHold {
		if !s.Hold {
			cc = append(cc, candidate{HoldGraphics})
		} else {
			cc = append(cc, candidate{ReleaseGraphics})
		}
	}
	for c := ColourIndex(1); c <= 7; c++ {
		if c != s.Fg {
			cc = append(cc, candidate{SetFgColour(c)})
		}
	}
	if mosaic != Blank {
		cc = append(cc, candidate{mosaic})
	}
	return cc
}

// solve returns the minimum total error for the remainder of the row
// starting at column x7 in state s, and the glyph achieving it, memoising
// results per (s, x7) (spec.md section 4.4).
func (r *rowSolver) solve(s State, x7 int) (err int, glyph Glyph) {
	if x7 >= GridWidth {
		return 0, 0
	}
	id := s.id()
	if byCol, ok := r.cache[id]; ok {
		if e, ok := byCol[x7]; ok {
			return e.err, e.glyph
		}
	} else {
		r.cache[id] = make(map[int]rowCacheEntry)
	}

	best := rowCacheEntry{err: -1}
	for _, c := range r.candidates(s, x7) {
		cellErr := cellError(r.src, x7, r.y7, r.prefixWidth, c.glyph, s)
		next := s.Apply(c.glyph, r.useFill, r.useHold)
		tailErr, _ := r.solve(next, x7+1)
		total := cellErr + tailErr
		// Strict less-than: the first candidate to reach a given minimum
		// wins ties, matching mode7video.cpp's get_error_for_char (every
		// site there compares with "<", never "<="). A later-wins rule
		// would let a no-op SetFgColour/HoldGraphics candidate shadow a
		// plain mosaic whenever a cell's content already equals the
		// background, spuriously threading control codes through
		// otherwise flat regions.
		if best.err == -1 || total < best.err {
			best = rowCacheEntry{err: total, glyph: c.glyph}
		}
	}

	r.cache[id][x7] = best
	return best.err, best.glyph
}

// encodeRow fills grid's row y7 (columns prefixWidth..GridWidth, exclusive
// of the mandatory prefix cells which the caller sets separately) with the
// glyph sequence minimising displayed-vs-source error, and returns the
// total row error (spec.md section 4.4, "Reconstruction").
func encodeRow(grid *Grid, src Image, y7, prefixWidth int, useFill, useHold bool) int {
	solver := newRowSolver(src, y7, prefixWidth, useFill, useHold)
	totalErr, _ := solver.solve(initialState, prefixWidth)

	state := initialState
	for x7 := prefixWidth; x7 < GridWidth; x7++ {
		_, g := solver.solve(state, x7)
		grid[y7*GridWidth+x7] = g
		state = state.Apply(g, useFill, useHold)
	}
	return totalErr
}
