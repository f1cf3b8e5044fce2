package m7enc

// State is the Mode 7 render state machine: foreground/background colour,
// whether hold-graphics is active, and the glyph held while it is.
type State struct {
	Fg, Bg ColourIndex
	Hold   bool
	Held   Glyph
}

// initialState is the render state at the start of every row (spec.md
// section 3, "Invariants": every row begins at state (7, 0, 0, blank)).
var initialState = State{Fg: White, Bg: Black, Hold: false, Held: Blank}

// id packs the state into the 14-bit identifier of spec.md section 3: held<<7 | hold<<6 | bg<<3 | fg.
func (s State) id() rowState {
	h := 0
	if s.Hold {
		h = 1
	}
	return rowState(int(s.Held)<<7 | h<<6 | int(s.Bg)<<3 | int(s.Fg))
}

// rowState is the packed state identifier used as a DP cache key.
type rowState int

// Displayed returns the byte actually rendered on screen for emitted glyph e
// under state s: e itself if e is a mosaic, otherwise the held glyph while
// hold-graphics is active, or blank while it isn't (spec.md section 4.2).
func (s State) Displayed(e Glyph) Glyph {
	if e.IsMosaic() {
		return e
	}
	if s.Hold {
		return s.Held
	}
	return Blank
}

// Apply returns the state reached after emitting glyph e from s, applying
// the in-band control-code transitions of spec.md section 4.4. useHold and
// useFill gate the hold-graphics and background-change control codes; when
// useHold is false, Held is always forced to Blank.
func (s State) Apply(e Glyph, useFill, useHold bool) State {
	next := s

	if useFill {
		switch e {
		case NewBackground:
			next.Bg = next.Fg
		case BlackBackground:
			next.Bg = Black
		}
	}
	if c, ok := FgColourOf(e); ok {
		next.Fg = c
	}
	if useHold {
		switch {
		case e == HoldGraphics:
			next.Hold = true
		case e == ReleaseGraphics:
			next.Hold = false
			next.Held = Blank
		case e.IsMosaic():
			next.Held = e
		}
	} else {
		next.Hold = false
		next.Held = Blank
	}
	return next
}
