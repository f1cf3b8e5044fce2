package m7enc

// Options configures an Encoder and the cmd/m7enc CLI. Fields mirror the
// command-line surface of spec.md section 6, the way the teacher's
// png2prg.Options does for its own CLI; DisableDeltaSteve and
// SeparatedSet have no flag of their own.
type Options struct {
	Quiet   bool
	Verbose bool

	// Profile selects a named encoder profile from config.go (default
	// "standard" if empty).
	Profile string

	// NoHold disables HoldGraphics/ReleaseGraphics control codes
	// (-nohold).
	NoHold bool
	// NoFill disables NewBackground/BlackBackground control codes
	// (-nofill).
	NoFill bool
	// Separated selects separated-graphics prefix cell 1 (154 instead of
	// 32, -sep). Overrides the profile's default when explicitly set via
	// SeparatedSet.
	Separated    bool
	SeparatedSet bool

	// Unpacked selects the legacy 3-byte delta codec instead of the
	// packed 2-byte one (-unpacked, spec.md "Open Question 3").
	Unpacked bool
	// DisableDeltaSteve disables the delta-steve candidate representation
	// (spec.md section 4.8 step 3, "S_delta may be disabled at build
	// time").
	DisableDeltaSteve bool

	// Crunch pipes the finished stream through TSCrunch before writing
	// (-crunch).
	Crunch bool

	// Save writes per-frame grid/delta dumps (-save).
	Save bool
	// SaveImages writes per-frame dithered images (-simg).
	SaveImages bool

	// Name is the input directory/filename stem (-i).
	Name string
	// Ext is the image file extension (-e, default "png").
	Ext string
	// Start and End are the first and last frame numbers, inclusive
	// (-s, -n).
	Start, End int

	// Greyscale and Dither select the greyscale conversion and dithering
	// algorithm (-g, -d).
	Greyscale GreyscaleMode
	Dither    DitherMode
	// Threshold is the dither threshold (-t, default 127).
	Threshold byte
}

func (o Options) useHold() bool { return !o.NoHold }
func (o Options) useFill() bool { return !o.NoFill }
