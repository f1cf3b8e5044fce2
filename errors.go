package m7enc

import "errors"

// Error kinds, see spec.md section 7.
var (
	// ErrImageBounds is returned when an image is too small to contain
	// even one character cell after truncation to the aligned region.
	ErrImageBounds = errors.New("m7enc: image dimensions not aligned to the cell grid")

	// ErrDeltaCountOverflow documents the condition packetise recovers
	// from when a delta frame's count would exceed 0xFC even after
	// packed-offset splitting: it escalates to a full-refresh envelope
	// instead; never returned.
	ErrDeltaCountOverflow = errors.New("m7enc: delta count exceeds 0xFC under the delta header")

	// ErrRunCountOverflow documents the condition steveEncode's flushRuns
	// recovers from by splitting into multiple run bytes; never returned.
	ErrRunCountOverflow = errors.New("m7enc: run-length count exceeds the per-run cap")

	// ErrOffsetOverflow documents the condition expandDeltaOffsets
	// recovers from by padding; never returned.
	ErrOffsetOverflow = errors.New("m7enc: packed delta offset exceeds the 10-bit field")

	// ErrProfileNotFound is returned by lookupProfile for an unknown
	// profile name.
	ErrProfileNotFound = errors.New("m7enc: profile not found")
)
