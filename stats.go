package m7enc

// stats accumulates the running per-frame totals cmd/m7enc prints at end of
// run unless -q is given, mirroring the counters the original encoder
// prints (numdeltas, maxdeltas, resetframes).
type stats struct {
	frames       int
	totalDeltas  int
	totalBytes   int
	maxDeltas    int
	blankFrames  int
	deltaFrames  int
	steveFrames  int
	refreshCount int
}

func (s *stats) record(env envelope, frameSize, numDeltas int) {
	s.frames++
	s.totalDeltas += numDeltas
	s.totalBytes += len(env.bytes)
	if numDeltas > s.maxDeltas {
		s.maxDeltas = numDeltas
	}
	switch env.kind {
	case kindBlank:
		s.blankFrames++
	case kindDelta:
		s.deltaFrames++
	case kindFullSteve, kindDeltaSteve:
		s.steveFrames++
	case kindFullRefresh:
		s.refreshCount++
	}
}

func (s *stats) snapshot() Stats {
	return Stats{
		Frames:       s.frames,
		TotalDeltas:  s.totalDeltas,
		TotalBytes:   s.totalBytes,
		MaxDeltas:    s.maxDeltas,
		BlankFrames:  s.blankFrames,
		DeltaFrames:  s.deltaFrames,
		SteveFrames:  s.steveFrames,
		RefreshCount: s.refreshCount,
	}
}

// Stats is a read-only snapshot of an Encoder's running totals, returned
// by Encoder.Stats for cmd/m7enc's end-of-run summary.
type Stats struct {
	Frames       int
	TotalDeltas  int
	TotalBytes   int
	MaxDeltas    int
	BlankFrames  int
	DeltaFrames  int
	SteveFrames  int
	RefreshCount int
}
