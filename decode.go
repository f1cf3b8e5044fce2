package m7enc

import "fmt"

// ReplayStream decodes a complete m7enc byte stream produced by Encoder,
// replaying every frame envelope against the profile's boot grid and
// returning the resulting sequence of grids. It exists to exercise
// Testable Property 2 (envelope <-> grid bijection) from cmd/m7probe and
// from tests; decoding is otherwise out of this package's scope.
//
// Under the packed (2-byte) delta codec, a delta whose data byte is a
// control code cannot round-trip exactly: the packed word only carries
// bits {0,1,2,3,4,6} of the byte, the same six sub-pixel bits the original
// encoder's 16-bit pack uses, so the replayed byte is always reconstructed
// as a mosaic. This mirrors the reference encoder's own packed format
// (mode7video.cpp's `_USE_16_BIT_PACK` branch) rather than a decoding bug;
// callers that need exact control-code round-tripping must use the
// unpacked codec.
func ReplayStream(data []byte, profile Profile, unpacked bool) ([]Grid, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("m7enc: stream too short for FRAME_SIZE header")
	}
	frameSize := int(data[0]) | int(data[1])<<8
	pos := 2

	previous := blankGrid(profile)
	var grids []Grid

	for pos < len(data) {
		tag := data[pos]
		if tag == 0xFF {
			return grids, nil
		}

		current, consumed, err := decodeEnvelope(data[pos:], previous, frameSize, unpacked)
		if err != nil {
			return grids, fmt.Errorf("decodeEnvelope at byte %d failed: %w", pos, err)
		}
		pos += consumed

		grids = append(grids, current)
		previous = current
	}
	return grids, nil
}

func decodeEnvelope(data []byte, previous Grid, frameSize int, unpacked bool) (Grid, int, error) {
	if len(data) == 0 {
		return Grid{}, 0, fmt.Errorf("m7enc: empty envelope")
	}

	switch tag := data[0]; {
	case tag == 0x00:
		// 0x00 0xFF with nothing after it is a blank frame followed by the
		// stream terminator, not a full-refresh header.
		if len(data) > 2 && data[1] == 0xFF {
			if len(data) < 2+frameSize {
				return Grid{}, 0, fmt.Errorf("m7enc: truncated full-refresh envelope")
			}
			var g Grid
			for i := 0; i < frameSize; i++ {
				g[i] = Glyph(data[2+i])
			}
			return g, 2 + frameSize, nil
		}
		return previous, 1, nil

	case tag == 0xFE:
		decoded, consumed := steveDecodeN(data[1:], 32, frameSize)
		if len(decoded) != frameSize {
			return Grid{}, 0, fmt.Errorf("m7enc: truncated full-steve envelope")
		}
		var g Grid
		for i := 0; i < frameSize; i++ {
			g[i] = Glyph(decoded[i])
		}
		return g, 1 + consumed, nil

	case tag == 0xFD:
		decoded, consumed := steveDecodeN(data[1:], 0, frameSize)
		if len(decoded) != frameSize {
			return Grid{}, 0, fmt.Errorf("m7enc: truncated delta-steve envelope")
		}
		g := previous
		for i := 0; i < frameSize; i++ {
			if decoded[i] != 0 {
				g[i] = Glyph(decoded[i])
			}
		}
		return g, 1 + consumed, nil

	case tag <= maxDeltaCount:
		n := int(tag)
		bytesPerDelta := 2
		if unpacked {
			bytesPerDelta = 3
		}
		need := 1 + n*bytesPerDelta
		if len(data) < need {
			return Grid{}, 0, fmt.Errorf("m7enc: truncated delta envelope")
		}
		g := previous
		previ := 0
		pos := 1
		for k := 0; k < n; k++ {
			var offset int
			var b byte
			if unpacked {
				offset = int(data[pos]) | int(data[pos+1])<<8
				b = data[pos+2]
				pos += 3
			} else {
				word := uint16(data[pos]) | uint16(data[pos+1])<<8
				offset = int(word & 0x3FF)
				b = byte((word>>10)&0x1F) | bitGraphics | (byte((word>>15)&1) << 6)
				pos += 2
			}
			previ += offset
			g[previ] = Glyph(b)
		}
		return g, need, nil

	default:
		return Grid{}, 0, fmt.Errorf("m7enc: unrecognised envelope tag 0x%02x", tag)
	}
}
