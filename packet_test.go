package m7enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blankFrameGrid() Grid {
	var g Grid
	for i := range g {
		g[i] = Blank
	}
	return g
}

func TestPacketiseNoChangesIsBlank(t *testing.T) {
	t.Parallel()
	prev := blankFrameGrid()
	cur := blankFrameGrid()
	frameSize := GridWidth * 8
	env, err := packetise(prev, cur, nil, frameSize, Options{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, env.bytes)
	assert.Equal(t, kindBlank, env.kind)
}

func TestPacketiseSingleChangeIsPackedDeltaWord(t *testing.T) {
	t.Parallel()
	// Scenario (b): a single changed cell at prefix_width, offset from
	// previ=0 equals prefix_width, well within the 10-bit field, and with
	// a mosaic data byte so the packed word round-trips losslessly.
	prefixWidth := 2
	prev := blankFrameGrid()
	cur := blankFrameGrid()
	cur[prefixWidth] = Glyph(33) // 0x21: bit5 + bit0

	deltas := computeDelta(prev, cur, GridWidth*8)
	require.Len(t, deltas, 1)

	env, err := packetise(prev, cur, deltas, GridWidth*8, Options{})
	require.NoError(t, err)
	require.Equal(t, kindDelta, env.kind)
	require.Equal(t, []byte{0x01}, env.bytes[:1], "N=1")

	word := uint16(env.bytes[1]) | uint16(env.bytes[2])<<8
	wantWord := packDeltaWord(packedDelta{offset: prefixWidth, data: 33})
	assert.Equal(t, wantWord, word)
	assert.Equal(t, uint16(prefixWidth), word&0x3FF, "offset bits")
}

func TestPacketiseSecondIdenticalFrameIsBlank(t *testing.T) {
	t.Parallel()
	frameSize := GridWidth * 8
	first := blankFrameGrid()
	first[10] = Glyph(45)

	prev := blankFrameGrid()
	deltas := computeDelta(prev, first, frameSize)
	env1, err := packetise(prev, first, deltas, frameSize, Options{})
	require.NoError(t, err)
	assert.NotEqual(t, []byte{0x00}, env1.bytes)

	second := first // identical to first, no changes
	deltas2 := computeDelta(first, second, frameSize)
	env2, err := packetise(first, second, deltas2, frameSize, Options{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, env2.bytes)
	assert.Equal(t, kindBlank, env2.kind)
}

func TestPacketiseOverflowingDeltaCountEscalatesToFullRefresh(t *testing.T) {
	t.Parallel()
	frameSize := GridWidth * 8
	prev := blankFrameGrid()
	cur := blankFrameGrid()
	// Change every cell: well beyond maxDeltaCount (0xFC) changes.
	for i := 0; i < frameSize; i++ {
		cur[i] = Glyph(33)
	}
	deltas := computeDelta(prev, cur, frameSize)
	require.Greater(t, len(deltas), maxDeltaCount)

	env, err := packetise(prev, cur, deltas, frameSize, Options{})
	require.NoError(t, err)
	assert.NotEqual(t, kindDelta, env.kind, "must not emit N > 0xFC under a delta header")
	assert.Equal(t, kindFullRefresh, env.kind)
	assert.Equal(t, byte(0x00), env.bytes[0])
	assert.Equal(t, byte(0xFF), env.bytes[1])
	assert.Equal(t, gridBytes(cur, frameSize), env.bytes[2:])
}

func TestExpandDeltaOffsetsSplitsLargeGaps(t *testing.T) {
	t.Parallel()
	deltas := []deltaCell{{index: 2000, data: Glyph(45)}}
	packed := expandDeltaOffsets(deltas)
	// 2000 needs two hops: 1023 + 977.
	require.Len(t, packed, 2)
	assert.Equal(t, maxPackedOffset, packed[0].offset)
	assert.Equal(t, byte(0), packed[0].data)
	assert.Equal(t, 2000-maxPackedOffset, packed[1].offset)
	assert.Equal(t, byte(45), packed[1].data)
}

func TestPackDeltaWordPacksOffsetAndMosaicData(t *testing.T) {
	t.Parallel()
	d := packedDelta{offset: 513, data: 33} // 0x21: bits {0,5} set
	word := packDeltaWord(d)
	assert.Equal(t, uint16(513), word&0x3FF)
	assert.Equal(t, uint16(1), (word>>10)&0x1F, "bit 0 of data lands in bits 10-14")
	assert.Equal(t, uint16(0), (word>>15)&1, "bit 6 of data (unset here) lands in bit 15")
}

func TestBuildDeltaEnvelopeUnpackedUsesThreeBytesPerDelta(t *testing.T) {
	t.Parallel()
	deltas := []packedDelta{{offset: 5, data: 45}, {offset: 100, data: 33}}
	env := buildDeltaEnvelope(deltas, true)
	require.Len(t, env.bytes, 1+2*3)
	assert.Equal(t, byte(2), env.bytes[0])
	assert.Equal(t, byte(5), env.bytes[1])
	assert.Equal(t, byte(0), env.bytes[2])
	assert.Equal(t, byte(45), env.bytes[3])
}
