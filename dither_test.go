package m7enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGreyscaleNoneLeavesImageUntouched(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(2, 1)
	img.Set(0, 0, RGB{10, 20, 30})
	ApplyGreyscale(img, GreyscaleNone)
	assert.Equal(t, RGB{10, 20, 30}, img.At(0, 0))
}

func TestApplyGreyscaleRedBroadcastsRedChannel(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(1, 1)
	img.Set(0, 0, RGB{200, 20, 30})
	ApplyGreyscale(img, GreyscaleRed)
	assert.Equal(t, RGB{200, 200, 200}, img.At(0, 0))
}

func TestApplyGreyscaleMeanAveragesChannels(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(1, 1)
	img.Set(0, 0, RGB{30, 60, 90})
	ApplyGreyscale(img, GreyscaleMean)
	assert.Equal(t, RGB{60, 60, 60}, img.At(0, 0))
}

func TestApplyGreyscaleLuminanceWeightsGreenMost(t *testing.T) {
	t.Parallel()
	red := NewRGBImage(1, 1)
	red.Set(0, 0, RGB{255, 0, 0})
	ApplyGreyscale(red, GreyscaleLuminance)

	green := NewRGBImage(1, 1)
	green.Set(0, 0, RGB{0, 255, 0})
	ApplyGreyscale(green, GreyscaleLuminance)

	assert.Greater(t, green.At(0, 0).R, red.At(0, 0).R)
}

func TestThresholdDitherSnapsToExtremes(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(2, 1)
	img.Set(0, 0, RGB{100, 100, 100})
	img.Set(1, 0, RGB{200, 200, 200})
	Dither(img, DitherThreshold, 127)
	assert.Equal(t, RGB{0, 0, 0}, img.At(0, 0))
	assert.Equal(t, RGB{255, 255, 255}, img.At(1, 0))
}

func TestThresholdDitherBoundaryIsInclusive(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(1, 1)
	img.Set(0, 0, RGB{127, 127, 127})
	Dither(img, DitherThreshold, 127)
	assert.Equal(t, RGB{255, 255, 255}, img.At(0, 0), "v >= t counts as on")
}

func TestFloydSteinbergDitherProducesOnlyExtremes(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, RGB{128, 128, 128})
		}
	}
	Dither(img, DitherFloydSteinberg, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			px := img.At(x, y)
			for _, v := range []byte{px.R, px.G, px.B} {
				assert.True(t, v == 0 || v == 255, "pixel (%d,%d) channel value %d not an extreme", x, y, v)
			}
		}
	}
}

func TestFloydSteinbergAllBlackStaysBlack(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(3, 3)
	Dither(img, DitherFloydSteinberg, 0)
	for _, px := range img.Pix {
		assert.Equal(t, RGB{0, 0, 0}, px)
	}
}

func TestOrdered2x2DitherProducesOnlyExtremes(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, RGB{128, 128, 128})
		}
	}
	Dither(img, DitherOrdered2x2, 0)
	for _, px := range img.Pix {
		for _, v := range []byte{px.R, px.G, px.B} {
			assert.True(t, v == 0 || v == 255)
		}
	}
}

func TestOrdered3x3DitherProducesOnlyExtremes(t *testing.T) {
	t.Parallel()
	img := NewRGBImage(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			img.Set(x, y, RGB{90, 90, 90})
		}
	}
	Dither(img, DitherOrdered3x3, 0)
	for _, px := range img.Pix {
		for _, v := range []byte{px.R, px.G, px.B} {
			assert.True(t, v == 0 || v == 255)
		}
	}
}
