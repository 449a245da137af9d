package media_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amalynlocs/salon-api/internal/media"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMakeReportsSourceDimensions(t *testing.T) {
	thumb, err := media.Make(encodePNG(t, 64, 32))
	require.NoError(t, err)
	require.Equal(t, 64, thumb.SourceWidth)
	require.Equal(t, 32, thumb.SourceHeight)
	require.NotEmpty(t, thumb.Data)
}

func TestMakeScalesDownLargeImages(t *testing.T) {
	thumb, err := media.Make(encodePNG(t, 960, 600))
	require.NoError(t, err)

	// output is webp; decode it back through the same package to inspect size
	cfg, _, err := image.DecodeConfig(bytes.NewReader(thumb.Data))
	require.NoError(t, err)
	require.Equal(t, 480, cfg.Width)
	require.Equal(t, 300, cfg.Height)

	// source dimensions are preserved in the metadata
	require.Equal(t, 960, thumb.SourceWidth)
	require.Equal(t, 600, thumb.SourceHeight)
}

func TestMakeRejectsNonImageData(t *testing.T) {
	_, err := media.Make([]byte("%PDF-1.4 definitely not an image"))
	require.Error(t, err)
}
