// Package media post-processes uploaded files. Decodable images get a webp
// thumbnail stored next to the original; anything else passes through
// untouched.
package media

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Thumbnails are capped at this many pixels on the longest edge.
const maxThumbEdge = 480

type Thumbnail struct {
	Data []byte // webp-encoded

	// Dimensions of the source image, not the thumbnail.
	SourceWidth  int
	SourceHeight int
}

// Make decodes data and renders a scaled-down webp copy. Returns an error
// for anything that is not a jpeg/png/gif/webp image; callers treat that as
// "no thumbnail", not as an upload failure.
func Make(data []byte) (*Thumbnail, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	thumbW, thumbH := fit(srcW, srcH)

	dst := image.NewRGBA(image.Rect(0, 0, thumbW, thumbH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}

	return &Thumbnail{
		Data:         buf.Bytes(),
		SourceWidth:  srcW,
		SourceHeight: srcH,
	}, nil
}

func fit(w, h int) (int, int) {
	if w <= maxThumbEdge && h <= maxThumbEdge {
		return w, h
	}

	if w >= h {
		return maxThumbEdge, max(1, h*maxThumbEdge/w)
	}
	return max(1, w*maxThumbEdge/h), maxThumbEdge
}
