// Package imaging implements the raster stages of atlas construction:
// alpha masks, thresholding, morphological dilation and boundary tracing.
package imaging

import (
	"image"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// Mask is a single-channel bitmap. A pixel is opaque when its value is
// non-zero.
type Mask struct {
	W, H int
	Pix  []uint8
}

// NewMask returns an all-zero mask of the given size.
func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Opaque reports whether the pixel at (x, y) is set. Out-of-bounds
// coordinates report false.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.Pix[y*m.W+x] != 0
}

// Set marks the pixel at (x, y) opaque.
func (m *Mask) Set(x, y int) {
	m.Pix[y*m.W+x] = 255
}

// AlphaMask extracts the alpha plane of img as a mask whose pixel values are
// the raw alpha bytes.
func AlphaMask(img *image.RGBA) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			m.Pix[y*m.W+x] = img.Pix[img.PixOffset(b.Min.X+x, b.Min.Y+y)+3]
		}
	}
	return m
}

// Threshold returns a binary mask where a pixel is set iff its value in m is
// at least t.
func (m *Mask) Threshold(t int) *Mask {
	out := NewMask(m.W, m.H)
	for i, a := range m.Pix {
		if int(a) >= t {
			out.Pix[i] = 255
		}
	}
	return out
}

// Dilate applies one pass of 3x3 morphological dilation: a pixel is set iff
// it or any of its 8 neighbours is set. Out-of-bounds neighbours count as
// clear, so the mask never wraps at image edges.
func (m *Mask) Dilate() *Mask {
	out := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.dilatedAt(x, y) {
				out.Pix[y*m.W+x] = 255
			}
		}
	}
	return out
}

func (m *Mask) dilatedAt(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.Opaque(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// Bounds returns the tight bounding rect of the opaque pixels, min edges
// inclusive and max edges exclusive. An all-clear mask yields an empty rect.
func (m *Mask) Bounds() geom.Rect {
	r := geom.EmptyRect()
	found := false
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.Pix[y*m.W+x] != 0 {
				r.AddPoint(geom.Point{X: x, Y: y})
				found = true
			}
		}
	}
	if !found {
		return geom.Rect{}
	}
	r.XMax++
	r.YMax++
	return r
}
