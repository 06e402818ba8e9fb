package atlas

import (
	"image"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// newSheet returns a zero-initialised RGBA canvas, so the border, padding
// bands and unused regions stay fully transparent.
func newSheet(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// blit copies the src pixels inside rc to (dstX, dstY) on dst, one row-wise
// copy per scanline at 4 bytes per pixel. The destination rect has exactly
// rc's size.
func blit(dst *image.RGBA, dstX, dstY int, src *image.RGBA, rc geom.Rect) {
	srcOff := src.PixOffset(src.Rect.Min.X+rc.XMin, src.Rect.Min.Y+rc.YMin)
	dstOff := dst.PixOffset(dstX, dstY)
	rowLen := rc.Width() * 4
	for y := 0; y < rc.Height(); y++ {
		copy(dst.Pix[dstOff:dstOff+rowLen], src.Pix[srcOff:srcOff+rowLen])
		srcOff += src.Stride
		dstOff += dst.Stride
	}
}
