package atlas

import (
	"fmt"

	"github.com/ForeverZer0/rectpack"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// packSprites places every non-empty sprite into the bounded sheet. Each rect
// is inflated by the border and padding on all sides before packing; the
// resulting SheetRect excludes the border again. Packing is offline and
// deterministic for a fixed input ordering.
func packSprites(opts Options, sprites []Sprite) error {
	packer, err := rectpack.NewPacker(opts.MaxWidth, opts.MaxHeight, rectpack.MaxRectsBSSF)
	if err != nil {
		return err
	}

	inflate := 2 * (opts.Border + opts.Padding)
	packed := 0
	for i := range sprites {
		rc := sprites[i].SpriteRect
		if rc.Empty() {
			continue
		}
		packer.InsertSize(i, rc.Width()+inflate, rc.Height()+inflate)
		packed++
	}
	if packed == 0 {
		return nil
	}

	if !packer.Pack() {
		return fmt.Errorf("%w: %dx%d", ErrPackFailed, opts.MaxWidth, opts.MaxHeight)
	}

	placements := packer.Map()
	for i := range sprites {
		rc, ok := placements[i]
		if !ok {
			continue
		}
		sprites[i].placed = geom.RectWH(rc.X, rc.Y, rc.Width, rc.Height)
		sprites[i].SheetRect = sprites[i].placed.Shrink(opts.Border)
	}
	return nil
}

// canvasSize derives the final sheet dimensions from the union of the placed
// slots: extents rounded up to a multiple of 4 to keep the row pitch aligned,
// then optionally to the next power of two. Applying it twice is a no-op.
func canvasSize(opts Options, sprites []Sprite) (int, int) {
	w, h := 0, 0
	for i := range sprites {
		if sprites[i].SpriteRect.Empty() {
			continue
		}
		if sprites[i].placed.XMax > w {
			w = sprites[i].placed.XMax
		}
		if sprites[i].placed.YMax > h {
			h = sprites[i].placed.YMax
		}
	}

	// Keep the sheet writable even when every sprite is empty.
	if w == 0 {
		w = 4
	}
	if h == 0 {
		h = 4
	}

	w = alignUp4(w)
	h = alignUp4(h)
	if opts.PowerOfTwo {
		w = nextPow2(w)
		h = nextPow2(h)
	}
	return w, h
}

func alignUp4(x int) int {
	return (x + 3) &^ 3
}

func nextPow2(x int) int {
	if x <= 1 {
		return x
	}
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}
