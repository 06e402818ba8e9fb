package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// Debug dumps of the intermediate masks. Each sprite stage can be written as
// a grayscale BMP next to the build for visual inspection.

// DumpMask writes m as <dir>/<base>.<stage>.bmp.
func DumpMask(dir, base, stage string, m *Mask) error {
	img := image.NewGray(image.Rect(0, 0, m.W, m.H))
	copy(img.Pix, m.Pix)
	return writeBMP(dir, base, stage, img)
}

// DumpOutline renders pts as white pixels on a black w x h canvas and writes
// it as <dir>/<base>.<stage>.bmp.
func DumpOutline(dir, base, stage string, w, h int, pts []geom.Point) error {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for _, p := range pts {
		if p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h {
			img.Pix[p.Y*img.Stride+p.X] = 255
		}
	}
	return writeBMP(dir, base, stage, img)
}

func writeBMP(dir, base, stage string, img image.Image) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.%s.bmp", base, stage))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
