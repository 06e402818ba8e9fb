package atlas

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LoadSources stats and decodes every input path, preserving order. All
// paths are checked for existence before any decoding starts, so a missing
// file is reported without touching the others.
func LoadSources(paths []string) ([]Source, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
	}

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		img, err := loadRGBA(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInputDecode, path)
		}
		sources = append(sources, Source{Name: path, Image: img})
	}
	return sources, nil
}

// loadRGBA decodes an image file and normalises it to RGBA8.
func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}
