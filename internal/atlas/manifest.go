package atlas

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// The manifest mirrors the sprite records as plain JSON. Coordinates are
// integer pixels; rects are [xmin, ymin, xmax, ymax]; the mesh sub-record is
// present only when a sprite actually carries triangles.

type manifest struct {
	Image       string           `json:"image"`
	ImageWidth  int              `json:"image_width"`
	ImageHeight int              `json:"image_height"`
	Sprites     []manifestSprite `json:"sprites"`
}

type manifestSprite struct {
	Name       string        `json:"name"`
	Size       [2]int        `json:"size"`
	SpriteRect [4]int        `json:"sprite_rect"`
	SheetRect  [4]int        `json:"sheet_rect"`
	Mesh       *manifestMesh `json:"mesh,omitempty"`
}

type manifestMesh struct {
	NumTris     int      `json:"num_tris"`
	NumVertices int      `json:"num_vertices"`
	Indices     []uint16 `json:"indices"`
	Positions   [][2]int `json:"positions"`
	UVs         [][2]int `json:"uvs"`
}

// Manifest serialises the atlas as indented JSON. imageName is recorded in
// the "image" field.
func (a *Atlas) Manifest(imageName string) ([]byte, error) {
	m := manifest{
		Image:       imageName,
		ImageWidth:  a.Width,
		ImageHeight: a.Height,
		Sprites:     make([]manifestSprite, len(a.Sprites)),
	}
	for i := range a.Sprites {
		sp := &a.Sprites[i]
		ms := manifestSprite{
			Name:       sp.Name,
			Size:       [2]int{sp.Width, sp.Height},
			SpriteRect: sp.SpriteRect.Array(),
			SheetRect:  sp.SheetRect.Array(),
		}
		if sp.Mesh.NumTriangles() > 0 {
			ms.Mesh = &manifestMesh{
				NumTris:     sp.Mesh.NumTriangles(),
				NumVertices: len(sp.Mesh.Positions),
				Indices:     sp.Mesh.Indices,
				Positions:   pointPairs(sp.Mesh.Positions),
				UVs:         pointPairs(sp.Mesh.UVs),
			}
		}
		m.Sprites[i] = ms
	}
	return json.MarshalIndent(&m, "", "  ")
}

// ImagePath returns the sheet path for a manifest path: same directory and
// basename, extension replaced by .png.
func ImagePath(manifestPath string) string {
	ext := filepath.Ext(manifestPath)
	return strings.TrimSuffix(manifestPath, ext) + ".png"
}

// WriteFiles writes the manifest at outPath and the sheet PNG next to it.
// Nothing is written until the manifest has been serialised, and files
// already written are removed again when a later write fails, so a failed
// write never leaves a partial pair behind.
func (a *Atlas) WriteFiles(outPath string) error {
	imagePath := ImagePath(outPath)
	data, err := a.Manifest(filepath.Base(imagePath))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrOutputWrite, err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("%w: %s", ErrOutputWrite, err)
	}

	f, err := os.Create(imagePath)
	if err != nil {
		os.Remove(outPath)
		return fmt.Errorf("%w: %s", ErrOutputWrite, err)
	}
	if err := png.Encode(f, a.Image); err != nil {
		f.Close()
		os.Remove(imagePath)
		os.Remove(outPath)
		return fmt.Errorf("%w: %s", ErrOutputWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(imagePath)
		os.Remove(outPath)
		return fmt.Errorf("%w: %s", ErrOutputWrite, err)
	}
	return nil
}

func pointPairs(pts []geom.Point) [][2]int {
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}
