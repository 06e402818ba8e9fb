// Package atlas builds a packed sprite sheet from a set of RGBA source
// images: it trims each sprite to its opaque silhouette, optionally derives a
// simplified triangle mesh covering the silhouette, packs the trimmed rects
// into a single sheet and emits the composited PNG plus a JSON manifest.
package atlas

import (
	"image"

	"github.com/Faultbox/atlasc/pkg/geom"
)

// Options controls a single atlas build.
type Options struct {
	MaxWidth       int    // sheet width cap
	MaxHeight      int    // sheet height cap
	Border         int    // transparent gutter between sprites
	Padding        int    // margin inside each sprite's sheet slot
	PowerOfTwo     bool   // round final sheet dims to powers of two
	Mesh           bool   // generate triangle meshes
	MaxVerts       int    // cap on simplified polygon vertex count
	AlphaThreshold int    // opacity threshold, 0..255
	DebugDir       string // when set, dump intermediate masks as BMP
}

// DefaultOptions returns the documented flag defaults.
func DefaultOptions() Options {
	return Options{
		MaxWidth:       2048,
		MaxHeight:      2048,
		Border:         2,
		Padding:        1,
		MaxVerts:       25,
		AlphaThreshold: 20,
	}
}

// Source is one input image together with the name recorded in the manifest.
type Source struct {
	Name  string
	Image *image.RGBA
}

// Mesh is a sprite's triangulated silhouette. Positions are in source image
// coordinates, UVs in sheet pixel coordinates; both have equal length and
// Indices holds three valid position indices per triangle.
type Mesh struct {
	Positions []geom.Point
	UVs       []geom.Point
	Indices   []uint16
}

// NumTriangles returns the triangle count.
func (m *Mesh) NumTriangles() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Sprite is one input's contribution to the atlas. SpriteRect is the trim
// region in source coordinates. SheetRect is the placed slot in sheet
// coordinates, excluding the border but including the padding band; the
// blitted pixels occupy SheetRect shrunk by the padding, which has exactly
// SpriteRect's size. A fully transparent input keeps zero rects and no mesh.
type Sprite struct {
	Name       string
	Width      int
	Height     int
	SpriteRect geom.Rect
	SheetRect  geom.Rect
	Mesh       *Mesh

	src    *image.RGBA // dropped after compositing
	placed geom.Rect   // slot including border, used for canvas sizing
}

// Atlas is the result of a build: final sheet dimensions, the composited
// sheet image and the sprite records in input order.
type Atlas struct {
	Width   int
	Height  int
	Sprites []Sprite
	Image   *image.RGBA
}
