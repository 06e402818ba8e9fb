package atlas

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/atlasc/internal/logger"
	"github.com/Faultbox/atlasc/pkg/geom"
	"github.com/Faultbox/atlasc/pkg/imaging"
)

// Build runs the full pipeline over sources: per-sprite trimming and mesh
// generation, sheet packing, canvas sizing, UV resolution and compositing.
// Sprites are processed and recorded in input order. On any error nothing is
// kept; the caller decides whether to write the result.
func Build(opts Options, sources []Source) (*Atlas, error) {
	if opts.MaxVerts < 3 {
		opts.MaxVerts = 3
	}

	sprites := make([]Sprite, len(sources))
	for i, src := range sources {
		sp, err := buildSprite(opts, src)
		if err != nil {
			return nil, err
		}
		sprites[i] = sp
	}

	if err := packSprites(opts, sprites); err != nil {
		return nil, err
	}

	w, h := canvasSize(opts, sprites)
	a := &Atlas{Width: w, Height: h, Sprites: sprites}
	a.composite(opts)

	logger.Info("atlas built",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("sprites", len(sprites)))
	return a, nil
}

// buildSprite trims one source image and, in mesh mode, derives its
// silhouette mesh. Intermediate masks are dropped as soon as the next stage
// has consumed them.
func buildSprite(opts Options, src Source) (Sprite, error) {
	bounds := src.Image.Bounds()
	sp := Sprite{
		Name:   filepath.ToSlash(src.Name),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		src:    src.Image,
	}

	alpha := imaging.AlphaMask(src.Image)
	thresholded := alpha.Threshold(opts.AlphaThreshold)

	sp.SpriteRect = thresholded.Bounds()
	if sp.SpriteRect.Empty() {
		logger.Warn("sprite has no opaque pixels", zap.String("name", sp.Name))
		return sp, nil
	}

	dilated := thresholded.Dilate()
	outline := imaging.ExtractOutline(dilated)
	if opts.DebugDir != "" {
		dumpSpriteDebug(opts.DebugDir, sp.Name, thresholded, dilated, outline)
	}

	if opts.Mesh {
		pts := geom.SimplifyOutline(outline, opts.MaxVerts)
		geom.CorrectOutline(pts, sp.Width, sp.Height, thresholded)
		tri, err := geom.Triangulate(pts, sp.Width, sp.Height)
		if err != nil {
			return Sprite{}, err
		}
		sp.Mesh = finishMesh(tri, sp.SpriteRect)
		if sp.Mesh == nil {
			logger.Warn("sprite mesh is degenerate, skipping",
				zap.String("name", sp.Name),
				zap.Int("outline_points", len(pts)))
		}
	}
	return sp, nil
}

// finishMesh clamps the triangulated positions back into the trim rect (far
// edges inclusive) and drops any triangle the clamp flattened or flipped, so
// the clockwise winding contract survives. Returns nil when nothing is left.
func finishMesh(tri geom.Triangulation, trim geom.Rect) *Mesh {
	positions := make([]geom.Point, len(tri.Positions))
	for i, p := range tri.Positions {
		positions[i] = trim.Clamp(p)
	}

	indices := make([]uint16, 0, len(tri.Indices))
	for i := 0; i+2 < len(tri.Indices); i += 3 {
		a := positions[tri.Indices[i]]
		b := positions[tri.Indices[i+1]]
		c := positions[tri.Indices[i+2]]
		area := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
		if area > 0 {
			indices = append(indices, tri.Indices[i], tri.Indices[i+1], tri.Indices[i+2])
		}
	}
	if len(indices) == 0 {
		return nil
	}
	return &Mesh{Positions: positions, Indices: indices}
}

// composite allocates the zero-initialised sheet, resolves mesh UVs against
// the final placements and blits every sprite. Source pixel buffers are
// released afterwards.
func (a *Atlas) composite(opts Options) {
	a.Image = newSheet(a.Width, a.Height)
	for i := range a.Sprites {
		sp := &a.Sprites[i]
		if sp.SpriteRect.Empty() {
			sp.src = nil
			continue
		}
		resolveUVs(sp, opts.Padding)
		blit(a.Image,
			sp.SheetRect.XMin+opts.Padding, sp.SheetRect.YMin+opts.Padding,
			sp.src, sp.SpriteRect)
		sheetRectArr := sp.SheetRect.Array()
		logger.Info("sprite placed",
			zap.String("name", sp.Name),
			zap.Ints("sheet_rect", sheetRectArr[:]))
		sp.src = nil
	}
}

// resolveUVs maps mesh positions into sheet coordinates. Positions already
// sit inside the trim rect, so the UVs land inside the padding band by
// construction.
func resolveUVs(sp *Sprite, padding int) {
	if sp.Mesh == nil {
		return
	}
	sp.Mesh.UVs = make([]geom.Point, len(sp.Mesh.Positions))
	for i, p := range sp.Mesh.Positions {
		sp.Mesh.UVs[i] = geom.Point{
			X: p.X - sp.SpriteRect.XMin + sp.SheetRect.XMin + padding,
			Y: p.Y - sp.SpriteRect.YMin + sp.SheetRect.YMin + padding,
		}
	}
}

func dumpSpriteDebug(dir, name string, thresholded, dilated *imaging.Mask, outline []geom.Point) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	for stage, m := range map[string]*imaging.Mask{"mask": thresholded, "dilated": dilated} {
		if err := imaging.DumpMask(dir, base, stage, m); err != nil {
			logger.Warn("debug dump failed", zap.String("name", name), zap.Error(err))
			return
		}
	}
	if err := imaging.DumpOutline(dir, base, "outline", thresholded.W, thresholded.H, outline); err != nil {
		logger.Warn("debug dump failed", zap.String("name", name), zap.Error(err))
	}
}
