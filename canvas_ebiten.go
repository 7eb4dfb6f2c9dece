package catwalk

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage backs all untextured triangle submissions. A 3x3 image is used
// so the sampled center texel cannot bleed at the edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(ColorWhite.toRGBA())
}

// ImageCanvas renders Canvas operations onto an ebiten image. Rectangles go
// through the vector helpers; paths are filled and stroked by triangulating
// with the vector package and submitting against a shared white pixel.
type ImageCanvas struct {
	dst *ebiten.Image

	// AntiAlias toggles antialiased rasterization. On by default.
	AntiAlias bool

	// scratch buffers grown to high-water mark
	verts []ebiten.Vertex
	inds  []uint16
}

// NewImageCanvas wraps an ebiten image as a drawing surface.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst, AntiAlias: true}
}

// Size returns the wrapped image's dimensions.
func (ic *ImageCanvas) Size() (float64, float64) {
	b := ic.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect paints a solid rectangle.
func (ic *ImageCanvas) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(ic.dst,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		c.toRGBA(), ic.AntiAlias)
}

// FillRectVGradient paints a rectangle with a vertical gradient by submitting
// one quad with per-vertex colors.
func (ic *ImageCanvas) FillRectVGradient(r Rect, top, bottom Color) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.Width), float32(r.Y+r.Height)
	ic.verts = append(ic.verts[:0],
		gradVertex(x0, y0, top),
		gradVertex(x1, y0, top),
		gradVertex(x1, y1, bottom),
		gradVertex(x0, y1, bottom),
	)
	ic.inds = append(ic.inds[:0], 0, 1, 2, 0, 2, 3)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: ic.AntiAlias}
	ic.dst.DrawTriangles(ic.verts, ic.inds, whiteSubImage, op)
}

// FillPath fills the path's contours with a solid color using the non-zero
// fill rule, so self-overlapping canopy outlines fill without holes.
func (ic *ImageCanvas) FillPath(p *Path, c Color) {
	vp := buildVectorPath(p)
	ic.verts, ic.inds = vp.AppendVerticesAndIndicesForFilling(ic.verts[:0], ic.inds[:0])
	ic.submit(c, ebiten.FillRuleNonZero)
}

// StrokePath strokes the path's contours with round caps and joins.
func (ic *ImageCanvas) StrokePath(p *Path, c Color, width float64) {
	vp := buildVectorPath(p)
	opts := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	ic.verts, ic.inds = vp.AppendVerticesAndIndicesForStroke(ic.verts[:0], ic.inds[:0], opts)
	ic.submit(c, ebiten.FillRuleFillAll)
}

// submit paints the accumulated triangles in a single premultiplied color.
func (ic *ImageCanvas) submit(c Color, rule ebiten.FillRule) {
	r := float32(c.R * c.A)
	g := float32(c.G * c.A)
	b := float32(c.B * c.A)
	a := float32(c.A)
	for i := range ic.verts {
		ic.verts[i].SrcX = 1
		ic.verts[i].SrcY = 1
		ic.verts[i].ColorR = r
		ic.verts[i].ColorG = g
		ic.verts[i].ColorB = b
		ic.verts[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: ic.AntiAlias,
		FillRule:  rule,
	}
	ic.dst.DrawTriangles(ic.verts, ic.inds, whiteSubImage, op)
}

// buildVectorPath replays recorded path ops onto an ebiten vector path.
func buildVectorPath(p *Path) *vector.Path {
	var vp vector.Path
	for _, op := range p.Ops() {
		switch op.Verb {
		case VerbMoveTo:
			vp.MoveTo(float32(op.X1), float32(op.Y1))
		case VerbLineTo:
			vp.LineTo(float32(op.X1), float32(op.Y1))
		case VerbQuadTo:
			vp.QuadTo(float32(op.X1), float32(op.Y1), float32(op.X2), float32(op.Y2))
		case VerbClose:
			vp.Close()
		}
	}
	return &vp
}

func gradVertex(x, y float32, c Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: float32(c.R * c.A),
		ColorG: float32(c.G * c.A),
		ColorB: float32(c.B * c.A),
		ColorA: float32(c.A),
	}
}
