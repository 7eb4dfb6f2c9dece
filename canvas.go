package catwalk

import "math"

// Canvas is the drawing-surface contract required by the frame compositor:
// filled rectangles, vertical linear gradients, and filled or stroked paths
// built from lines and quadratic curves. Any raster backend providing these
// operations can host the scene; the package ships [ImageCanvas] for ebiten
// images and [TraceCanvas] for inspection and tests.
type Canvas interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height float64)
	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)
	// FillRectVGradient paints a rectangle with a vertical linear gradient
	// from top color to bottom color.
	FillRectVGradient(r Rect, top, bottom Color)
	// FillPath fills the path's closed contours with a solid color.
	FillPath(p *Path, c Color)
	// StrokePath strokes the path's contours with the given line width.
	StrokePath(p *Path, c Color, width float64)
}

// PathVerb identifies one path-building operation.
type PathVerb uint8

const (
	VerbMoveTo PathVerb = iota // start a new contour at (X1, Y1)
	VerbLineTo                 // straight segment to (X1, Y1)
	VerbQuadTo                 // quadratic curve via control (X1, Y1) to (X2, Y2)
	VerbClose                  // close the current contour
)

// PathOp is a single recorded path operation. For VerbQuadTo, (X1, Y1) is the
// control point and (X2, Y2) the end point; other verbs use only (X1, Y1).
type PathOp struct {
	Verb           PathVerb
	X1, Y1, X2, Y2 float64
}

// ellipseSegments is the fixed sampling resolution for Ellipse outlines.
// Fixed so that identical inputs always produce identical op streams.
const ellipseSegments = 24

// Path accumulates drawing operations for later submission to a Canvas.
// The zero value is an empty path ready for use.
type Path struct {
	ops []PathOp
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Verb: VerbMoveTo, X1: x, Y1: y})
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, PathOp{Verb: VerbLineTo, X1: x, Y1: y})
}

// QuadTo appends a quadratic curve through control point (cx, cy) ending at
// (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ops = append(p.ops, PathOp{Verb: VerbQuadTo, X1: cx, Y1: cy, X2: x, Y2: y})
}

// Close closes the current contour back to its starting point.
func (p *Path) Close() {
	p.ops = append(p.ops, PathOp{Verb: VerbClose})
}

// Ellipse appends a closed contour approximating an axis-aligned ellipse
// centered at (cx, cy) with radii rx and ry, sampled at a fixed angular step.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	for i := 0; i < ellipseSegments; i++ {
		a := float64(i) / ellipseSegments * 2 * math.Pi
		x := cx + math.Cos(a)*rx
		y := cy + math.Sin(a)*ry
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
}

// Ops returns the recorded operations. The returned slice MUST NOT be mutated.
func (p *Path) Ops() []PathOp {
	return p.ops
}

// Reset empties the path, retaining its backing storage.
func (p *Path) Reset() {
	p.ops = p.ops[:0]
}

// CanvasOpKind identifies one recorded Canvas operation.
type CanvasOpKind uint8

const (
	OpFillRect CanvasOpKind = iota
	OpFillRectVGradient
	OpFillPath
	OpStrokePath
)

// CanvasOp is one operation recorded by a TraceCanvas. Path ops are copied at
// record time, so the originating Path may be reused afterwards.
type CanvasOp struct {
	Kind        CanvasOpKind
	Rect        Rect
	Color       Color
	Top, Bottom Color   // gradient endpoints, OpFillRectVGradient only
	Width       float64 // line width, OpStrokePath only
	Path        []PathOp
}

// TraceCanvas records every operation submitted to it instead of rasterizing.
// Two identical op streams imply identical pixel output on any conforming
// backend, which makes the trace the purity oracle in tests.
type TraceCanvas struct {
	W, H float64
	Ops  []CanvasOp
}

// NewTraceCanvas creates a recording canvas of the given size.
func NewTraceCanvas(width, height float64) *TraceCanvas {
	return &TraceCanvas{W: width, H: height}
}

// Size returns the surface dimensions.
func (t *TraceCanvas) Size() (float64, float64) {
	return t.W, t.H
}

// FillRect records a solid rectangle fill.
func (t *TraceCanvas) FillRect(r Rect, c Color) {
	t.Ops = append(t.Ops, CanvasOp{Kind: OpFillRect, Rect: r, Color: c})
}

// FillRectVGradient records a vertical gradient fill.
func (t *TraceCanvas) FillRectVGradient(r Rect, top, bottom Color) {
	t.Ops = append(t.Ops, CanvasOp{Kind: OpFillRectVGradient, Rect: r, Top: top, Bottom: bottom})
}

// FillPath records a path fill.
func (t *TraceCanvas) FillPath(p *Path, c Color) {
	t.Ops = append(t.Ops, CanvasOp{Kind: OpFillPath, Color: c, Path: copyOps(p)})
}

// StrokePath records a path stroke.
func (t *TraceCanvas) StrokePath(p *Path, c Color, width float64) {
	t.Ops = append(t.Ops, CanvasOp{Kind: OpStrokePath, Color: c, Width: width, Path: copyOps(p)})
}

// Reset discards recorded operations, retaining backing storage.
func (t *TraceCanvas) Reset() {
	t.Ops = t.Ops[:0]
}

func copyOps(p *Path) []PathOp {
	ops := make([]PathOp, len(p.ops))
	copy(ops, p.ops)
	return ops
}
