package catwalk

import "math"

// groundLine is the fraction of the surface height where the ground plane
// begins. Trunk bases are generated just below it so trees read as planted.
const groundLine = 0.72

// Scene palette. Derived once from HSL so related shades stay in family.
var (
	skyTop     = HSL(205, 0.68, 0.62)
	skyHorizon = HSL(40, 0.75, 0.84)

	hillShades = [NumLayers]Color{
		HSL(160, 0.22, 0.62),
		HSL(155, 0.26, 0.50),
		HSL(150, 0.30, 0.40),
	}

	groundTop    = HSL(95, 0.42, 0.38)
	groundBottom = HSL(95, 0.48, 0.24)
)

// Scene owns the generated forest for one animation session and composes
// complete frames from it. The tree list is built once and treated as
// read-only afterwards; everything time-varying is recomputed per frame from
// elapsed seconds, so rendering is a pure function of its arguments.
type Scene struct {
	Width  float64
	Height float64
	Trees  []Tree

	// GrassBlades is the fixed number of foreground grass strokes.
	GrassBlades int

	path Path // scratch, reset before each use
}

// NewScene generates the forest for the configured surface size.
func NewScene(cfg Config) *Scene {
	return &Scene{
		Width:       float64(cfg.Width),
		Height:      float64(cfg.Height),
		Trees:       GenerateTrees(cfg.TreeCount, float64(cfg.Width), float64(cfg.Height)),
		GrassBlades: cfg.GrassBlades,
	}
}

// RenderFrame fully repaints the surface for the given elapsed time. Previous
// surface content is irrelevant; every layer is redrawn back to front:
// sky, hills, forest, ground, cat, foreground grass. The order is a
// compositing requirement, not a preference.
func (s *Scene) RenderFrame(c Canvas, elapsed float64) {
	s.drawSky(c)
	s.drawHills(c, elapsed)
	s.drawForest(c, elapsed)
	s.drawGround(c)
	renderCat(c, elapsed, s.Width, s.Height)
	s.drawGrass(c, elapsed)
}

// drawSky paints a full-surface vertical gradient.
func (s *Scene) drawSky(c Canvas) {
	c.FillRectVGradient(Rect{Width: s.Width, Height: s.Height}, skyTop, skyHorizon)
}

// drawHills paints three filled wave silhouettes. Each layer's ridge is a
// sinusoid of horizontal position with a per-layer phase, and drifts
// sideways at a per-layer temporal speed so the layers slide independently.
func (s *Scene) drawHills(c Canvas, elapsed float64) {
	const step = 16.0
	for layer := 0; layer < NumLayers; layer++ {
		li := float64(layer)
		baseY := s.Height * (0.46 + 0.09*li)
		amp := s.Height * (0.018 + 0.014*li)
		freq := (2.2 + 1.1*li) * 2 * math.Pi / s.Width
		phase := li*1.9 + elapsed*(0.10+0.08*li)

		p := &s.path
		p.Reset()
		p.MoveTo(-step, s.Height)
		for x := -step; x <= s.Width+step; x += step {
			p.LineTo(x, baseY+amp*math.Sin(x*freq+phase))
		}
		p.LineTo(s.Width+step, s.Height)
		p.Close()
		c.FillPath(p, hillShades[layer])
	}
}

// drawForest paints every tree in the pre-sorted descriptor order, so far
// layers always land under near ones.
func (s *Scene) drawForest(c Canvas, elapsed float64) {
	for _, t := range s.Trees {
		s.drawTree(c, t, elapsed)
	}
}

// drawTree paints one tree at its wrapped scroll position: a trunk rectangle
// topped by an irregular canopy blob. The canopy outline is an ellipse-ish
// polygon whose radii are perturbed by stateless noise keyed on the tree, so
// the blob shape is stable across frames while never a perfect ellipse.
func (s *Scene) drawTree(c Canvas, t Tree, elapsed float64) {
	x := t.ScreenX(elapsed, s.Width)
	margin := t.Width * 3
	if x < -margin || x > s.Width+margin {
		return
	}

	depth := float64(t.Layer)
	trunkW := 3 + t.Width*0.22
	top := t.BaseY - t.Height
	c.FillRect(Rect{X: x - trunkW/2, Y: top, Width: trunkW, Height: t.Height},
		HSL(25, 0.38, 0.26+0.05*depth))

	const blobSteps = 14
	rx := t.Width
	ry := t.Width * 0.82
	p := &s.path
	p.Reset()
	for i := 0; i < blobSteps; i++ {
		a := float64(i) / blobSteps * 2 * math.Pi
		wobble := 0.72 + 0.5*Noise2(float64(i)*0.9, t.X*0.013+t.Hue)
		px := x + math.Cos(a)*rx*wobble
		py := top + math.Sin(a)*ry*wobble
		if i == 0 {
			p.MoveTo(px, py)
		} else {
			p.LineTo(px, py)
		}
	}
	p.Close()
	c.FillPath(p, HSL(t.Hue, 0.26+0.09*depth, 0.46-0.06*depth))
}

// drawGround paints the lower portion of the surface with a vertical
// gradient, covering trunk bases.
func (s *Scene) drawGround(c Canvas) {
	y := s.Height * groundLine
	c.FillRectVGradient(Rect{Y: y, Width: s.Width, Height: s.Height - y},
		groundTop, groundBottom)
}

// drawGrass paints the foreground blades. Each blade is a quadratic curve
// whose root position and height are stable functions of the blade index and
// whose sway is a continuous function of elapsed time, so neighboring blades
// move independently.
func (s *Scene) drawGrass(c Canvas, elapsed float64) {
	for i := 0; i < s.GrassBlades; i++ {
		fi := float64(i)
		rootX := math.Mod(fi*37+Noise2(fi, 7)*29, s.Width+20) - 10
		rootY := s.Height - Noise2(fi, 11)*s.Height*0.06
		hgt := s.Height * (0.022 + 0.028*Noise2(fi, 3))
		sway := math.Sin(elapsed*1.8+fi*0.7) * hgt * 0.35

		p := &s.path
		p.Reset()
		p.MoveTo(rootX, rootY)
		p.QuadTo(rootX+sway*0.5, rootY-hgt*0.6, rootX+sway, rootY-hgt)
		c.StrokePath(p, HSL(110, 0.50, 0.24+0.16*Noise2(fi, 23)), 2)
	}
}
