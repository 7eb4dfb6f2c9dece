package catwalk

import (
	"reflect"
	"testing"
)

func testScene() *Scene {
	return NewScene(DefaultConfig())
}

// --- Purity ---

func TestRenderFramePure(t *testing.T) {
	s := testScene()
	for _, elapsed := range []float64{0, 0.016, 5, 123.456} {
		a := NewTraceCanvas(s.Width, s.Height)
		b := NewTraceCanvas(s.Width, s.Height)
		s.RenderFrame(a, elapsed)
		s.RenderFrame(b, elapsed)
		if !reflect.DeepEqual(a.Ops, b.Ops) {
			t.Errorf("elapsed %v: identical arguments produced different op streams", elapsed)
		}
	}
}

func TestRenderFrameScrubbing(t *testing.T) {
	// Rendering out of order must not matter: frames carry no accumulated
	// state, so t=2 after t=10 equals t=2 rendered first.
	s := testScene()
	first := NewTraceCanvas(s.Width, s.Height)
	s.RenderFrame(first, 2)

	scrubbed := NewTraceCanvas(s.Width, s.Height)
	s.RenderFrame(NewTraceCanvas(s.Width, s.Height), 10)
	s.RenderFrame(scrubbed, 2)

	if !reflect.DeepEqual(first.Ops, scrubbed.Ops) {
		t.Error("frame at t=2 depends on previously rendered frames")
	}
}

// --- Motion ---

func TestRenderFrameMotion(t *testing.T) {
	s := testScene()
	a := NewTraceCanvas(s.Width, s.Height)
	b := NewTraceCanvas(s.Width, s.Height)
	s.RenderFrame(a, 0)
	s.RenderFrame(b, 5)
	if reflect.DeepEqual(a.Ops, b.Ops) {
		t.Error("frames at t=0 and t=5 are identical; no motion occurred")
	}
}

// --- Frame structure ---

func TestRenderFrameWellFormed(t *testing.T) {
	s := testScene()
	full := Rect{Width: s.Width, Height: s.Height}
	for _, elapsed := range []float64{0, 5} {
		tc := NewTraceCanvas(s.Width, s.Height)
		s.RenderFrame(tc, elapsed)

		if len(tc.Ops) == 0 {
			t.Fatalf("elapsed %v: empty frame", elapsed)
		}

		// The sky is the first operation and covers the whole surface opaquely.
		sky := tc.Ops[0]
		if sky.Kind != OpFillRectVGradient {
			t.Fatalf("elapsed %v: first op kind = %d, want sky gradient", elapsed, sky.Kind)
		}
		if !sky.Rect.Covers(full) {
			t.Errorf("elapsed %v: sky %v does not cover surface", elapsed, sky.Rect)
		}
		if sky.Top.A != 1 || sky.Bottom.A != 1 {
			t.Errorf("elapsed %v: sky gradient not opaque", elapsed)
		}

		// A full-width opaque ground gradient covers the lower region.
		groundAt := -1
		for i, op := range tc.Ops {
			if i > 0 && op.Kind == OpFillRectVGradient {
				groundAt = i
				break
			}
		}
		if groundAt < 0 {
			t.Fatalf("elapsed %v: no ground gradient", elapsed)
		}
		ground := tc.Ops[groundAt]
		lower := Rect{Y: s.Height * groundLine, Width: s.Width, Height: s.Height * (1 - groundLine)}
		if !ground.Rect.Covers(lower) {
			t.Errorf("elapsed %v: ground %v does not cover %v", elapsed, ground.Rect, lower)
		}
		if ground.Top.A != 1 || ground.Bottom.A != 1 {
			t.Errorf("elapsed %v: ground gradient not opaque", elapsed)
		}
	}
}

func TestRenderFrameCompositingOrder(t *testing.T) {
	s := testScene()
	tc := NewTraceCanvas(s.Width, s.Height)
	s.RenderFrame(tc, 1.5)

	groundAt := -1
	for i, op := range tc.Ops {
		if i > 0 && op.Kind == OpFillRectVGradient {
			groundAt = i
			break
		}
	}
	if groundAt < 0 {
		t.Fatal("no ground gradient")
	}

	// Trunk rectangles belong to the forest and must precede the ground fill.
	for i, op := range tc.Ops {
		if op.Kind == OpFillRect && i > groundAt {
			t.Errorf("solid rect (trunk) at op %d after ground at %d", i, groundAt)
		}
	}

	// Grass blades are 2px strokes and must come last, after the cat.
	sawGrass := false
	for i := groundAt; i < len(tc.Ops); i++ {
		op := tc.Ops[i]
		if op.Kind == OpStrokePath && op.Width == 2 {
			sawGrass = true
		} else if sawGrass {
			t.Fatalf("op %d (kind %d) drawn after foreground grass began", i, op.Kind)
		}
	}
	if !sawGrass {
		t.Error("no grass strokes in frame")
	}
}

func TestRenderFrameHillCount(t *testing.T) {
	s := testScene()
	tc := NewTraceCanvas(s.Width, s.Height)
	s.RenderFrame(tc, 0)

	// Ops 1..3 are the three hill silhouettes, far to near.
	for i := 1; i <= NumLayers; i++ {
		if tc.Ops[i].Kind != OpFillPath {
			t.Errorf("op %d kind = %d, want hill fill", i, tc.Ops[i].Kind)
		}
	}
}

func TestRenderFrameGrassBladeCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GrassBlades = 17
	s := NewScene(cfg)
	tc := NewTraceCanvas(s.Width, s.Height)
	s.RenderFrame(tc, 3)

	grass := 0
	for _, op := range tc.Ops {
		if op.Kind == OpStrokePath && op.Width == 2 {
			grass++
		}
	}
	if grass != 17 {
		t.Errorf("frame has %d grass strokes, want 17", grass)
	}
}

// --- Benchmarks ---

func BenchmarkRenderFrame(b *testing.B) {
	s := testScene()
	tc := NewTraceCanvas(s.Width, s.Height)
	b.ReportAllocs()
	for b.Loop() {
		tc.Reset()
		s.RenderFrame(tc, 2.5)
	}
}
