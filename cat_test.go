package catwalk

import (
	"math"
	"testing"
)

// --- CatX ---

func TestCatXStartsOffscreenLeft(t *testing.T) {
	for _, w := range []float64{640, 1280, 1920} {
		if got := CatX(0, w); got != -150 {
			t.Errorf("CatX(0, %v) = %v, want -150", w, got)
		}
	}
}

func TestCatXLoopPeriod(t *testing.T) {
	const w = 1280.0
	loop := (w + 300) / catSpeed
	for _, e := range []float64{0, 3.25, 41} {
		a := CatX(e, w)
		b := CatX(e+loop, w)
		if math.Abs(a-b) > 1e-6 {
			t.Errorf("CatX(%v) = %v but CatX(+loop) = %v", e, a, b)
		}
	}
	if got := CatX(loop, w); math.Abs(got-(-150)) > 1e-6 {
		t.Errorf("CatX at one full loop = %v, want -150", got)
	}
}

func TestCatXAdvances(t *testing.T) {
	const w = 1280.0
	a := CatX(0, w)
	b := CatX(1, w)
	if math.Abs((b-a)-catSpeed) > 1e-9 {
		t.Errorf("walked %v px in 1s, want %v", b-a, catSpeed)
	}
}

func TestCatXCrossesSurface(t *testing.T) {
	// Over one loop the cat must traverse the whole visible width.
	const w = 640.0
	loop := (w + 300) / catSpeed
	var minX, maxX = math.Inf(1), math.Inf(-1)
	for e := 0.0; e < loop; e += 0.05 {
		x := CatX(e, w)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	if minX > -149 || maxX < w {
		t.Errorf("loop covered [%v, %v], want to span [-150, %v]", minX, maxX, w)
	}
}

// --- GaitPhase ---

func TestGaitPhase(t *testing.T) {
	if GaitPhase(0) != 0 {
		t.Errorf("GaitPhase(0) = %v, want 0", GaitPhase(0))
	}
	// One stride period advances the phase by 2π regardless of position.
	period := 1.0 / gaitHz
	if got := GaitPhase(period); math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("GaitPhase(period) = %v, want 2π", got)
	}
}

// --- renderCat ---

func TestRenderCatShapeInventory(t *testing.T) {
	tc := NewTraceCanvas(1280, 720)
	renderCat(tc, 1.0, 1280, 720)

	var fills, strokes, whiskers, limbs int
	for _, op := range tc.Ops {
		switch op.Kind {
		case OpFillPath:
			fills++
		case OpStrokePath:
			strokes++
			switch op.Width {
			case 1:
				whiskers++
			case 5:
				limbs++
			}
		default:
			t.Fatalf("unexpected op kind %d in cat", op.Kind)
		}
	}
	// Shadow, ears, body, head, eye, nose.
	if fills != 6 {
		t.Errorf("cat has %d filled shapes, want 6", fills)
	}
	if whiskers != 3 {
		t.Errorf("cat has %d whiskers, want 3", whiskers)
	}
	// Tail plus four legs.
	if limbs != 5 {
		t.Errorf("cat has %d thick strokes, want 5 (tail + 4 legs)", limbs)
	}
}

func TestRenderCatShadowFirst(t *testing.T) {
	tc := NewTraceCanvas(1280, 720)
	renderCat(tc, 0.5, 1280, 720)
	if len(tc.Ops) == 0 {
		t.Fatal("no ops")
	}
	first := tc.Ops[0]
	if first.Kind != OpFillPath || first.Color.A >= 1 {
		t.Errorf("first op should be the translucent shadow, got kind %d alpha %v",
			first.Kind, first.Color.A)
	}
}

func TestRenderCatPoseChangesWithGait(t *testing.T) {
	a := NewTraceCanvas(1280, 720)
	b := NewTraceCanvas(1280, 720)
	renderCat(a, 0, 1280, 720)
	// A quarter stride later the legs are mid-swing.
	renderCat(b, 0.25/gaitHz, 1280, 720)

	if len(a.Ops) != len(b.Ops) {
		t.Fatalf("op count changed with pose: %d vs %d", len(a.Ops), len(b.Ops))
	}
	same := true
	for i := range a.Ops {
		if a.Ops[i].Kind == OpStrokePath && a.Ops[i].Width == 5 {
			if len(a.Ops[i].Path) == len(b.Ops[i].Path) {
				for j := range a.Ops[i].Path {
					if a.Ops[i].Path[j] != b.Ops[i].Path[j] {
						same = false
					}
				}
			}
		}
	}
	if same {
		t.Error("leg and tail strokes identical a quarter stride apart")
	}
}
