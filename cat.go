package catwalk

import (
	"math"

	"github.com/fogleman/ease"
)

const (
	// catSpeed is the walk speed in pixels per second.
	catSpeed = 60.0
	// catStartX places the cat off-screen left at elapsed zero.
	catStartX = -150.0
	// catLoopPad extends the loop distance past the surface width so the cat
	// fully exits the right edge before re-entering on the left.
	catLoopPad = 300.0
	// gaitHz is the stride rate. Independent of position; a function of
	// elapsed time only, so the gait never stutters at the wrap point.
	gaitHz = 1.6
)

// CatX returns the cat's horizontal position at the given elapsed time. The
// position loops over a distance of width+300, starting at -150, so one full
// loop takes (width+300)/catSpeed seconds.
func CatX(elapsed, width float64) float64 {
	return math.Mod(elapsed*catSpeed, width+catLoopPad) + catStartX
}

// GaitPhase returns the stride oscillation phase in radians at the given
// elapsed time.
func GaitPhase(elapsed float64) float64 {
	return elapsed * 2 * math.Pi * gaitHz
}

// Cat palette.
var (
	catFur     = HSL(25, 0.12, 0.24)
	catFurDark = HSL(25, 0.14, 0.16)
	catEye     = HSL(48, 0.90, 0.58)
	catNose    = HSL(345, 0.55, 0.62)
	catShadow  = Color{A: 0.18}
)

// renderCat draws the procedurally posed walking cat. The gait-phase
// sinusoid alternates the front and back leg pairs, bobs the body, and curls
// the tail. Shapes are laid down back to front relative to the body: shadow,
// tail, body, legs, then head, ears, eye, nose, and whiskers, so the head
// always layers over the body.
func renderCat(c Canvas, elapsed, width, height float64) {
	x := CatX(elapsed, width)
	groundY := height * 0.88
	phase := GaitPhase(elapsed)
	swing := math.Sin(phase)

	// Body bob peaks mid-stride; easing keeps the landing soft.
	bob := ease.InOutQuad(math.Abs(swing)) * 3
	bodyY := groundY - 26 - bob

	var p Path

	// Shadow.
	p.Ellipse(x+4, groundY+4, 38, 6)
	c.FillPath(&p, catShadow)

	// Tail: a quadratic curve whose curl follows a half-rate oscillation.
	curl := ease.InOutSine((math.Sin(phase*0.5) + 1) / 2)
	p.Reset()
	p.MoveTo(x-30, bodyY-4)
	p.QuadTo(x-54, bodyY+6-curl*24, x-50, bodyY-26-curl*12)
	c.StrokePath(&p, catFur, 5)

	// Body.
	p.Reset()
	p.Ellipse(x, bodyY, 34, 16)
	c.FillPath(&p, catFur)

	// Legs: a trot. Diagonal pairs move together, front and back alternate.
	legs := [4]struct {
		hipX  float64
		swing float64
	}{
		{x - 20, swing},
		{x - 13, -swing},
		{x + 13, -swing},
		{x + 20, swing},
	}
	const legLen = 24.0
	for i, leg := range legs {
		angle := leg.swing * 0.55
		footX := leg.hipX + math.Sin(angle)*legLen
		footY := bodyY + 8 + math.Cos(angle)*legLen
		if footY > groundY {
			footY = groundY
		}
		p.Reset()
		p.MoveTo(leg.hipX, bodyY+6)
		p.LineTo(footX, footY)
		shade := catFur
		if i%2 == 0 {
			shade = catFurDark // far-side legs read darker
		}
		c.StrokePath(&p, shade, 5)
	}

	headX := x + 32
	headY := bodyY - 16 - bob*0.4

	// Ears: two triangles under the head outline.
	p.Reset()
	p.MoveTo(headX-10, headY-6)
	p.LineTo(headX-6, headY-20)
	p.LineTo(headX-1, headY-9)
	p.Close()
	p.MoveTo(headX+3, headY-9)
	p.LineTo(headX+8, headY-20)
	p.LineTo(headX+12, headY-5)
	p.Close()
	c.FillPath(&p, catFur)

	// Head.
	p.Reset()
	p.Ellipse(headX, headY, 13, 11)
	c.FillPath(&p, catFur)

	// Eye.
	p.Reset()
	p.Ellipse(headX+5, headY-3, 2.4, 3)
	c.FillPath(&p, catEye)

	// Nose.
	p.Reset()
	p.MoveTo(headX+11, headY+2)
	p.LineTo(headX+14, headY+3)
	p.LineTo(headX+11, headY+5)
	p.Close()
	c.FillPath(&p, catNose)

	// Whiskers: three strokes fanning from the muzzle.
	for i, dy := range [3]float64{-1, 2, 5} {
		p.Reset()
		p.MoveTo(headX+10, headY+3)
		p.LineTo(headX+24, headY+dy+float64(i))
		c.StrokePath(&p, catFurDark, 1)
	}
}
