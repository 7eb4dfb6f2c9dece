package catwalk

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// clock tracks one animation session. The start timestamp is set lazily on
// the first tick and never changes afterwards within a session.
type clock struct {
	start   time.Time
	started bool
}

// elapsed returns seconds since the session's first tick.
func (k *clock) elapsed(now time.Time) float64 {
	if !k.started {
		k.start = now
		k.started = true
	}
	return now.Sub(k.start).Seconds()
}

// Animator drives the scene once per display refresh. It implements
// [ebiten.Game]: Update advances the session clock and input, Draw composes
// the frame. The running flag is the sole cancellation mechanism: once
// Stop flips it, the next callback ends the loop and no further frames are
// produced, which keeps teardown from touching a destroyed surface.
type Animator struct {
	scene *Scene
	rec   *Recorder
	cfg   Config

	running    bool
	elapsedSec float64
	clk        clock
	now        func() time.Time // injectable for tests

	fade      *TweenGroup
	fadeAlpha float64

	screenshotQueue []string

	autoRecord  bool
	autoStarted bool
}

// NewAnimator wires a scene to a fresh session: a lazy clock, an idle
// recorder, and a short fade-in from black.
func NewAnimator(scene *Scene, cfg Config) *Animator {
	a := &Animator{
		scene:     scene,
		rec:       NewRecorder(cfg.Capture),
		cfg:       cfg,
		running:   true,
		now:       time.Now,
		fadeAlpha: 1,
	}
	a.fade = TweenValue(&a.fadeAlpha, 0, 1.2, ease.OutQuad)
	return a
}

// Recorder returns the session's capture controller.
func (a *Animator) Recorder() *Recorder {
	return a.rec
}

// Running reports whether the session is still producing frames.
func (a *Animator) Running() bool {
	return a.running
}

// Stop ends the session. The transition happens exactly once; the next
// scheduled callback no-ops and deregisters from the frame scheduler.
func (a *Animator) Stop() {
	a.running = false
}

// Elapsed returns the session time rendered by the most recent tick.
func (a *Animator) Elapsed() float64 {
	return a.elapsedSec
}

// Update advances the session clock, the fade-in, and keyboard handling.
// Called by ebiten once per tick; returning [ebiten.Termination] deregisters
// the game from the frame scheduler.
func (a *Animator) Update() error {
	if !a.running {
		return ebiten.Termination
	}
	a.elapsedSec = a.clk.elapsed(a.now())
	a.fade.Update(float32(1.0 / float64(ebiten.TPS())))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.rec.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.Screenshot("frame")
	}

	if a.autoRecord {
		if !a.autoStarted {
			a.rec.Start()
			a.autoStarted = true
		}
		if s := a.rec.Status(); s == RecDone || s == RecError {
			a.Stop()
			return ebiten.Termination
		}
	}
	return nil
}

// Draw composes the frame for the current session time, then feeds the
// recorder and screenshot queue and lays the HUD on top.
func (a *Animator) Draw(screen *ebiten.Image) {
	if !a.running {
		return
	}
	c := NewImageCanvas(screen)
	a.scene.RenderFrame(c, a.elapsedSec)

	if a.fadeAlpha > 0.004 {
		c.FillRect(Rect{Width: a.scene.Width, Height: a.scene.Height},
			Color{A: a.fadeAlpha})
	}

	if a.rec.Status() == RecRecording {
		a.rec.Capture(snapshotNRGBA(screen))
	}
	a.flushScreenshots(screen)
	a.drawHUD(screen)
}

// Layout reports the fixed logical surface size.
func (a *Animator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// drawHUD prints the FPS counter and the capture status line.
func (a *Animator) drawHUD(screen *ebiten.Image) {
	if a.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	if line := a.statusLine(); line != "" {
		ebitenutil.DebugPrintAt(screen, line, 8, a.cfg.Height-20)
	}
}

// statusLine renders the recorder state for the HUD; empty when idle.
func (a *Animator) statusLine() string {
	switch a.rec.Status() {
	case RecRecording:
		return fmt.Sprintf("REC %.1fs", a.rec.Remaining())
	case RecProcessing:
		return "encoding clip..."
	case RecDone:
		return "clip saved: " + a.rec.OutputPath()
	case RecError:
		return "capture failed: " + a.rec.Message()
	default:
		return ""
	}
}

// Run opens a window and drives the animation until the window closes or
// Escape is pressed. R starts a clip recording, S takes a screenshot.
func Run(cfg Config) error {
	a, err := newSession(cfg)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run animation: %w", err)
	}
	return nil
}

// Record opens a window, records one clip of the configured duration, and
// exits. Returns the clip path, or an error carrying the recorder's message
// when capture fails. The render loop itself is unaffected by capture
// failures; the session simply ends after reporting.
func Record(cfg Config) (string, error) {
	a, err := newSession(cfg)
	if err != nil {
		return "", err
	}
	a.autoRecord = true
	if err := ebiten.RunGame(a); err != nil {
		return "", fmt.Errorf("run animation: %w", err)
	}
	if a.rec.Status() == RecError {
		return "", fmt.Errorf("record clip: %s", a.rec.Message())
	}
	return a.rec.OutputPath(), nil
}

// newSession validates config, builds the scene, and sets up the window.
func newSession(cfg Config) (*Animator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scene := NewScene(cfg)
	a := NewAnimator(scene, cfg)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.Capture.TickRate)
	return a, nil
}

// reportf writes a library diagnostic to stderr.
func reportf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[catwalk] "+format+"\n", args...)
}
