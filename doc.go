// Package catwalk renders a procedurally animated 2D scene, a walking cat
// crossing a parallax forest, onto a drawing surface, and can capture the
// animation as a short downloadable clip.
//
// Every frame is a pure function of elapsed time: the compositor fully
// repaints sky, hills, forest, ground, the cat, and foreground grass on each
// call, so rendering at any timestamp reproduces an identical frame. The
// background forest is generated once from a fixed seed and is immutable for
// the lifetime of a session.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and drives
// the animation for you:
//
//	cfg := catwalk.DefaultConfig()
//	if err := catwalk.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, build the pieces yourself: [NewScene] composes frames
// onto any [Canvas], and [NewAnimator] implements [ebiten.Game]:
//
//	scene := catwalk.NewScene(cfg)
//	anim := catwalk.NewAnimator(scene, cfg)
//	ebiten.RunGame(anim)
//
// # Drawing surfaces
//
// The compositor draws through the [Canvas] interface: filled rectangles,
// vertical gradients, and filled/stroked paths of lines and quadratic
// curves. [ImageCanvas] renders onto an ebiten image; [TraceCanvas] records
// the operation stream and is the backend used by the package's own tests.
//
// # Capture
//
// [Recorder] grabs frames from the running animation for a fixed duration
// and assembles them into an APNG or GIF clip, picking the first supported
// format from a preference list. A failed or unsupported capture reports an
// error status without disturbing the render loop.
package catwalk
