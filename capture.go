package catwalk

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/setanarut/apng"
)

// RecStatus is the capture session state. Transitions form a linear chain
// idle → recording → processing → done|error; done and error both accept a
// new Start, which restarts the chain.
type RecStatus uint8

const (
	RecIdle       RecStatus = iota // no session
	RecRecording                   // frames being collected
	RecProcessing                  // frames handed to the encoder
	RecDone                        // clip written
	RecError                       // capture failed; Start retries
)

// String returns the lowercase status name.
func (s RecStatus) String() string {
	switch s {
	case RecIdle:
		return "idle"
	case RecRecording:
		return "recording"
	case RecProcessing:
		return "processing"
	case RecDone:
		return "done"
	case RecError:
		return "error"
	default:
		return "unknown"
	}
}

// Encoder assembles an ordered frame sequence into one clip file.
type Encoder interface {
	// Name is the format key used in preference lists.
	Name() string
	// Ext is the output filename extension without the dot.
	Ext() string
	// Encode writes all frames to path at the given frame rate.
	Encode(path string, frames []image.Image, fps int) error
}

// encoders is the registry of available clip encoders.
var encoders = []Encoder{apngEncoder{}, gifEncoder{}}

// SupportedFormats lists the registered encoder names.
func SupportedFormats() []string {
	names := make([]string, len(encoders))
	for i, e := range encoders {
		names[i] = e.Name()
	}
	return names
}

// encoderFor returns the first registered encoder matching the preference
// list, scanned in preference order.
func encoderFor(prefs []string) (Encoder, error) {
	if len(encoders) == 0 {
		return nil, fmt.Errorf("clip capture is not available: no encoders registered")
	}
	for _, want := range prefs {
		for _, e := range encoders {
			if strings.EqualFold(want, e.Name()) {
				return e, nil
			}
		}
	}
	return nil, fmt.Errorf("no supported clip format in preferences %v (have %v)",
		prefs, SupportedFormats())
}

// Recorder orchestrates one timed capture session against the render loop.
// The loop feeds it one frame per tick via Capture; the recorder samples
// down to the clip rate, and when the configured duration is collected it
// encodes in the background while the loop carries on. Failures surface as a
// terminal error status with a message and never disturb rendering.
type Recorder struct {
	cfg CaptureConfig

	mu      sync.Mutex
	status  RecStatus
	msg     string
	outPath string
	enc     Encoder
	frames  []image.Image
	need    int
	stride  int
	tick    int
}

// NewRecorder creates an idle recorder with the given settings.
func NewRecorder(cfg CaptureConfig) *Recorder {
	return &Recorder{cfg: cfg}
}

// Status returns the current session state.
func (r *Recorder) Status() RecStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Message returns the failure description when Status is RecError, or "".
func (r *Recorder) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.msg
}

// OutputPath returns the written clip path when Status is RecDone, or "".
func (r *Recorder) OutputPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outPath
}

// Remaining returns the seconds of recording left, zero when not recording.
func (r *Recorder) Remaining() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status != RecRecording || r.cfg.FPS == 0 {
		return 0
	}
	return float64(r.need-len(r.frames)) / float64(r.cfg.FPS)
}

// Start begins a new capture session. Allowed from idle, done, and error;
// calls while a session is in flight are ignored. Encoder negotiation
// happens here, so an unsupported format list fails fast with an error
// status before any frame is collected.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.status == RecRecording || r.status == RecProcessing {
		return
	}

	enc, err := encoderFor(r.cfg.Formats)
	if err != nil {
		r.status = RecError
		r.msg = err.Error()
		return
	}

	fps := r.cfg.FPS
	if fps > r.cfg.TickRate {
		fps = r.cfg.TickRate
	}
	r.enc = enc
	r.need = int(r.cfg.Seconds * float64(fps))
	if r.need < 1 {
		r.need = 1
	}
	r.stride = r.cfg.TickRate / fps
	if r.stride < 1 {
		r.stride = 1
	}
	r.frames = make([]image.Image, 0, r.need)
	r.tick = 0
	r.msg = ""
	r.outPath = ""
	r.status = RecRecording
}

// Capture offers one rendered frame to the recorder. A no-op unless a
// session is recording. The frame must not be mutated afterwards; callers
// hand over a fresh snapshot each tick.
func (r *Recorder) Capture(frame image.Image) {
	r.mu.Lock()
	if r.status != RecRecording {
		r.mu.Unlock()
		return
	}
	sample := r.tick%r.stride == 0
	r.tick++
	if sample {
		r.frames = append(r.frames, frame)
	}
	if len(r.frames) < r.need {
		r.mu.Unlock()
		return
	}

	frames := r.frames
	r.frames = nil
	r.status = RecProcessing
	enc := r.enc
	r.mu.Unlock()

	go r.finish(enc, frames)
}

// finish encodes collected frames and writes the clip with a derived
// timestamped filename. Runs off the render loop.
func (r *Recorder) finish(enc Encoder, frames []image.Image) {
	dir := r.cfg.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("catwalk_%s.%s",
		time.Now().Format("20060102_150405"), enc.Ext()))

	err := os.MkdirAll(dir, 0o755)
	if err == nil {
		err = enc.Encode(path, frames, r.cfg.FPS)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.status = RecError
		r.msg = fmt.Sprintf("encode clip: %v", err)
		return
	}
	r.status = RecDone
	r.outPath = path
}

// --- Encoders ---

// apngEncoder writes an animated PNG, preserving full color.
type apngEncoder struct{}

func (apngEncoder) Name() string { return "apng" }
func (apngEncoder) Ext() string  { return "png" }

func (apngEncoder) Encode(path string, frames []image.Image, fps int) error {
	delay := 100 / fps // hundredths of a second per frame
	if delay < 1 {
		delay = 1
	}
	if err := apng.Save(path, frames, uint16(delay)); err != nil {
		return fmt.Errorf("apng %s: %w", path, err)
	}
	return nil
}

// gifEncoder writes an animated GIF, quantizing each frame to a shared
// 256-color palette.
type gifEncoder struct{}

func (gifEncoder) Name() string { return "gif" }
func (gifEncoder) Ext() string  { return "gif" }

func (gifEncoder) Encode(path string, frames []image.Image, fps int) error {
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{}
	for _, frame := range frames {
		b := frame.Bounds()
		pal := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(pal, b, frame, b.Min)
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
