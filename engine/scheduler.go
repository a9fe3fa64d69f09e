package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
)

// Renderer draws one frame of a visual motif. Implementations must be
// pure functions of the effective time plus their mount-time options:
// rendering the same time twice produces the same cells, and wall-clock
// time is never read inside Render.
type Renderer interface {
	// Init creates the effect's entities for the given bounds. Called
	// once at mount; calling it again on a populated effect is a no-op.
	Init(w, h int)

	// Resize adapts to new bounds without resetting existing entities.
	Resize(w, h int)

	// Render paints one frame at effective time t.
	Render(t time.Duration, buf *render.Buffer)
}

// InstanceConfig carries the resolved inputs for one mounted effect.
// Quality tier, signals, and accent are passed in explicitly rather than
// read from globals inside the effect.
type InstanceConfig struct {
	Surface  render.Surface
	Renderer Renderer
	Signals  *Signals
	Tier     parameter.Tier

	// ForceEnable bypasses the global animation toggle and focus state,
	// for preview contexts that must always animate.
	ForceEnable bool

	// Time defaults to the monotonic system clock
	Time TimeProvider

	// Log defaults to a disabled logger; a decorative background never
	// needs to be loud
	Log *zerolog.Logger
}

// Instance is one mounted effect: its clock, its buffer, its frame loop.
// Instances share nothing; each owns its surface exclusively.
type Instance struct {
	surface  render.Surface
	renderer Renderer
	signals  *Signals
	force    bool
	interval time.Duration
	time     TimeProvider
	log      zerolog.Logger

	clock    *SuspendClock
	buf      *render.Buffer
	lastDraw time.Time
	invalid  atomic.Bool

	mounted  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// minTickInterval bounds how fast the loop spins while a frame is
// overdue, independent of the render throttle
const minTickInterval = 4 * time.Millisecond

// Mount prepares an effect instance on the given surface. A nil or
// unusable surface disables the instance silently: Mount returns nil and
// every method on a nil *Instance is a no-op, so a missing drawing
// surface degrades to "render nothing" instead of failing the host.
func Mount(cfg InstanceConfig) *Instance {
	log := zerolog.Nop()
	if cfg.Log != nil {
		log = *cfg.Log
	}
	if cfg.Surface == nil || cfg.Renderer == nil {
		log.Debug().Msg("no drawing surface, effect disabled")
		return nil
	}
	w, h := cfg.Surface.Size()
	if w <= 0 || h <= 0 {
		log.Debug().Int("width", w).Int("height", h).Msg("degenerate surface, effect disabled")
		return nil
	}
	tp := cfg.Time
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	signals := cfg.Signals
	if signals == nil {
		signals = NewSignals()
	}

	in := &Instance{
		surface:  cfg.Surface,
		renderer: cfg.Renderer,
		signals:  signals,
		force:    cfg.ForceEnable,
		interval: cfg.Tier.FrameInterval(),
		time:     tp,
		log:      log,
		clock:    NewSuspendClock(),
		buf:      render.NewBuffer(w, h),
		stopChan: make(chan struct{}),
	}
	in.renderer.Init(w, h)
	in.mounted.Store(true)
	log.Debug().Int("width", w).Int("height", h).Int("fps", cfg.Tier.TargetFPS).Msg("effect mounted")
	return in
}

// Start launches the frame loop
func (in *Instance) Start() {
	if in == nil || !in.mounted.Load() {
		return
	}
	in.wg.Add(1)
	go in.loop()
}

// Stop tears the instance down: the pending tick is cancelled and the
// loop has exited before Stop returns. Safe to call more than once and
// on a nil instance.
func (in *Instance) Stop() {
	if in == nil {
		return
	}
	in.stopOnce.Do(func() {
		in.mounted.Store(false)
		close(in.stopChan)
		in.log.Debug().Msg("effect unmounted")
	})
	in.wg.Wait()
}

// Invalidate requests a repaint outside the normal throttle, typically
// after a surface resize. While suspended this re-renders the freeze
// frame at the new bounds without advancing the clock.
func (in *Instance) Invalidate() {
	if in == nil {
		return
	}
	in.invalid.Store(true)
}

// Clock exposes the instance's clock for read-only inspection
func (in *Instance) Clock() *SuspendClock {
	if in == nil {
		return nil
	}
	return in.clock
}

// step runs one tick: clock bookkeeping always, rendering subject to the
// freeze-frame rule and the frame-rate throttle. Returns whether a frame
// was painted. Called only from the frame loop (or directly by tests).
func (in *Instance) step(now time.Time) bool {
	animate := in.force || in.signals.ShouldAnimate()
	fr := in.clock.Tick(now, animate)

	invalid := in.invalid.Swap(false)
	if !fr.Draw && !invalid {
		return false
	}
	if !fr.BypassThrottle && !invalid &&
		!in.lastDraw.IsZero() && now.Sub(in.lastDraw) < in.interval {
		return false
	}

	w, h := in.surface.Size()
	if w <= 0 || h <= 0 {
		// Surface vanished mid-flight (resize race), treat as no-op
		return false
	}
	if w != in.buf.Width() || h != in.buf.Height() {
		in.buf.Resize(w, h)
		in.renderer.Resize(w, h)
	}

	in.buf.Clear()
	in.renderer.Render(fr.Time, in.buf)
	in.buf.Flush(in.surface)
	in.lastDraw = now
	return true
}

// loop drives ticks until Stop, stretching the tick interval while
// suspended to save CPU
func (in *Instance) loop() {
	defer in.wg.Done()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-in.stopChan:
			return
		default:
		}
		if !in.mounted.Load() {
			return
		}

		start := in.time.Now()
		in.step(start)

		var sleep time.Duration
		if in.clock.Suspended() {
			sleep = in.interval * 2
		} else {
			sleep = in.interval - in.time.Now().Sub(start)
		}
		if sleep < minTickInterval {
			sleep = minTickInterval
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-in.stopChan:
			return
		}
	}
}
