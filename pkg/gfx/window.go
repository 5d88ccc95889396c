package gfx

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/kjkrol/glquad/internal/platform"
)

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
	Resizable bool
	VSync     bool
}

func (w WindowConfig) convert() platform.WindowConfig {
	swap := 0
	if w.VSync {
		swap = 1
	}
	return platform.WindowConfig{
		PositionX:    w.PositionX,
		PositionY:    w.PositionY,
		Width:        w.Width,
		Height:       w.Height,
		Title:        w.Title,
		Resizable:    w.Resizable,
		SwapInterval: swap,
	}
}

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	refreshDelay       time.Duration
	width              int
	height             int
	ctx                context.Context
	cancel             context.CancelFunc
}

const maxEventWait = 50 * time.Millisecond

// NewWindow opens a platform window and builds its renderer with factory.
// The calling goroutine must stay locked to its OS thread for the life of
// the window.
func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, fmt.Errorf("window size %dx%d must be positive", conf.Width, conf.Height)
	}
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	return newWindow(wrapper, conf, factory), nil
}

func newWindow(wrapper platform.PlatformWindowWrapper, conf WindowConfig, factory RendererFactory) *Window {
	window := Window{
		platformWinWrapper: wrapper,
		width:              conf.Width,
		height:             conf.Height,
	}
	if fbw, fbh := wrapper.FramebufferSize(); fbw > 0 && fbh > 0 {
		window.width, window.height = fbw, fbh
	}
	window.ctx, window.cancel = context.WithCancel(context.Background())
	if factory != nil {
		window.renderer = factory(&window)
	}
	return &window
}

// Size is the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	ms := int(math.Abs(float64(1000.0 / fps)))
	w.refreshDelay = time.Duration(ms) * time.Millisecond
}

// Stop ends ListenEvents. Safe to call from any goroutine.
func (w *Window) Stop() {
	w.cancel()
}

// RequestClose asks the platform to close the window; ListenEvents returns
// before the next frame.
func (w *Window) RequestClose() {
	w.platformWinWrapper.SetShouldClose(true)
}

func (w *Window) Close() {
	w.cancel()
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

// ListenEvents polls and dispatches events and renders one frame per
// refresh tick, until Stop is called or the platform window should close.
func (w *Window) ListenEvents(handleEvent func(event Event), strategy EventsConsumerStrategy) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	delay := w.refreshDelay
	if delay == 0 {
		delay = time.Second / 60
	}
	if strategy == nil {
		strategy = DrainAll()
	}
	if handleEvent == nil {
		handleEvent = func(Event) {}
	}
	poll := func(timeoutMs int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	handle := func(event Event) {
		w.apply(event)
		handleEvent(event)
	}

	nextRender := time.Now()

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}
		if w.platformWinWrapper.ShouldClose() {
			return
		}

		now := time.Now()
		timeout := nextRender.Sub(now)
		if timeout < 0 {
			timeout = 0
		}
		if timeout > maxEventWait {
			timeout = maxEventWait
		}
		timeoutMs := int(timeout / time.Millisecond)
		if timeout > 0 && timeoutMs == 0 {
			timeoutMs = 1
		}

		strategy.Consume(poll, handle, timeoutMs)
		if w.platformWinWrapper.ShouldClose() {
			return
		}

		now = time.Now()
		if !now.Before(nextRender) {
			w.platformWinWrapper.BeginFrame()
			if w.renderer != nil {
				w.renderer.Render(w)
			}
			nextRender = now.Add(delay)
			w.platformWinWrapper.EndFrame()
		}
	}
}

// apply updates window state for events the window itself tracks.
func (w *Window) apply(event Event) {
	switch e := event.(type) {
	case FramebufferResize:
		if e.Width > 0 && e.Height > 0 {
			w.width, w.height = e.Width, e.Height
		}
	case CloseRequested:
		w.platformWinWrapper.SetShouldClose(true)
	}
}
