package gfx

import (
	"testing"
	"time"

	"github.com/kjkrol/glquad/internal/platform"
)

type fakeWrapper struct {
	events      []platform.Event
	frames      int
	closeAfter  int
	shouldClose bool
	shown       bool
	closed      bool
	fbw, fbh    int
	inFrame     bool
}

func (f *fakeWrapper) Show()  { f.shown = true }
func (f *fakeWrapper) Close() { f.closed = true }

func (f *fakeWrapper) NextEventTimeout(int) platform.Event {
	if len(f.events) == 0 {
		return platform.TimeoutEvent{}
	}
	e := f.events[0]
	f.events = f.events[1:]
	return e
}

func (f *fakeWrapper) BeginFrame() { f.inFrame = true }

func (f *fakeWrapper) EndFrame() {
	f.inFrame = false
	f.frames++
	if f.closeAfter > 0 && f.frames >= f.closeAfter {
		f.shouldClose = true
	}
}

func (f *fakeWrapper) ShouldClose() bool           { return f.shouldClose }
func (f *fakeWrapper) SetShouldClose(v bool)       { f.shouldClose = v }
func (f *fakeWrapper) FramebufferSize() (int, int) { return f.fbw, f.fbh }

type fakeRenderer struct {
	wrapper      *fakeWrapper
	renders      int
	outsideFrame int
	lastW, lastH int
	closed       bool
}

func (r *fakeRenderer) Render(w *Window) {
	r.renders++
	if !r.wrapper.inFrame {
		r.outsideFrame++
	}
	r.lastW, r.lastH = w.Size()
}

func (r *fakeRenderer) Close() { r.closed = true }

func newTestWindow(wrapper *fakeWrapper) (*Window, *fakeRenderer) {
	r := &fakeRenderer{wrapper: wrapper}
	w := newWindow(wrapper, WindowConfig{Width: 640, Height: 480, Title: "test"}, func(*Window) Renderer { return r })
	w.RefreshRate(1000)
	return w, r
}

func TestListenEventsRendersUntilShouldClose(t *testing.T) {
	wrapper := &fakeWrapper{closeAfter: 3}
	w, r := newTestWindow(wrapper)

	w.ListenEvents(nil, nil)

	if r.renders != 3 {
		t.Errorf("renders = %d, want 3", r.renders)
	}
	if r.outsideFrame != 0 {
		t.Errorf("%d renders happened outside BeginFrame/EndFrame", r.outsideFrame)
	}
	if r.lastW != 640 || r.lastH != 480 {
		t.Errorf("render size = %dx%d, want 640x480", r.lastW, r.lastH)
	}
}

func TestListenEventsDispatchesConvertedEvents(t *testing.T) {
	wrapper := &fakeWrapper{events: []platform.Event{
		platform.FramebufferResize{Width: 800, Height: 600},
		platform.KeyPress{Code: 256, Label: "Escape"},
		platform.KeyRelease{Code: 256, Label: "Escape"},
	}}
	w, r := newTestWindow(wrapper)

	var got []Event
	w.ListenEvents(func(e Event) {
		got = append(got, e)
		if k, ok := e.(KeyPress); ok && k.Label == "Escape" {
			w.RequestClose()
		}
	}, DrainAll())

	want := []Event{
		FramebufferResize{Width: 800, Height: 600},
		KeyPress{Code: 256, Label: "Escape"},
		KeyRelease{Code: 256, Label: "Escape"},
	}
	if len(got) != len(want) {
		t.Fatalf("handled %d events, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
	if width, height := w.Size(); width != 800 || height != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", width, height)
	}
	if r.renders != 0 {
		t.Errorf("renders = %d, want 0 after close in the first drain", r.renders)
	}
}

func TestListenEventsStopsOnCloseRequested(t *testing.T) {
	wrapper := &fakeWrapper{events: []platform.Event{
		platform.CloseRequested{},
		platform.KeyPress{Code: 65, Label: "a"},
	}}
	w, _ := newTestWindow(wrapper)

	var handled int
	w.ListenEvents(func(Event) { handled++ }, DrainAll())

	if handled != 1 {
		t.Errorf("handled = %d, want 1", handled)
	}
	if !wrapper.shouldClose {
		t.Error("CloseRequested did not mark the platform window closing")
	}
}

func TestStopEndsListenEvents(t *testing.T) {
	wrapper := &fakeWrapper{}
	w, r := newTestWindow(wrapper)

	done := make(chan struct{})
	go func() {
		w.ListenEvents(nil, DrainMax(4))
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	w.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ListenEvents did not return after Stop")
	}
	if r.renders == 0 {
		t.Error("no frame rendered before Stop")
	}
}

func TestCloseReleasesRendererAndPlatform(t *testing.T) {
	wrapper := &fakeWrapper{}
	w, r := newTestWindow(wrapper)
	w.Show()
	w.Close()

	if !wrapper.shown {
		t.Error("Show did not reach the platform window")
	}
	if !r.closed {
		t.Error("renderer not closed")
	}
	if !wrapper.closed {
		t.Error("platform window not closed")
	}
}

func TestNewWindowPrefersFramebufferSize(t *testing.T) {
	wrapper := &fakeWrapper{fbw: 1280, fbh: 960}
	w, _ := newTestWindow(wrapper)
	if width, height := w.Size(); width != 1280 || height != 960 {
		t.Errorf("Size() = %dx%d, want 1280x960", width, height)
	}
}

func TestNewWindowRejectsEmptySize(t *testing.T) {
	if _, err := NewWindow(WindowConfig{Width: 0, Height: 480}, nil); err == nil {
		t.Error("NewWindow with zero width returned no error")
	}
}
