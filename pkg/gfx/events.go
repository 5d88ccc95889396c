package gfx

import "github.com/kjkrol/glquad/internal/platform"

type Event interface{}

type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type FramebufferResize struct {
	Width, Height int
}
type CloseRequested struct{}
type UnexpectedEvent struct{}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.KeyPress:
		return KeyPress{Code: e.Code, Label: e.Label}
	case platform.KeyRelease:
		return KeyRelease{Code: e.Code, Label: e.Label}
	case platform.FramebufferResize:
		return FramebufferResize{Width: e.Width, Height: e.Height}
	case platform.CloseRequested:
		return CloseRequested{}
	default:
		return UnexpectedEvent{}
	}
}
