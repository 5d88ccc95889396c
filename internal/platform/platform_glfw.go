package platform

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/glquad"
)

type glfwWindowWrapper struct {
	window *glfw.Window
	queue  eventQueue
	title  string
}

// NewPlatformWindowWrapper initialises GLFW and opens a window with a
// current OpenGL 3.3 core, forward-compatible context. GLFW is terminated
// again if the window cannot be created.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	if conf.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw create window %dx%d: %w", conf.Width, conf.Height, err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		window.SetPos(conf.PositionX, conf.PositionY)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(conf.SwapInterval)

	w := &glfwWindowWrapper{window: window, title: conf.Title}
	w.installCallbacks()

	glquad.Logger().Info("window created", "title", conf.Title, "width", conf.Width, "height", conf.Height)
	return w, nil
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := keyLabel(key, scancode)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.queue.push(KeyPress{Code: uint64(key), Label: label})
		case glfw.Release:
			w.queue.push(KeyRelease{Code: uint64(key), Label: label})
		default:
			w.queue.push(UnexpectedEvent{})
		}
	})
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.queue.push(FramebufferResize{Width: width, Height: height})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.push(CloseRequested{})
	})
}

func keyLabel(key glfw.Key, scancode int) string {
	if name := glfw.GetKeyName(key, scancode); name != "" {
		return name
	}
	switch key {
	case glfw.KeyEscape:
		return "Escape"
	case glfw.KeyEnter:
		return "Return"
	case glfw.KeySpace:
		return "Space"
	case glfw.KeyTab:
		return "Tab"
	default:
		return fmt.Sprintf("Key(%d)", int(key))
	}
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	if w.window == nil {
		return
	}
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	glquad.Logger().Info("window closed", "title", w.title)
}

// NextEventTimeout returns the oldest queued event. With an empty queue it
// waits up to timeoutMs for GLFW to deliver one.
func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if e, ok := w.queue.pop(); ok {
		return e
	}
	if timeoutMs <= 0 {
		glfw.PollEvents()
	} else {
		glfw.WaitEventsTimeout((time.Duration(timeoutMs) * time.Millisecond).Seconds())
	}
	if e, ok := w.queue.pop(); ok {
		return e
	}
	return TimeoutEvent{}
}

func (w *glfwWindowWrapper) BeginFrame() {
	w.window.MakeContextCurrent()
}

func (w *glfwWindowWrapper) EndFrame() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window == nil || w.window.ShouldClose()
}

func (w *glfwWindowWrapper) SetShouldClose(v bool) {
	if w.window != nil {
		w.window.SetShouldClose(v)
	}
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	if w.window == nil {
		return 0, 0
	}
	return w.window.GetFramebufferSize()
}
