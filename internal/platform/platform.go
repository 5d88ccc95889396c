package platform

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
	Resizable bool
	// SwapInterval is passed to glfwSwapInterval; 1 waits for vsync.
	SwapInterval int
}

// PlatformWindowWrapper is a window with a current OpenGL 3.3 core
// context. All methods must be called from the thread that created it.
type PlatformWindowWrapper interface {
	Show()
	Close()
	NextEventTimeout(timeoutMs int) Event
	BeginFrame()
	EndFrame()
	ShouldClose() bool
	SetShouldClose(bool)
	FramebufferSize() (int, int)
}
