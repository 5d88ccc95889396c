// Command quad draws a quad from four vertices and an index buffer.
package main

import (
	"os"
	"runtime"

	"github.com/kjkrol/glquad/internal/app"
	"github.com/kjkrol/glquad/pkg/mesh"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(app.Variant{
		Name:  "quad",
		Title: "Quad",
		Mesh:  mesh.Quad(),
	}))
}
