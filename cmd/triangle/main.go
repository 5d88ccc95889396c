// Command triangle draws a triangle straight from its vertex buffer.
package main

import (
	"os"
	"runtime"

	"github.com/kjkrol/glquad/internal/app"
	"github.com/kjkrol/glquad/pkg/mesh"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main(app.Variant{
		Name:  "triangle",
		Title: "Triangle",
		Mesh:  mesh.Triangle(),
	}))
}
