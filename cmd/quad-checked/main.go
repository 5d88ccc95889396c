// Command quad-checked draws the indexed quad and checks glGetError after
// every group of GL calls.
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
		Name:        "quad-checked",
		Title:       "Quad (GL error checks)",
		Mesh:        mesh.Quad(),
		CheckErrors: true,
	}))
}
