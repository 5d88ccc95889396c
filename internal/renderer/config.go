package renderer

import (
	"image/color"

	"github.com/kjkrol/glquad/pkg/mesh"
	"github.com/kjkrol/glquad/pkg/shader"
)

// RendererConfig describes what the renderer draws.
// Sections must hold GLSL 330 core sources; the vertex stage reads the
// mesh positions from attribute location 0.
type RendererConfig struct {
	Sections   shader.Sections
	Mesh       mesh.Mesh
	ClearColor color.Color
	// CheckErrors drains glGetError after every group of GL calls and logs
	// what it finds.
	CheckErrors bool
}
