// Package mesh holds the static geometry drawn by the glquad programs.
package mesh

import (
	"errors"
	"fmt"
)

const floatSize = 4

var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is a flat list of vertex positions with an optional index list.
// Positions holds Components floats per vertex.
type Mesh struct {
	Name       string
	Positions  []float32
	Components int
	Indices    []uint32
}

// Quad is the unit quad centred at the origin, drawn as two indexed
// triangles that share the 2-0 diagonal.
func Quad() Mesh {
	return Mesh{
		Name: "quad",
		Positions: []float32{
			-0.5, -0.5,
			0.5, -0.5,
			0.5, 0.5,
			-0.5, 0.5,
		},
		Components: 2,
		Indices: []uint32{
			0, 1, 2,
			2, 3, 0,
		},
	}
}

// Triangle is drawn straight from its vertices, without an index buffer.
func Triangle() Mesh {
	return Mesh{
		Name: "triangle",
		Positions: []float32{
			-0.5, -0.5,
			0.0, 0.5,
			0.5, -0.5,
		},
		Components: 2,
	}
}

func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

func (m Mesh) VertexCount() int {
	if m.Components <= 0 {
		return 0
	}
	return len(m.Positions) / m.Components
}

// DrawCount is the element count passed to the draw call: indices for an
// indexed mesh, vertices otherwise.
func (m Mesh) DrawCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Stride is the size of one vertex in bytes.
func (m Mesh) Stride() int {
	return m.Components * floatSize
}

func (m Mesh) PositionsSize() int {
	return len(m.Positions) * floatSize
}

func (m Mesh) IndicesSize() int {
	return len(m.Indices) * 4
}

// Validate checks that m can be uploaded and drawn as a triangle list.
func (m Mesh) Validate() error {
	if m.Components < 1 || m.Components > 4 {
		return fmt.Errorf("%w %q: %d components per vertex, want 1..4", ErrInvalidMesh, m.Name, m.Components)
	}
	if len(m.Positions)%m.Components != 0 {
		return fmt.Errorf("%w %q: %d floats is not a multiple of %d", ErrInvalidMesh, m.Name, len(m.Positions), m.Components)
	}
	vertices := m.VertexCount()
	if vertices < 3 {
		return fmt.Errorf("%w %q: %d vertices, want at least 3", ErrInvalidMesh, m.Name, vertices)
	}
	if !m.Indexed() {
		if vertices%3 != 0 {
			return fmt.Errorf("%w %q: %d vertices is not a triangle list", ErrInvalidMesh, m.Name, vertices)
		}
		return nil
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w %q: %d indices is not a triangle list", ErrInvalidMesh, m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= vertices {
			return fmt.Errorf("%w %q: index %d at %d out of range [0,%d)", ErrInvalidMesh, m.Name, idx, i, vertices)
		}
	}
	return nil
}
