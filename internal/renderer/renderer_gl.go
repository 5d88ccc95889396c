package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/glquad"
	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/mesh"
	"github.com/kjkrol/glquad/pkg/shader"
)

// maxDrainedErrors bounds the glGetError loop; without a current context
// some drivers keep returning an error forever.
const maxDrainedErrors = 16

type renderer struct {
	sections    shader.Sections
	mesh        mesh.Mesh
	clearColor  [4]float32
	checkErrors bool

	initialized bool
	err         error

	program uint32
	vao     uint32
	vbo     uint32
	ibo     uint32
}

func newRenderer(_ *gfx.Window, conf RendererConfig) *renderer {
	return &renderer{
		sections:    conf.Sections,
		mesh:        conf.Mesh,
		clearColor:  colorToFloat(conf.ClearColor),
		checkErrors: conf.CheckErrors,
	}
}

// Err returns the first failure met while setting up or drawing: a GL
// init, compile, link or mesh error, or a *GLError from the error check.
// After a setup failure the renderer keeps clearing the window but draws
// nothing.
func (r *renderer) Err() error {
	return r.err
}

func (r *renderer) Render(w *gfx.Window) {
	if w == nil {
		return
	}
	r.ensureInit()

	width, height := w.Size()
	if width <= 0 || height <= 0 {
		return
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.check("clear")

	if r.program == 0 || r.vao == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	if r.mesh.Indexed() {
		gl.DrawElements(gl.TRIANGLES, int32(r.mesh.DrawCount()), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(r.mesh.DrawCount()))
	}
	r.check("draw " + r.mesh.Name)
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.ibo, r.vbo, r.vao, r.program = 0, 0, 0, 0
	r.initialized = false
}

func (r *renderer) ensureInit() {
	if r.initialized {
		return
	}
	r.initialized = true
	logger := glquad.Logger()

	if err := gl.Init(); err != nil {
		r.fail(fmt.Errorf("gl init: %w", err))
		return
	}
	logger.Info("gl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	program, err := r.buildProgram()
	if err != nil {
		r.fail(err)
	} else {
		r.program = program
	}

	if err := r.mesh.Validate(); err != nil {
		r.fail(err)
		return
	}
	r.initMesh()
}

func (r *renderer) fail(err error) {
	glquad.Logger().Error("renderer setup failed", "err", err)
	if r.err == nil {
		r.err = err
	}
}

func (r *renderer) initMesh() {
	m := r.mesh

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, m.PositionsSize(), gl.Ptr(m.Positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, int32(m.Components), gl.FLOAT, false, int32(m.Stride()), gl.PtrOffset(0))
	r.check("upload vertices")

	if m.Indexed() {
		gl.GenBuffers(1, &r.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.IndicesSize(), gl.Ptr(m.Indices), gl.STATIC_DRAW)
		r.check("upload indices")
	}

	gl.BindVertexArray(0)
	glquad.Logger().Debug("mesh uploaded",
		"mesh", m.Name,
		"vertices", m.VertexCount(),
		"indices", len(m.Indices))
}

func (r *renderer) buildProgram() (uint32, error) {
	vertexShader, fragmentShader, err := compileStages(compileShader, gl.DeleteShader, r.sections)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: trimLog(log)}
	}
	gl.ValidateProgram(program)
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	r.check("link program")
	return program, nil
}

// compileStages compiles both stages even when the first fails, so the
// driver logs of both end up in the joined error. On failure the stage
// that did compile is released with del.
func compileStages(
	compile func(shader.Stage, string) (uint32, error),
	del func(uint32),
	sections shader.Sections,
) (uint32, uint32, error) {
	vertexShader, vertexErr := compile(shader.StageVertex, sections.Vertex)
	fragmentShader, fragmentErr := compile(shader.StageFragment, sections.Fragment)
	if err := errors.Join(vertexErr, fragmentErr); err != nil {
		if vertexErr == nil {
			del(vertexShader)
		}
		if fragmentErr == nil {
			del(fragmentShader)
		}
		return 0, 0, err
	}
	return vertexShader, fragmentShader, nil
}

func compileShader(stage shader.Stage, source string) (uint32, error) {
	var shaderType uint32
	switch stage {
	case shader.StageVertex:
		shaderType = gl.VERTEX_SHADER
	case shader.StageFragment:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return 0, &CompileError{Stage: stage, Log: "no shader type for stage"}
	}

	id := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, &CompileError{Stage: stage, Log: trimLog(log)}
	}
	return id, nil
}

// check drains glGetError when error checking is on and reports the codes
// as a *GLError.
func (r *renderer) check(op string) {
	if !r.checkErrors {
		return
	}
	var codes []uint32
	for i := 0; i < maxDrainedErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	r.reportGL(op, codes)
}

// reportGL logs every GL error and keeps the first one for Err.
func (r *renderer) reportGL(op string, codes []uint32) {
	if len(codes) == 0 {
		return
	}
	err := &GLError{Op: op, Codes: codes}
	glquad.Logger().Warn("gl call failed", "err", err)
	if r.err == nil {
		r.err = err
	}
}
