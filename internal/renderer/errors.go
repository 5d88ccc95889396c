package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/glquad/pkg/shader"
)

var (
	ErrShaderCompile = errors.New("shader compile failed")
	ErrShaderLink    = errors.New("shader link failed")
	ErrGL            = errors.New("gl error")
)

// CompileError carries the driver's info log for a stage that failed to
// compile. It matches ErrShaderCompile.
type CompileError struct {
	Stage shader.Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v (%s): %s", ErrShaderCompile, e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrShaderCompile }

// LinkError carries the driver's info log for a program that failed to
// link. It matches ErrShaderLink.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%v: %s", ErrShaderLink, e.Log)
}

func (e *LinkError) Unwrap() error { return ErrShaderLink }

// GLError lists the codes glGetError returned after Op.
type GLError struct {
	Op    string
	Codes []uint32
}

func (e *GLError) Error() string {
	names := make([]string, len(e.Codes))
	for i, code := range e.Codes {
		names[i] = glErrorName(code)
	}
	return fmt.Sprintf("%v after %s: %s", ErrGL, e.Op, strings.Join(names, ", "))
}

func (e *GLError) Unwrap() error { return ErrGL }

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return fmt.Sprintf("0x%04X", code)
	}
}

// trimLog drops the trailing NULs and whitespace drivers leave in info logs.
func trimLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
