package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kjkrol/glquad/internal/renderer"
	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/mesh"
	"github.com/kjkrol/glquad/pkg/shader"
)

var testVariant = Variant{Name: "quad", Title: "Quad", Mesh: mesh.Quad()}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags(testVariant, nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if opts.Width != 640 || opts.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", opts.Width, opts.Height)
	}
	if opts.Title != "Quad" {
		t.Errorf("Title = %q, want variant title", opts.Title)
	}
	if opts.ShaderPath != "" {
		t.Errorf("ShaderPath = %q, want built-in", opts.ShaderPath)
	}
	if opts.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", opts.LogLevel)
	}
	if opts.FPS != 60 {
		t.Errorf("FPS = %d, want 60", opts.FPS)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags(testVariant, []string{
		"-shader", "res/other.shader",
		"-width", "800",
		"-height", "600",
		"-title", "Yaya",
		"-log-level", "debug",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if opts.ShaderPath != "res/other.shader" || opts.Width != 800 || opts.Height != 600 || opts.Title != "Yaya" {
		t.Errorf("ParseFlags() = %+v", opts)
	}
	if opts.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", opts.LogLevel)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := [][]string{
		{"-width", "0"},
		{"-log-level", "loud"},
		{"-nope"},
		{"extra"},
	}
	for _, args := range tests {
		if _, err := ParseFlags(testVariant, args, io.Discard); err == nil {
			t.Errorf("ParseFlags(%q) returned no error", args)
		}
	}
	if _, err := ParseFlags(testVariant, []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseFlags(-h) error = %v, want flag.ErrHelp", err)
	}
}

func TestLoadSectionsBuiltin(t *testing.T) {
	sections, err := LoadSections(Options{})
	if err != nil {
		t.Fatalf("LoadSections() error = %v", err)
	}
	if !strings.Contains(sections.Vertex, "gl_Position = position;") {
		t.Errorf("Vertex = %q", sections.Vertex)
	}
	if !strings.Contains(sections.Fragment, "out vec4 color;") {
		t.Errorf("Fragment = %q", sections.Fragment)
	}
	for _, s := range []string{sections.Vertex, sections.Fragment} {
		if !strings.HasPrefix(s, "#version 330 core\n") {
			t.Errorf("section does not start with the version line: %q", s)
		}
	}
}

func TestRunFailsBeforeWindowOnBadShader(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.shader")
	if err := os.WriteFile(malformed, []byte("A\n#shader vertex\nB\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing resource", filepath.Join(dir, "missing.shader"), shader.ErrResourceNotFound},
		{"malformed resource", malformed, shader.ErrMalformedSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), testVariant, Options{ShaderPath: tt.path, Width: 640, Height: 480})
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

type stubRenderer struct {
	err error
}

func (stubRenderer) Render(*gfx.Window) {}
func (stubRenderer) Close()             {}
func (r stubRenderer) Err() error       { return r.err }

type plainRenderer struct{}

func (plainRenderer) Render(*gfx.Window) {}
func (plainRenderer) Close()             {}

func TestRendererErr(t *testing.T) {
	linkErr := &renderer.LinkError{Log: "fragment input not written"}
	err := rendererErr(stubRenderer{err: linkErr})
	if !errors.Is(err, renderer.ErrShaderLink) {
		t.Errorf("rendererErr() = %v, want ErrShaderLink", err)
	}
	if err := rendererErr(stubRenderer{}); err != nil {
		t.Errorf("rendererErr(clean) = %v, want nil", err)
	}
	if err := rendererErr(plainRenderer{}); err != nil {
		t.Errorf("rendererErr(no Err method) = %v, want nil", err)
	}
	if err := rendererErr(nil); err != nil {
		t.Errorf("rendererErr(nil) = %v, want nil", err)
	}
}
