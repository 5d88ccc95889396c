// Package app wires the shader loader, the window and the GL renderer for
// the programs under cmd/.
package app

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/kjkrol/glquad"
	"github.com/kjkrol/glquad/internal/renderer"
	"github.com/kjkrol/glquad/pkg/gfx"
	"github.com/kjkrol/glquad/pkg/mesh"
	"github.com/kjkrol/glquad/pkg/shader"
)

//go:embed res/shaders/basic.shader
var resources embed.FS

const defaultShader = "res/shaders/basic.shader"

// Variant is what distinguishes the programs: the mesh they draw and
// whether every GL call is followed by an error check.
type Variant struct {
	Name        string
	Title       string
	Mesh        mesh.Mesh
	CheckErrors bool
}

type Options struct {
	ShaderPath string
	Width      int
	Height     int
	Title      string
	FPS        int
	LogLevel   slog.Level
	ClearColor color.Color
}

// ParseFlags reads Options from args (without the program name).
func ParseFlags(v Variant, args []string, output io.Writer) (Options, error) {
	fs := flag.NewFlagSet(v.Name, flag.ContinueOnError)
	fs.SetOutput(output)

	opts := Options{ClearColor: color.Black}
	var level string
	fs.StringVar(&opts.ShaderPath, "shader", "", "path to a shader resource; the built-in one when empty")
	fs.IntVar(&opts.Width, "width", 640, "window width")
	fs.IntVar(&opts.Height, "height", 480, "window height")
	fs.StringVar(&opts.Title, "title", v.Title, "window title")
	fs.IntVar(&opts.FPS, "fps", 60, "frames per second")
	fs.StringVar(&level, "log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := opts.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Options{}, fmt.Errorf("log level %q: %w", level, err)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return Options{}, fmt.Errorf("window size %dx%d must be positive", opts.Width, opts.Height)
	}
	return opts, nil
}

// LoadSections reads the shader resource named by opts, or the built-in
// one.
func LoadSections(opts Options) (shader.Sections, error) {
	var (
		sections shader.Sections
		err      error
		name     = opts.ShaderPath
	)
	if name == "" {
		name = defaultShader
		sections, err = shader.Load(resources, name)
	} else {
		sections, err = shader.LoadFile(name)
	}
	if err != nil {
		return shader.Sections{}, err
	}
	glquad.Logger().Debug("shader loaded",
		"resource", name,
		"vertex_bytes", len(sections.Vertex),
		"fragment_bytes", len(sections.Fragment))
	return sections, nil
}

// errReporter is implemented by renderers that keep the first failure
// they met while the window was running.
type errReporter interface {
	Err() error
}

// rendererErr returns the failure kept by r, if r keeps one.
func rendererErr(r gfx.Renderer) error {
	reporter, ok := r.(errReporter)
	if !ok {
		return nil
	}
	if err := reporter.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Run loads the shader, opens the window and renders until the window is
// closed, Escape is pressed or ctx is done. Shader compile and link
// failures do not end the run early: the window stays open with nothing
// drawn, and the failure is returned once it closes.
func Run(ctx context.Context, v Variant, opts Options) error {
	sections, err := LoadSections(opts)
	if err != nil {
		return err
	}

	newRenderer := renderer.NewRendererFactory(renderer.RendererConfig{
		Sections:    sections,
		Mesh:        v.Mesh,
		ClearColor:  opts.ClearColor,
		CheckErrors: v.CheckErrors,
	})
	var active gfx.Renderer
	factory := func(w *gfx.Window) gfx.Renderer {
		active = newRenderer(w)
		return active
	}
	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:     opts.Width,
		Height:    opts.Height,
		Title:     opts.Title,
		Resizable: true,
		VSync:     true,
	}, factory)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Close()

	stop := context.AfterFunc(ctx, window.Stop)
	defer stop()

	window.RefreshRate(opts.FPS)
	window.Show()
	window.ListenEvents(func(event gfx.Event) {
		if key, ok := event.(gfx.KeyPress); ok && key.Label == "Escape" {
			window.RequestClose()
		}
	}, gfx.DrainAll())
	return rendererErr(active)
}

// Main runs v with the process arguments and returns the exit code.
func Main(v Variant) int {
	opts, err := ParseFlags(v, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	glquad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.LogLevel})).With("program", v.Name))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := Run(ctx, v, opts); err != nil {
		glquad.Logger().Error("run failed", "err", err)
		return 1
	}
	return 0
}
