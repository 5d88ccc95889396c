// Package shader splits a single shader resource into its vertex and
// fragment sections.
//
// A resource is UTF-8 text. A line containing
//
//	#shader vertex
//	#shader fragment
//
// starts a section; every following line belongs to that section until the
// next marker or the end of the input. Marker lines belong to no section.
package shader

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	markerToken = "#shader"

	maxLineSize = 1 << 20
)

// Sections holds the vertex and fragment source text of one resource.
// Each line, including the last, ends with "\n".
type Sections struct {
	Vertex   string
	Fragment string
}

// Format renders the sections back into resource form. Parsing the result
// yields s again.
func (s Sections) Format() string {
	var sb strings.Builder
	sb.Grow(len(s.Vertex) + len(s.Fragment) + 32)
	sb.WriteString(markerToken + " vertex\n")
	sb.WriteString(s.Vertex)
	sb.WriteString(markerToken + " fragment\n")
	sb.WriteString(s.Fragment)
	return sb.String()
}

// Parse reads r to the end and splits it into sections. A leading byte
// order mark is dropped. Both "\n" and "\r\n" terminate lines. Invalid
// UTF-8 matches ErrMalformedSource; read failures match
// ErrResourceNotFound.
func Parse(r io.Reader) (Sections, error) {
	return parse(r, "")
}

// ParseString is Parse over an in-memory resource.
func ParseString(src string) (Sections, error) {
	return Parse(strings.NewReader(src))
}

// Load opens name in fsys and parses it. Open and read failures match
// ErrResourceNotFound.
func Load(fsys fs.FS, name string) (Sections, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Sections{}, &ResourceError{Name: name, Err: err}
	}
	defer f.Close()
	return parse(f, name)
}

// LoadFile opens the file at path and parses it. Open and read failures
// match ErrResourceNotFound.
func LoadFile(path string) (Sections, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sections{}, &ResourceError{Name: path, Err: err}
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, name string) (Sections, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder())))
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		vertex, fragment strings.Builder
		current          = StageUnset
		lineNo           int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return Sections{}, &SourceError{Line: lineNo, Text: strings.ToValidUTF8(line, "\uFFFD"), Reason: "invalid UTF-8"}
		}

		if stage, ok := parseMarker(line); ok {
			current = stage
			continue
		}

		switch current {
		case StageVertex:
			vertex.WriteString(line)
			vertex.WriteByte('\n')
		case StageFragment:
			fragment.WriteString(line)
			fragment.WriteByte('\n')
		case StageUnset:
			return Sections{}, &SourceError{Line: lineNo, Text: line, Reason: "source line before any section marker"}
		}
	}
	if err := scanner.Err(); err != nil {
		return Sections{}, &ResourceError{Name: name, Err: err}
	}
	return Sections{Vertex: vertex.String(), Fragment: fragment.String()}, nil
}

// parseMarker reports whether line contains the marker token followed by a
// known stage name, and which stage it selects. Anything else, including
// "#shader" with an unknown or missing name, is an ordinary source line.
func parseMarker(line string) (Stage, bool) {
	for rest := line; ; {
		idx := strings.Index(rest, markerToken)
		if idx < 0 {
			return StageUnset, false
		}
		rest = rest[idx+len(markerToken):]
		if fields := strings.Fields(rest); len(fields) > 0 {
			if stage, ok := ParseStage(fields[0]); ok {
				return stage, true
			}
		}
	}
}
