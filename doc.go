// Package glquad draws a static triangle or quad with OpenGL 3.3 core.
//
// The shader program comes from a single text resource split into a vertex
// and a fragment section by "#shader vertex" and "#shader fragment" marker
// lines (see package shader). The programs under cmd/ differ only in the
// mesh they draw and whether GL errors are checked after every call.
//
// This package only carries the logger shared by the sub-packages.
package glquad
