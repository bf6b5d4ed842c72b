// Package layout computes screen geometry for the renderer.
//
// Split divides a rectangle into chunks from percentage constraints, Wrap
// breaks buffer text into display lines at Unicode line-break opportunities,
// and CursorPosition maps a character cursor onto the wrapped lines.
package layout
