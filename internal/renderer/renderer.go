package renderer

import (
	"sync"

	"github.com/dshills/dbterm/internal/input/mode"
	"github.com/dshills/dbterm/internal/renderer/backend"
	"github.com/dshills/dbterm/internal/renderer/core"
	"github.com/dshills/dbterm/internal/renderer/layout"
)

// Panel titles.
const (
	TitleActions = "Actions"
	TitleTables  = "Tables"
	TitleEditor  = "Editor"
)

// View is the state drawn in one frame.
type View struct {
	Mode   mode.Mode
	Text   string
	Cursor int
	Tables []string
}

// Theme holds the colors used for each part of the screen.
type Theme struct {
	Border core.Color
	Title  core.Color
	Text   core.Color
	Tables core.Color
	Normal core.Color
	Insert core.Color
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return Theme{
		Border: core.ColorGray,
		Title:  core.ColorWhite,
		Text:   core.ColorDefault,
		Tables: core.ColorDefault,
		Normal: core.ColorGreen,
		Insert: core.ColorFromRGB(95, 135, 255),
	}
}

// ModeColor returns the banner color for m.
func (t Theme) ModeColor(m mode.Mode) core.Color {
	if m == mode.Insert {
		return t.Insert
	}
	return t.Normal
}

// Options configures the renderer.
type Options struct {
	Theme Theme

	// TrimWrapped drops leading whitespace on soft-wrapped editor rows.
	TrimWrapped bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Theme:       DefaultTheme(),
		TrimWrapped: true,
	}
}

// Areas are the screen regions of one frame, borders included.
type Areas struct {
	Banner core.ScreenRect
	Tables core.ScreenRect
	Editor core.ScreenRect
}

// ComputeAreas divides a width x height screen into the banner and the two
// body panels.
func ComputeAreas(width, height int) Areas {
	screen := core.RectFromSize(0, 0, max(height, 0), max(width, 0))
	rows := layout.Split(screen, layout.Vertical, []layout.Constraint{
		layout.Percentage(10).AtLeast(3),
		layout.Percentage(90),
	})
	cols := layout.Split(rows[1], layout.Horizontal, []layout.Constraint{
		layout.Percentage(20),
		layout.Percentage(80),
	})
	return Areas{Banner: rows[0], Tables: cols[0], Editor: cols[1]}
}

// Renderer draws Views to a backend.
type Renderer struct {
	mu sync.Mutex

	opts    Options
	backend backend.Backend

	frameCount uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:    opts,
		backend: b,
	}
}

// Options returns the current renderer options.
func (r *Renderer) Options() Options {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.opts
}

// SetTheme replaces the colors used for subsequent frames.
func (r *Renderer) SetTheme(theme Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.Theme = theme
}

// Render draws v and flushes it to the display.
func (r *Renderer) Render(v View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width, height := r.backend.Size()
	areas := ComputeAreas(width, height)

	r.backend.Clear()
	r.renderBanner(areas.Banner, v.Mode)
	r.renderTables(areas.Tables, v.Tables)
	r.renderEditor(areas.Editor, v)
	r.backend.Show()
	r.frameCount++
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frameCount
}

func (r *Renderer) renderBanner(area core.ScreenRect, m mode.Mode) {
	inner := r.drawBlock(area, TitleActions)
	if inner.IsEmpty() {
		return
	}
	style := core.NewStyle(r.opts.Theme.ModeColor(m)).Bold()
	drawText(r.backend, inner.Left, inner.Top, inner.Right, m.DisplayName(), style)
}

func (r *Renderer) renderTables(area core.ScreenRect, tables []string) {
	inner := r.drawBlock(area, TitleTables)
	style := core.NewStyle(r.opts.Theme.Tables)
	for i, name := range tables {
		y := inner.Top + i
		if y >= inner.Bottom {
			break
		}
		drawText(r.backend, inner.Left, y, inner.Right, name, style)
	}
}

func (r *Renderer) renderEditor(area core.ScreenRect, v View) {
	inner := r.drawBlock(area, TitleEditor)
	if inner.IsEmpty() {
		r.backend.HideCursor()
		return
	}

	width, height := inner.Width(), inner.Height()
	lines := layout.Wrap(v.Text, width, r.opts.TrimWrapped)
	row, col := layout.CursorPosition(lines, v.Cursor, width)
	top := layout.ScrollOffset(row, height)

	style := core.NewStyle(r.opts.Theme.Text)
	for i := 0; i < height && top+i < len(lines); i++ {
		drawText(r.backend, inner.Left, inner.Top+i, inner.Right, lines[top+i].Text, style)
	}

	r.backend.SetCursorStyle(cursorStyle(v.Mode))
	r.backend.ShowCursor(inner.Left+col, inner.Top+row-top)
}

func cursorStyle(m mode.Mode) backend.CursorStyle {
	if m.CursorStyle() == mode.CursorBar {
		return backend.CursorBar
	}
	return backend.CursorBlock
}
