package renderer

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/dbterm/internal/renderer/backend"
	"github.com/dshills/dbterm/internal/renderer/core"
)

// Box drawing characters for panel borders.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// drawBlock draws a bordered panel with title on its top edge and returns
// the area inside the border.
func (r *Renderer) drawBlock(area core.ScreenRect, title string) core.ScreenRect {
	if area.Width() < 2 || area.Height() < 2 {
		return core.ScreenRect{}
	}

	border := core.NewStyle(r.opts.Theme.Border)
	top, bottom := area.Top, area.Bottom-1
	left, right := area.Left, area.Right-1

	for x := left + 1; x < right; x++ {
		r.backend.SetCell(x, top, core.NewStyledCell(borderHorizontal, border))
		r.backend.SetCell(x, bottom, core.NewStyledCell(borderHorizontal, border))
	}
	for y := top + 1; y < bottom; y++ {
		r.backend.SetCell(left, y, core.NewStyledCell(borderVertical, border))
		r.backend.SetCell(right, y, core.NewStyledCell(borderVertical, border))
	}
	r.backend.SetCell(left, top, core.NewStyledCell(borderTopLeft, border))
	r.backend.SetCell(right, top, core.NewStyledCell(borderTopRight, border))
	r.backend.SetCell(left, bottom, core.NewStyledCell(borderBottomLeft, border))
	r.backend.SetCell(right, bottom, core.NewStyledCell(borderBottomRight, border))

	drawText(r.backend, left+1, top, right, title, core.NewStyle(r.opts.Theme.Title).Bold())

	return area.Inset(1)
}

// drawText writes s starting at (x, y) without crossing column limit and
// returns the column after the last cell written. Wide clusters that would
// straddle the limit are not drawn. Zero-width clusters such as control
// characters are skipped.
func drawText(b backend.Backend, x, y, limit int, s string, style core.Style) int {
	state := -1
	for s != "" {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if x+width > limit {
			break
		}

		first := []rune(cluster)[0]
		b.SetCell(x, y, core.Cell{Rune: first, Width: width, Style: style})
		for i := 1; i < width; i++ {
			b.SetCell(x+i, y, core.ContinuationCell())
		}
		x += width
	}
	return x
}
