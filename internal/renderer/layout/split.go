package layout

import (
	"github.com/dshills/dbterm/internal/renderer/core"
)

// Direction is the axis along which Split divides an area.
type Direction uint8

const (
	// Vertical stacks chunks top to bottom.
	Vertical Direction = iota
	// Horizontal places chunks left to right.
	Horizontal
)

// Constraint sizes one chunk as a percentage of the split axis with an
// optional floor.
type Constraint struct {
	Percent int
	Min     int
}

// Percentage returns a constraint taking p percent of the axis.
func Percentage(p int) Constraint {
	return Constraint{Percent: p}
}

// AtLeast returns a copy of c that never shrinks below n cells.
func (c Constraint) AtLeast(n int) Constraint {
	c.Min = n
	return c
}

// Split divides area into one rectangle per constraint. Sizes are computed
// from the axis length, raised to each Min, and capped so chunks never
// overflow the area. The last chunk absorbs whatever remains.
func Split(area core.ScreenRect, dir Direction, constraints []Constraint) []core.ScreenRect {
	if len(constraints) == 0 {
		return nil
	}

	total := area.Height()
	if dir == Horizontal {
		total = area.Width()
	}

	sizes := make([]int, len(constraints))
	used := 0
	for i, c := range constraints {
		if i == len(constraints)-1 {
			sizes[i] = total - used
			break
		}
		size := max(total*c.Percent/100, c.Min)
		size = min(max(size, 0), total-used)
		sizes[i] = size
		used += size
	}

	rects := make([]core.ScreenRect, len(sizes))
	pos := 0
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = core.NewScreenRect(area.Top, area.Left+pos, area.Bottom, area.Left+pos+size)
		} else {
			rects[i] = core.NewScreenRect(area.Top+pos, area.Left, area.Top+pos+size, area.Right)
		}
		pos += size
	}
	return rects
}
