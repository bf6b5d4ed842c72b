package backend

import (
	"testing"

	"github.com/dshills/dbterm/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !b.Initialized() {
		t.Error("expected backend to report initialized")
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorGreen))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewCell('.')
	rect := core.NewScreenRect(5, 10, 10, 20)
	b.Fill(rect, cell)

	if got := b.GetCell(15, 7); !got.Equals(cell) {
		t.Error("cell inside rect should be filled")
	}
	if got := b.GetCell(0, 0); got.Equals(cell) {
		t.Error("cell outside rect should not be filled")
	}
	if got := b.GetCell(20, 7); got.Equals(cell) {
		t.Error("right edge is exclusive")
	}

	// Rects hanging off the screen are clipped.
	b.Fill(core.NewScreenRect(-5, -5, 100, 100), cell)
	if got := b.GetCell(79, 23); !got.Equals(cell) {
		t.Error("clipped fill should reach the last cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()

	b.SetCell(3, 1, core.NewCell('Z'))
	b.Clear()

	if got := b.GetCell(3, 1); !got.Equals(core.EmptyCell()) {
		t.Errorf("expected empty cell after Clear, got %+v", got)
	}
}

func TestNullBackendRow(t *testing.T) {
	b := NewNullBackend(5, 2)
	b.Init()

	for i, r := range "hi" {
		b.SetCell(i, 0, core.NewCell(r))
	}

	if got := b.Row(0); got != "hi   " {
		t.Errorf("Row(0) = %q, want %q", got, "hi   ")
	}
	if got := b.Row(5); got != "" {
		t.Errorf("Row(5) = %q, want empty", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(10, 5)
	x, y, visible := b.CursorPosition()
	if x != 10 || y != 5 || !visible {
		t.Errorf("expected cursor (10, 5, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	_, _, visible = b.CursorPosition()
	if visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendCursorStyle(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	if b.CursorStyleValue() != CursorBlock {
		t.Error("default cursor style should be block")
	}

	b.SetCursorStyle(CursorBar)
	if b.CursorStyleValue() != CursorBar {
		t.Error("cursor style should be bar")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 30)

	w, h := b.Size()
	if w != 100 || h != 30 {
		t.Errorf("expected size (100, 30), got (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 30 {
		t.Errorf("expected resize event 100x30, got %+v", ev)
	}

	// New area is addressable.
	b.SetCell(99, 29, core.NewCell('x'))
	if got := b.GetCell(99, 29); got.Rune != 'x' {
		t.Error("expected resized backend to store cells in the new area")
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(Event{Type: EventKey, Key: KeyRune, Rune: 'a'})
	b.PostEvent(Event{Type: EventKey, Key: KeyEscape})

	ev := b.PollEvent()
	if ev.Type != EventKey || ev.Rune != 'a' {
		t.Errorf("expected rune event 'a', got %+v", ev)
	}
	ev = b.PollEvent()
	if ev.Key != KeyEscape {
		t.Errorf("expected escape, got %+v", ev)
	}

	// Drained queue reports closed rather than blocking.
	if ev := b.PollEvent(); ev.Type != EventClosed {
		t.Errorf("expected EventClosed on empty queue, got %v", ev.Type)
	}
}

func TestNullBackendShutdown(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.Init()
	b.Shutdown()
	b.Shutdown()

	if !b.IsShutdown() {
		t.Error("expected backend to report shutdown")
	}
}

func TestModMaskHas(t *testing.T) {
	mask := ModCtrl | ModShift

	if !mask.Has(ModCtrl) {
		t.Error("should have Ctrl")
	}
	if !mask.Has(ModShift) {
		t.Error("should have Shift")
	}
	if mask.Has(ModAlt) {
		t.Error("should not have Alt")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventNone, "none"},
		{EventKey, "key"},
		{EventResize, "resize"},
		{EventInterrupt, "interrupt"},
		{EventError, "error"},
		{EventClosed, "closed"},
		{EventType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
