package mode

import (
	"github.com/dshills/dbterm/internal/input/key"
)

// Editor receives the edits Insert mode forwards.
type Editor interface {
	InsertChar(c rune)
	DeleteCharBeforeCursor()
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// Controller owns the current mode and routes key events.
// It is driven from a single goroutine and does no locking.
type Controller struct {
	current   Mode
	editor    Editor
	callbacks []ModeChangeCallback
}

// NewController creates a controller in Normal mode that forwards edits to
// editor.
func NewController(editor Editor) *Controller {
	return &Controller{
		current: Normal,
		editor:  editor,
	}
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	return c.current
}

// OnChange registers a callback for mode changes.
func (c *Controller) OnChange(callback ModeChangeCallback) {
	c.callbacks = append(c.callbacks, callback)
}

// HandleEvent classifies event against the current mode and applies it.
// CommandQuit is not applied here; the caller owns the run loop.
func (c *Controller) HandleEvent(event key.Event) Result {
	result := Dispatch(c.current, event)

	switch result.Command {
	case CommandEnterInsert:
		c.switchTo(Insert)
	case CommandEnterNormal:
		c.switchTo(Normal)
	case CommandInsertChar:
		if c.editor != nil {
			c.editor.InsertChar(result.Rune)
		}
	case CommandDeleteBackward:
		if c.editor != nil {
			c.editor.DeleteCharBeforeCursor()
		}
	}

	return result
}

func (c *Controller) switchTo(next Mode) {
	prev := c.current
	if prev == next {
		return
	}
	c.current = next

	for _, cb := range c.callbacks {
		if cb != nil {
			cb(prev, next)
		}
	}
}
