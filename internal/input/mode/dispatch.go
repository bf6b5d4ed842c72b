package mode

import (
	"github.com/dshills/dbterm/internal/input/key"
)

// Command is what a key event asks the application to do.
type Command uint8

const (
	// CommandNone ignores the event.
	CommandNone Command = iota

	// CommandQuit asks the application to stop its run loop.
	CommandQuit

	// CommandEnterInsert switches to Insert mode.
	CommandEnterInsert

	// CommandEnterNormal switches to Normal mode.
	CommandEnterNormal

	// CommandInsertChar inserts Result.Rune at the cursor.
	CommandInsertChar

	// CommandDeleteBackward deletes the character before the cursor.
	CommandDeleteBackward
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandQuit:
		return "quit"
	case CommandEnterInsert:
		return "enter-insert"
	case CommandEnterNormal:
		return "enter-normal"
	case CommandInsertChar:
		return "insert-char"
	case CommandDeleteBackward:
		return "delete-backward"
	default:
		return "unknown"
	}
}

// Result describes how a key event was classified.
type Result struct {
	// Command is the action to take.
	Command Command

	// Rune is the character for CommandInsertChar.
	Rune rune
}

// Consumed returns true if the event did something.
func (r Result) Consumed() bool {
	return r.Command != CommandNone
}

// Dispatch classifies event against mode m. It has no side effects.
func Dispatch(m Mode, event key.Event) Result {
	switch m {
	case Normal:
		return dispatchNormal(event)
	case Insert:
		return dispatchInsert(event)
	default:
		return Result{}
	}
}

// dispatchNormal does not look at the event kind.
func dispatchNormal(event key.Event) Result {
	switch {
	case event.IsRuneKey('q'):
		return Result{Command: CommandQuit}
	case event.IsRuneKey('i'):
		return Result{Command: CommandEnterInsert}
	default:
		return Result{}
	}
}

// dispatchInsert only reacts to presses.
func dispatchInsert(event key.Event) Result {
	if !event.IsPress() {
		return Result{}
	}

	switch {
	case event.Key == key.KeyEscape:
		return Result{Command: CommandEnterNormal}
	case event.Key == key.KeyBackspace:
		return Result{Command: CommandDeleteBackward}
	case event.IsChar():
		return Result{Command: CommandInsertChar, Rune: event.Rune}
	default:
		return Result{}
	}
}
