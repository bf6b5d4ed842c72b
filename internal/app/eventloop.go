package app

import (
	"github.com/dshills/dbterm/internal/input/key"
	"github.com/dshills/dbterm/internal/input/mode"
	"github.com/dshills/dbterm/internal/renderer/backend"
)

// eventLoop is the main application loop: render, wait for one event,
// handle it. The exit flag is checked before each blocking poll.
func (app *Application) eventLoop(b backend.Backend) error {
	for !app.exiting.Load() {
		app.render()

		ev := b.PollEvent()
		app.metrics.RecordEvent()

		if err := app.HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// render draws the current state and records its timing.
func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	timer := StartTimer()
	app.renderer.Render(app.View())
	app.metrics.RecordRender(timer.Elapsed())
}

// HandleEvent processes a single backend event and routes it appropriately.
// It returns an error when the backend failed or stopped delivering input
// before a quit was requested.
func (app *Application) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		app.handleKeyEvent(ev)
		return nil
	case backend.EventResize:
		return app.handleResize()
	case backend.EventError:
		return NewComponentError("backend", "poll", ev.Err)
	case backend.EventClosed:
		if app.exiting.Load() {
			return nil
		}
		return ErrInputClosed
	default:
		// Interrupts only wake the loop.
		return nil
	}
}

// handleResize forces a full repaint on the next frame.
func (app *Application) handleResize() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b != nil {
		b.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) {
	keyEv := convertToKeyEvent(ev)
	result := app.controller.HandleEvent(keyEv)
	app.metrics.RecordKey(result.Consumed())

	if result.Command == mode.CommandQuit {
		app.logger.Info("quit requested")
		app.exiting.Store(true)
	}
}

// convertToKeyEvent converts a backend.Event to a key.Event.
func convertToKeyEvent(ev backend.Event) key.Event {
	// Map modifiers
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	var keyEv key.Event
	if k := mapBackendKey(ev.Key); k == key.KeyRune {
		keyEv = key.NewRuneEvent(ev.Rune)
	} else {
		keyEv = key.NewSpecialEvent(k)
	}

	return keyEv.WithModifiers(mods).WithKind(mapBackendKind(ev.Kind))
}

// mapBackendKind maps a backend.KeyKind to a key.Kind.
func mapBackendKind(kind backend.KeyKind) key.Kind {
	switch kind {
	case backend.KeyRepeat:
		return key.KindRepeat
	case backend.KeyRelease:
		return key.KindRelease
	default:
		return key.KindPress
	}
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyRune:
		return key.KeyRune
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyInsert:
		return key.KeyInsert
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}
