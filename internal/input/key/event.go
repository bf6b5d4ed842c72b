package key

import "unicode"

// Event represents a single key event.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Kind reports press, repeat or release.
	Kind Kind
}

// NewRuneEvent creates a press event for a character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r, Kind: KindPress}
}

// NewSpecialEvent creates a press event for a named key.
func NewSpecialEvent(k Key) Event {
	return Event{Key: k, Kind: KindPress}
}

// WithKind returns a copy of the event with the given kind.
func (e Event) WithKind(kind Kind) Event {
	e.Kind = kind
	return e
}

// WithModifiers returns a copy of the event with the given modifiers.
func (e Event) WithModifiers(mods Modifier) Event {
	e.Modifiers = mods
	return e
}

// IsPress returns true if the event is a key press.
func (e Event) IsPress() bool {
	return e.Kind == KindPress
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsRuneKey returns true if the event is the character r.
func (e Event) IsRuneKey(r rune) bool {
	return e.IsRune() && e.Rune == r
}

// String returns a canonical string representation such as "a", "Ctrl+x",
// "Escape" or "Backspace (release)".
func (e Event) String() string {
	name := e.Key.String()
	if e.IsRune() {
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	}

	if mods := e.Modifiers.String(); mods != "" {
		name = mods + "+" + name
	}
	if e.Kind != KindPress {
		name += " (" + e.Kind.String() + ")"
	}
	return name
}
