// Package key provides the key event types consumed by the mode controller.
//
//   - Key: identifies a keyboard key (a named key, or KeyRune for characters)
//   - Modifier: modifier keys held during the event (Ctrl, Alt, Shift, Meta)
//   - Kind: whether the terminal reported a press, a repeat or a release
//   - Event: one discrete key event
//
// Terminals that only report presses produce KindPress for every event.
package key
