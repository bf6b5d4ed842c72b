// Package mode provides the modal input state machine.
//
// Two modes exist:
//   - Normal: keys are commands ('i' enters Insert, 'q' requests quit)
//   - Insert: printable characters and Backspace edit the buffer
//
// # Architecture
//
// Dispatch classifies a key event against a mode and returns a Result
// describing what should happen. Controller owns the current mode, applies
// the Result (switching modes or forwarding to its Editor) and hands the
// Result back so the caller can act on a quit request.
//
//	              'i'
//	┌────────┐ ─────────▶ ┌────────┐
//	│ Normal │            │ Insert │
//	└────────┘ ◀───────── └────────┘
//	    │        Esc (press)
//	    │ 'q'
//	    ▼
//	  quit
//
// Keys a mode does not recognise are ignored; there are no error paths.
package mode
