// Package renderer projects application state onto a terminal backend.
//
// Each frame is drawn from scratch from a View:
//
//	┌Actions───────────────────────────────┐
//	│NORMAL                                │
//	└──────────────────────────────────────┘
//	┌Tables─┐┌Editor───────────────────────┐
//	│table1 ││text wrapped to the panel    │
//	│table2 ││width                        │
//	└───────┘└─────────────────────────────┘
//
// The banner takes a tenth of the height (never fewer than three rows), the
// Tables panel a fifth of the body width and the Editor the rest. The
// terminal cursor is placed at the buffer cursor inside the Editor panel and
// styled for the current mode.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Render(renderer.View{Mode: mode.Normal})
package renderer
