// Package buffer provides the editor's text buffer: a single string of
// content and a cursor measured in characters (Unicode scalar values).
//
// The cursor always satisfies 0 <= Cursor() <= Len(). Every operation is
// total; out-of-range movement is clamped instead of reported as an error.
//
// Basic usage:
//
//	buf := buffer.NewBuffer()
//	buf.InsertChar('h')
//	buf.InsertChar('i')        // "hi", cursor 2
//	buf.DeleteCharBeforeCursor() // "h", cursor 1
//
// Offsets:
//
// The cursor counts characters, while the content is stored as UTF-8. The two
// diverge as soon as a multi-byte character precedes the cursor, so every
// mutation translates the character offset to a byte offset first.
package buffer
