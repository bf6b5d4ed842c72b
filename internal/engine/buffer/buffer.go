package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer holds editable text and a character-unit cursor.
// A Buffer is owned by a single goroutine and is not safe for concurrent use.
type Buffer struct {
	content string
	cursor  int
}

// NewBuffer creates an empty buffer with the cursor at 0.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferFromString creates a buffer holding text with the cursor at 0.
// Invalid UTF-8 sequences are replaced with utf8.RuneError.
func NewBufferFromString(text string) *Buffer {
	return &Buffer{content: strings.ToValidUTF8(text, string(utf8.RuneError))}
}

// Text returns the buffer content.
func (b *Buffer) Text() string {
	return b.content
}

// Cursor returns the cursor as a character offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return utf8.RuneCountInString(b.content)
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return b.content == ""
}

// SetCursor moves the cursor to pos, clamped to [0, Len()].
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
}

// InsertChar inserts c at the cursor and advances the cursor by one.
func (b *Buffer) InsertChar(c rune) {
	if !utf8.ValidRune(c) {
		c = utf8.RuneError
	}

	idx := b.byteOffset(b.cursor)

	var sb strings.Builder
	sb.Grow(len(b.content) + utf8.RuneLen(c))
	sb.WriteString(b.content[:idx])
	sb.WriteRune(c)
	sb.WriteString(b.content[idx:])
	b.content = sb.String()

	b.MoveCursorRight()
}

// DeleteCharBeforeCursor removes the character immediately left of the
// cursor and moves the cursor back by one. It does nothing at offset 0.
func (b *Buffer) DeleteCharBeforeCursor() {
	if b.cursor == 0 {
		return
	}

	// Character cursor-1 occupies bytes [start, end).
	start := b.byteOffset(b.cursor - 1)
	end := b.byteOffset(b.cursor)
	b.content = b.content[:start] + b.content[end:]

	b.MoveCursorLeft()
}

// MoveCursorRight advances the cursor by one character, stopping at Len().
func (b *Buffer) MoveCursorRight() {
	b.cursor = b.clamp(b.cursor + 1)
}

// MoveCursorLeft moves the cursor back by one character, stopping at 0.
func (b *Buffer) MoveCursorLeft() {
	b.cursor = b.clamp(b.cursor - 1)
}

// byteOffset converts a character offset into a byte offset into content.
// Offsets at or past the last character map to len(content).
func (b *Buffer) byteOffset(charOffset int) int {
	if charOffset <= 0 {
		return 0
	}
	n := 0
	for i := range b.content {
		if n == charOffset {
			return i
		}
		n++
	}
	return len(b.content)
}

// clamp restricts pos to the valid cursor range.
func (b *Buffer) clamp(pos int) int {
	return min(max(pos, 0), b.Len())
}
