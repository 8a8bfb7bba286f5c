// Package buffer accumulates plain text while tracking offsets in UTF-16
// code units, the unit used by browser selections and word processors.
package buffer

import (
	"strings"
	"unicode/utf16"
)

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}

// TextBuffer 追加写入文本，同时记录 UTF-16 偏移
type TextBuffer struct {
	b      strings.Builder
	offset int
}

// New creates an empty TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{}
}

// Write appends text.
func (tb *TextBuffer) Write(text string) {
	tb.b.WriteString(text)
	tb.offset += UTF16Len(text)
}

// UTF16Offset returns the current length in UTF-16 code units.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.offset
}

// Len returns the current length in bytes.
func (tb *TextBuffer) Len() int {
	return tb.b.Len()
}

// TrailingNewlines counts the newlines at the end of the buffer.
func (tb *TextBuffer) TrailingNewlines() int {
	s := tb.b.String()
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		n++
	}
	return n
}

// EnsureNewlines 保证缓冲区以至少 n 个换行结尾；空缓冲区不写入
func (tb *TextBuffer) EnsureNewlines(n int) {
	if tb.b.Len() == 0 {
		return
	}
	if missing := n - tb.TrailingNewlines(); missing > 0 {
		tb.Write(strings.Repeat("\n", missing))
	}
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	return tb.b.String()
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.b.Reset()
	tb.offset = 0
}
