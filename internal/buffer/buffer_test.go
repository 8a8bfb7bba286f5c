package buffer

import "testing"

// TestUTF16Len 测试 UTF-16 长度计算
func TestUTF16Len(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"abc", 3},
		{"α²", 2},
		{"数学", 2},
		{"𝐯", 2},
		{"a😀b", 4},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.input); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

// TestTextBuffer 测试偏移跟踪和换行处理
func TestTextBuffer(t *testing.T) {
	tb := New()
	tb.EnsureNewlines(2)
	if tb.String() != "" {
		t.Fatalf("EnsureNewlines on empty buffer wrote %q", tb.String())
	}

	tb.Write("𝐯 = ")
	if got := tb.UTF16Offset(); got != 5 {
		t.Errorf("UTF16Offset() = %d, want 5", got)
	}
	if got := tb.Len(); got != len("𝐯 = ") {
		t.Errorf("Len() = %d, want %d", got, len("𝐯 = "))
	}

	tb.Write("x\n")
	tb.EnsureNewlines(2)
	if got := tb.String(); got != "𝐯 = x\n\n" {
		t.Errorf("String() = %q", got)
	}
	if got := tb.TrailingNewlines(); got != 2 {
		t.Errorf("TrailingNewlines() = %d, want 2", got)
	}

	tb.Reset()
	if tb.UTF16Offset() != 0 || tb.String() != "" {
		t.Error("Reset() should clear the buffer")
	}
}
