package format

import (
	"strings"
	"testing"
)

// TestText 测试文本格式化规则
func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"escape", `a < b & c > "d"`, `a &lt; b &amp; c &gt; "d"`},
		{"bold", "this is **bold** text", "this is <strong>bold</strong> text"},
		{"bold shortest match", "**a** and **b**", "<strong>a</strong> and <strong>b</strong>"},
		{"bold does not cross lines", "**a\nb**", "**a<br>\nb**"},
		{"empty bold", "****", "****"},
		{"italic", "an *italic* word", "an <em>italic</em> word"},
		{"bold then italic", "**b** and *i*", "<strong>b</strong> and <em>i</em>"},
		{"italic inside bold", "**a *b* c**", "<strong>a <em>b</em> c</strong>"},
		{"lone star", "2 * 3 = 6", "2 * 3 = 6"},
		{"bullet dot", "• item", `<span class="bullet">•</span> item`},
		{"bullet dash", "- one\n-two", `<span class="bullet">-</span> one<br>` + "\n" + `<span class="bullet">-</span> two`},
		{"bullet keeps following line", "●\nnext", `<span class="bullet">●</span> <br>` + "\nnext"},
		{"dash not at line start", "a - b", "a - b"},
		{"line breaks", "a\nb\n", "a<br>\nb<br>\n"},
		{"nbsp", "a\u00a0b", "a&nbsp;b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) =\n%q\nwant\n%q", tt.input, got, tt.want)
			}
		})
	}
}

// TestText_NoNewEmphasisOnSecondPass 测试二次格式化不会产生新的强调标签
func TestText_NoNewEmphasisOnSecondPass(t *testing.T) {
	inputs := []string{
		"**a** *b* ***c*** ****",
		"**unclosed *mixed** text*",
		"* a * b * c *",
		"**x\n** y **",
		"- **bold item**\n• *it*",
	}
	for _, input := range inputs {
		once := Text(input)
		twice := Text(once)
		if n := strings.Count(twice, "<strong>"); n != 0 {
			t.Errorf("input %q: second pass added %d <strong>: %q", input, n, twice)
		}
		if n := strings.Count(twice, "<em>"); n != 0 {
			t.Errorf("input %q: second pass added %d <em>: %q", input, n, twice)
		}
	}
}
