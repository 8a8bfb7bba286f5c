package scanner

import (
	"strings"
	"testing"

	"github.com/riverfjs/mathclean-go/internal/types"
)

// mathSources 收集所有公式 segment 的 source
func mathSources(segments []types.Segment) []string {
	result := []string{}
	for _, s := range segments {
		if s.IsMath() {
			result = append(result, s.Fragment.Source)
		}
	}
	return result
}

// textContents 收集所有文本 segment 的内容
func textContents(segments []types.Segment) []string {
	result := []string{}
	for _, s := range segments {
		if s.Kind == types.KindText {
			result = append(result, s.Content)
		}
	}
	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestSegments_Delimiters 测试各种定界符的提取结果
func TestSegments_Delimiters(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMath  []string
		wantTexts []string
	}{
		{
			name:      "unbalanced trailing dollar",
			input:     "$x$ and $y",
			wantMath:  []string{"x"},
			wantTexts: []string{" and $y"},
		},
		{
			name:      "escaped dollar",
			input:     `price: \$5, formula: $x^2$`,
			wantMath:  []string{"x^2"},
			wantTexts: []string{`price: \$5, formula: `},
		},
		{
			name:      "double dollar without content",
			input:     "$$",
			wantMath:  []string{},
			wantTexts: []string{"$$"},
		},
		{
			name:      "blank inline span",
			input:     "$ $",
			wantMath:  []string{},
			wantTexts: []string{"$ $"},
		},
		{
			name:      "blank display block",
			input:     "$$ $$",
			wantMath:  []string{},
			wantTexts: []string{"$$ $$"},
		},
		{
			name:      "display block",
			input:     `a $$ \frac{1}{2} $$ b`,
			wantMath:  []string{`\frac{1}{2}`},
			wantTexts: []string{"a ", " b"},
		},
		{
			name:      "display block across lines",
			input:     "start\n$$\nx = 1\n$$\nend",
			wantMath:  []string{"x = 1"},
			wantTexts: []string{"start\n", "\nend"},
		},
		{
			name:      "escaped closing dollar",
			input:     `$a\$b$`,
			wantMath:  []string{`a\$b`},
			wantTexts: []string{},
		},
		{
			name:      "adjacent inline spans",
			input:     "$a$$b$",
			wantMath:  []string{"a", "b"},
			wantTexts: []string{},
		},
		{
			name:      "multibyte text",
			input:     "数学 $α+β$ 结束",
			wantMath:  []string{"α+β"},
			wantTexts: []string{"数学 ", " 结束"},
		},
		{
			name:      "dollar inside mathml is not a delimiter",
			input:     "$a$ <math><mi>$</mi></math> $b$",
			wantMath:  []string{"a", "$", "b"},
			wantTexts: []string{" ", " "},
		},
		{
			name:      "unclosed dollar before mathml",
			input:     "$x <math><mi>$</mi></math>",
			wantMath:  []string{"$"},
			wantTexts: []string{"$x "},
		},
		{
			name:      "closing dollar of a blank span is not reused",
			input:     "$ $x$ y",
			wantMath:  []string{},
			wantTexts: []string{"$ $x$ y"},
		},
		{
			name:      "inline span does not cross mathml",
			input:     "$<math><mi>x</mi></math>$",
			wantMath:  []string{"x"},
			wantTexts: []string{"$", "$"},
		},
		{
			name:      "inline span crossing a display block",
			input:     "$a $$b$$ c$",
			wantMath:  []string{"a $$b$$ c"},
			wantTexts: []string{},
		},
		{
			name:      "no math",
			input:     "plain text only",
			wantMath:  []string{},
			wantTexts: []string{"plain text only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments := Segments(tt.input, Options{})
			if got := mathSources(segments); !equalStrings(got, tt.wantMath) {
				t.Errorf("math sources = %q, want %q", got, tt.wantMath)
			}
			if got := textContents(segments); !equalStrings(got, tt.wantTexts) {
				t.Errorf("texts = %q, want %q", got, tt.wantTexts)
			}
		})
	}
}

// TestSegments_CoverInput 测试 segment 的偏移量首尾相接、覆盖整个输入
func TestSegments_CoverInput(t *testing.T) {
	inputs := []string{
		"$x$ and $y",
		`price: \$5, formula: $x^2$`,
		"<p>Sum: <math><mi>x</mi></math> and $$y$$ then $z$.</p>",
		"$a $$b$$ c$ tail",
		"数学 $α+β$ 结束",
		"",
	}
	for _, input := range inputs {
		segments := Segments(input, Options{})
		pos := 0
		var rebuilt strings.Builder
		for i, s := range segments {
			if s.Start != pos {
				t.Fatalf("input %q: segment %d starts at %d, want %d", input, i, s.Start, pos)
			}
			if s.Kind == types.KindText && input[s.Start:s.End] != s.Content {
				t.Errorf("input %q: text segment %d = %q, input slice = %q", input, i, s.Content, input[s.Start:s.End])
			}
			rebuilt.WriteString(input[s.Start:s.End])
			pos = s.End
		}
		if rebuilt.String() != input {
			t.Errorf("rebuilt = %q, want %q", rebuilt.String(), input)
		}
	}
}

// TestSegments_MathML 测试 MathML 块的注解提取和原文保留
func TestSegments_MathML(t *testing.T) {
	block := `<math><annotation encoding="application/x-tex">x+1</annotation></math>`
	input := "<p>Sum: " + block + " done</p>"
	segments := Segments(input, Options{})

	if len(segments) != 3 {
		t.Fatalf("len(segments) = %d, want 3", len(segments))
	}
	m := segments[1]
	if !m.IsMath() {
		t.Fatal("segments[1] should be math")
	}
	if m.Fragment.Source != "x+1" {
		t.Errorf("Source = %q, want %q", m.Fragment.Source, "x+1")
	}
	if m.Fragment.Original != block {
		t.Errorf("Original = %q, want %q", m.Fragment.Original, block)
	}
	if !m.Fragment.Display {
		t.Error("MathML fragments should always be display mode")
	}
	if m.Fragment.Origin != types.OriginMathML {
		t.Errorf("Origin = %v, want mathml", m.Fragment.Origin)
	}
}

// TestSegments_MathMLCaseInsensitive 测试大写标签
func TestSegments_MathMLCaseInsensitive(t *testing.T) {
	input := `<MATH display="block"><mi>y</mi></MATH>`
	segments := Segments(input, Options{})
	if len(segments) != 1 || !segments[0].IsMath() {
		t.Fatalf("segments = %+v, want one math segment", segments)
	}
	if segments[0].Fragment.Source != "y" {
		t.Errorf("Source = %q, want %q", segments[0].Fragment.Source, "y")
	}
}

// TestSegments_DisplayMode 测试行内公式的显示模式判断
func TestSegments_DisplayMode(t *testing.T) {
	segments := Segments(`A = $\begin{pmatrix}1&2\\3&4\end{pmatrix}$ and $x^2$`, Options{})
	var modes []bool
	for _, s := range segments {
		if s.IsMath() {
			modes = append(modes, s.Fragment.Display)
		}
	}
	if len(modes) != 2 || !modes[0] || modes[1] {
		t.Errorf("display modes = %v, want [true false]", modes)
	}
}

// TestSegments_Brackets 测试 \[...\] 与 \(...\) 仅在启用时生效
func TestSegments_Brackets(t *testing.T) {
	input := `\(a\) and \[b\]`

	if got := mathSources(Segments(input, Options{})); len(got) != 0 {
		t.Errorf("brackets disabled: math = %q, want none", got)
	}

	segments := Segments(input, Options{Brackets: true})
	if got := mathSources(segments); !equalStrings(got, []string{"a", "b"}) {
		t.Fatalf("brackets enabled: math = %q, want [a b]", got)
	}
	if segments[0].Fragment.Display {
		t.Error(`\(a\) should render inline`)
	}
	if !segments[2].Fragment.Display {
		t.Error(`\[b\] should render as display`)
	}
	if got := textContents(segments); !equalStrings(got, []string{" and "}) {
		t.Errorf("texts = %q, want [\" and \"]", got)
	}
}

// TestScan_Tables 测试扫描结果中的公式表
func TestScan_Tables(t *testing.T) {
	res := Scan("<math><mi>m</mi></math> $$d$$ $i$", Options{})
	if len(res.MathML) != 1 || len(res.Display) != 1 || len(res.Inline) != 1 {
		t.Fatalf("tables = %d/%d/%d, want 1/1/1", len(res.MathML), len(res.Display), len(res.Inline))
	}
	if res.Display[0] != "d" || res.Inline[0] != "i" {
		t.Errorf("Display = %q, Inline = %q", res.Display[0], res.Inline[0])
	}
	kinds := []TokenKind{}
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{TokenMathML, TokenText, TokenDisplay, TokenText, TokenInline}
	if len(kinds) != len(want) {
		t.Fatalf("token kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

// TestSegments_DollarAroundMathML 测试 $ 包住的 MathML 块仍保留原文
func TestSegments_DollarAroundMathML(t *testing.T) {
	block := "<math><mi>x</mi></math>"
	segments := Segments("$"+block+"$", Options{})
	if len(segments) != 3 || !segments[1].IsMath() {
		t.Fatalf("segments = %+v", segments)
	}
	if f := segments[1].Fragment; f.Original != block || f.Origin != types.OriginMathML {
		t.Errorf("fragment = %+v, want MathML origin with original block", f)
	}
}
