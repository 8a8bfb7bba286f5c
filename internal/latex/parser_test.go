package latex

import (
	"strings"
	"testing"
)

// TestConvert 测试常见结构的 Unicode 转写
func TestConvert(t *testing.T) {
	p := NewParser()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"greek", `\alpha + \beta`, "α + β"},
		{"superscript digits", `x^2 + y^{10}`, "x² + y¹⁰"},
		{"subscript", `a_i + a_{n+1}`, "aᵢ + aₙ₊₁"},
		{"subscript fallback", `x_{\alpha q}`, "x_(α q)"},
		{"superscript single fallback", `e^Q`, "e^Q"},
		{"common fraction", `\frac{1}{2}`, "½"},
		{"mixed number", `2\frac{1}{2}`, "2 ½"},
		{"general fraction", `\frac{a+b}{c}`, "(a+b)/c"},
		{"fraction without braces", `\frac12`, "½"},
		{"sqrt", `\sqrt{x}`, "√x"},
		{"sqrt long", `\sqrt{x+1}`, "√(x+1)"},
		{"cube root", `\sqrt[3]{8}`, "∛8"},
		{"not equal", `a \not= b`, "a ≠ b"},
		{"not in", `x \not\in A`, "x ∉ A"},
		{"blackboard", `\mathbb{R}`, "ℝ"},
		{"bold", `\mathbf{v}`, "𝐯"},
		{"text", `\text{if }x > 0`, "if x > 0"},
		{"left right", `\left( x \right)`, "( x )"},
		{"invisible delimiter", `\left. x \right|`, "x |"},
		{"binom", `\binom{n}{k}`, "C(n,k)"},
		{"pmod", `a \equiv b \pmod{m}`, "a ≡ b  (mod m)"},
		{"color", `\color{red}{x}`, "x"},
		{"textcolor", `\textcolor{blue}{y}`, "y"},
		{"hat", `\hat{x}`, "x̂"},
		{"vec", `\vec v`, "v⃗"},
		{"sum limits", `\sum_{i=1}^{n} i`, "∑ᵢ₌₁ⁿ i"},
		{"prime", `f'(x)`, "f′(x)"},
		{"unknown command", `\foo{x}`, `\foox`},
		{"multibyte passthrough", `x = 数`, "x = 数"},
		{"spacing", `a\,b\quad c`, "a b   c"},
		{"escaped braces", `\{1, 2\}`, "{1, 2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Convert(tt.input); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestConvert_Environments 测试矩阵、cases 和对齐环境
func TestConvert_Environments(t *testing.T) {
	p := NewParser()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"pmatrix", `\begin{pmatrix}1&2\\3&4\end{pmatrix}`, "(1  2\n3  4)"},
		{"bmatrix", `\begin{bmatrix} a & b \end{bmatrix}`, "[a  b]"},
		{"smallmatrix", `\begin{smallmatrix}1&0\\0&1\end{smallmatrix}`, "1, 0; 0, 1"},
		{"cases", `\begin{cases} 1 & x > 0 \\ 0 & x \le 0 \end{cases}`, "⎧ 1, x > 0\n⎩ 0, x ≤ 0"},
		{"align", `\begin{align} x &= 1 \\ y &= 2 \end{align}`, "x = 1\ny = 2"},
		{"array", `\begin{array}{cc} a & b \\ c & d \end{array}`, "a  b\nc  d"},
		{"nested braces in cell", `\begin{matrix}\frac{1}{2} & x\end{matrix}`, "½  x"},
		{"unclosed environment", `\begin{matrix}a & b`, "a  b"},
		{"unknown environment", `\begin{foo}x^2\end{foo}`, "x²"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Convert(tt.input); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestConvert_Malformed 测试不完整输入不会 panic
func TestConvert_Malformed(t *testing.T) {
	inputs := []string{
		`\frac{1}{`,
		`\sqrt[`,
		`x^`,
		`\`,
		`{{{`,
		`}}}`,
		`\begin{`,
		`\left`,
		`\not`,
		`\text{unclosed`,
	}
	p := NewParser()
	for _, input := range inputs {
		_ = p.Convert(input)
	}
}

// TestNegate 测试否定符号
func TestNegate(t *testing.T) {
	if got := Negate("="); got != "≠" {
		t.Errorf("Negate(=) = %q, want ≠", got)
	}
	if got := Negate("x"); got != "x̸" {
		t.Errorf("Negate(x) = %q, want x with combining solidus", got)
	}
	if got := Negate(" "); got != "" {
		t.Errorf("Negate(space) = %q, want empty", got)
	}
}

// TestStyle 测试字母表例外字符
func TestStyle(t *testing.T) {
	tests := []struct {
		command, input, want string
	}{
		{`\mathbb`, "NZQ", "ℕℤℚ"},
		{`\mathbb`, "A1", "𝔸𝟙"},
		{`\mathcal`, "LA", "ℒ𝒜"},
		{`\mathit`, "h", "ℎ"},
		{`\mathrm`, "dx", "dx"},
		{`\mathfrak`, "g", "𝔤"},
	}
	for _, tt := range tests {
		if got := Style(tt.command, tt.input); got != tt.want {
			t.Errorf("Style(%s, %q) = %q, want %q", tt.command, tt.input, got, tt.want)
		}
	}
}

// TestContainsCommands 测试 LaTeX 命令检测
func TestContainsCommands(t *testing.T) {
	if !ContainsCommands(`area = \pi r^2`) {
		t.Error(`\pi should be detected`)
	}
	if ContainsCommands(`\top secret`) {
		t.Error(`\top should not match \to`)
	}
	if ContainsCommands("plain text") {
		t.Error("plain text should not be detected")
	}
}

// TestDefault 测试共享实例
func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same parser")
	}
	if got := Convert(`\alpha`); !strings.Contains(got, "α") {
		t.Errorf("Convert = %q", got)
	}
}
