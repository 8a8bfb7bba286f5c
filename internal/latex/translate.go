package latex

import (
	"strings"
	"unicode"
)

// mapAll 对 text 中每个字符查表；任一字符缺失时 ok 为 false
func mapAll(text string, table map[rune]rune) (string, bool) {
	if text == "" {
		return "", false
	}
	var b strings.Builder
	for _, r := range text {
		m, ok := table[r]
		if !ok {
			return "", false
		}
		b.WriteRune(m)
	}
	return b.String(), true
}

// Subscript 返回下标形式：能全部映射为 Unicode 下标时直接映射，
// 否则退化为 _x 或 _(xy)。
func Subscript(text string) string {
	return script(text, Subscripts, "_")
}

// Superscript 返回上标形式，规则同 Subscript
func Superscript(text string) string {
	return script(text, Superscripts, "^")
}

func script(text string, table map[rune]rune, marker string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if s, ok := mapAll(text, table); ok {
		return s
	}
	if len([]rune(text)) == 1 {
		return marker + text
	}
	return marker + "(" + text + ")"
}

// Fraction 返回分数形式，常见分数使用专用字符
func Fraction(num, den string) string {
	num, den = strings.TrimSpace(num), strings.TrimSpace(den)
	if num == "" && den == "" {
		return ""
	}
	if f, ok := FracMap[[2]string{num, den}]; ok {
		return f
	}
	return group(num) + "/" + group(den)
}

// group 在 text 不是单个"词"时加括号
func group(text string) string {
	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !isCombining(r) && r != '_' {
			return "(" + text + ")"
		}
	}
	return text
}

// Root 返回根式，三次、四次根使用专用字符
func Root(index, radicand string) string {
	index = strings.TrimSpace(index)
	radicand = strings.TrimSpace(radicand)

	var sign string
	switch index {
	case "", "2":
		sign = "√"
	case "3":
		sign = "∛"
	case "4":
		sign = "∜"
	default:
		if s, ok := mapAll(index, Superscripts); ok {
			sign = s + "√"
		} else {
			sign = "(" + index + ")√"
		}
	}
	if len([]rune(radicand)) > 1 {
		return sign + "(" + radicand + ")"
	}
	return sign + radicand
}

// Combine 为 text 附加 command 对应的组合字符
func Combine(command, text string) string {
	sample, ok := Combining[command]
	if !ok {
		return text
	}
	return attach(text, sample)
}

func attach(text string, sample CombiningSample) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	switch sample.Type {
	case LastChar:
		return text + string(sample.Char)
	case AllChars:
		var b strings.Builder
		for _, r := range runes {
			b.WriteRune(r)
			if !unicode.IsSpace(r) {
				b.WriteRune(sample.Char)
			}
		}
		return b.String()
	}

	// FirstChar: 放在第一个字符及其已有组合字符之后
	i := 1
	for i < len(runes) && isCombining(runes[i]) {
		i++
	}
	return string(runes[:i]) + string(sample.Char) + string(runes[i:])
}

// Negate 返回关系符的否定形式，没有专用字符时加组合斜线
func Negate(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return ""
	}
	if n, ok := NotMap[symbol]; ok {
		return n
	}
	runes := []rune(symbol)
	return string(runes[0]) + "̸" + string(runes[1:])
}

// Style 按 command 对应的数学字母表转换 text
func Style(command, text string) string {
	table := LatexStyles[command]
	if table == nil {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if m, ok := table[r]; ok {
			b.WriteRune(m)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isCombining(r rune) bool {
	return (r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x1AB0 && r <= 0x1AFF) ||
		(r >= 0x1DC0 && r <= 0x1DFF) ||
		(r >= 0x20D0 && r <= 0x20FF) ||
		(r >= 0xFE20 && r <= 0xFE2F)
}
