// Package format renders the small markdown-like subset found in pasted
// text (bold, italic, bullets, line breaks) as HTML.
package format

import (
	"strings"
)

// textEscaper 按 HTML 文本节点的序列化规则转义：只处理 & < > 和不换行空格
var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\u00a0", "&nbsp;",
)

// Escape 转义文本节点内容
func Escape(s string) string {
	return textEscaper.Replace(s)
}

// Text 将一段文本转为 HTML。顺序固定：
//  1. 转义
//  2. **x** → <strong>x</strong>
//  3. *x* → <em>x</em>（两侧标记都不与其他 * 相邻）
//  4. 行首的 • - ● → <span class="bullet">…</span>
//  5. \n → <br>\n
//
// 强调内容不跨行。
func Text(s string) string {
	s = Escape(s)
	s = bold(s)
	s = italic(s)
	s = bullets(s)
	return strings.ReplaceAll(s, "\n", "<br>\n")
}

func isLineBreak(c byte) bool {
	return c == '\n' || c == '\r'
}

// bold 从左到右替换不重叠的 **x**，x 至少一个字节且取最短
func bold(s string) string {
	if !strings.Contains(s, "**") {
		return s
	}
	var b strings.Builder
	i := 0
	for i < len(s) {
		if strings.HasPrefix(s[i:], "**") {
			if end := closeBold(s, i+2); end >= 0 {
				b.WriteString("<strong>")
				b.WriteString(s[i+2 : end])
				b.WriteString("</strong>")
				i = end + 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// closeBold 返回 start 之后第一个可用的 ** 位置，没有则返回 -1
func closeBold(s string, start int) int {
	for j := start; j < len(s); j++ {
		if isLineBreak(s[j]) {
			return -1
		}
		if j > start && strings.HasPrefix(s[j:], "**") {
			return j
		}
	}
	return -1
}

// italic 替换 *x*：开闭标记前后都不是 *
func italic(s string) string {
	if !strings.Contains(s, "*") {
		return s
	}
	var b strings.Builder
	i := 0
	for i < len(s) {
		if isLoneStar(s, i) {
			if end := closeItalic(s, i+1); end >= 0 {
				b.WriteString("<em>")
				b.WriteString(s[i+1 : end])
				b.WriteString("</em>")
				i = end + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isLoneStar(s string, i int) bool {
	return s[i] == '*' &&
		(i == 0 || s[i-1] != '*') &&
		(i+1 >= len(s) || s[i+1] != '*')
}

func closeItalic(s string, start int) int {
	for j := start; j < len(s); j++ {
		if isLineBreak(s[j]) {
			return -1
		}
		if j > start && isLoneStar(s, j) {
			return j
		}
	}
	return -1
}

var bulletMarks = []string{"•", "-", "●"}

// bullets 处理行首的列表符号及其后的空格、制表符
func bullets(s string) string {
	lines := strings.Split(s, "\n")
	for k, line := range lines {
		for _, mark := range bulletMarks {
			if strings.HasPrefix(line, mark) {
				rest := strings.TrimLeft(line[len(mark):], " \t")
				lines[k] = `<span class="bullet">` + mark + `</span> ` + rest
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}
