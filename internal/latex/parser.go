// Package latex downgrades LaTeX math source to readable Unicode text.
//
// 它不是完整的 TeX 实现：符号查表、常见结构（分数、根号、上下标、
// 矩阵类环境）转写为 Unicode，未知命令原样保留。
package latex

import (
	"strings"
	"unicode/utf8"
)

// commandFunc 处理一个控制序列。i 指向命令名之后的位置，
// 返回转写结果和新的位置。
type commandFunc func(p *Parser, src string, i int) (string, int)

// Parser 递归下降 LaTeX→Unicode 转换器，可并发使用
type Parser struct {
	commands map[string]commandFunc
}

// NewParser 创建解析器
func NewParser() *Parser {
	p := &Parser{commands: make(map[string]commandFunc)}
	registerCommands(p)
	return p
}

// register 为多个命令名注册同一个处理函数
func (p *Parser) register(fn commandFunc, names ...string) {
	for _, n := range names {
		p.commands[n] = fn
	}
}

// Convert 将 LaTeX 源码转换为 Unicode 文本，结果去掉首尾空白。
// 解析过程中出现 panic 时返回原文。
func (p *Parser) Convert(src string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = src
		}
	}()
	return strings.TrimSpace(p.Parse(src))
}

// Parse 转换 src，不做首尾处理
func (p *Parser) Parse(src string) string {
	var out strings.Builder
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\':
			name, next := readCommand(src, i)
			if name == `\frac` && endsWithDigit(&out) {
				// 带分数：2\frac{1}{2} → 2 ½
				out.WriteByte(' ')
			}
			s, next := p.command(name, src, next)
			out.WriteString(s)
			i = next
		case c == '{':
			s, next := p.group(src, i)
			out.WriteString(s)
			i = next
		case c == '}':
			i++
		case c == '_' || c == '^':
			arg, next := p.argument(src, i+1)
			if c == '_' {
				out.WriteString(Subscript(arg))
			} else {
				out.WriteString(Superscript(arg))
			}
			i = next
		case c == '\'':
			out.WriteString("′")
			i++
		case c == '~':
			out.WriteByte(' ')
			i++
		case isSpace(c):
			for i < len(src) && isSpace(src[i]) {
				i++
			}
			out.WriteByte(' ')
		default:
			r, size := utf8.DecodeRuneInString(src[i:])
			out.WriteRune(r)
			i += size
		}
	}
	return out.String()
}

// command 按优先级分派：符号表、专用处理函数、组合字符、字体样式。
// 都不匹配时返回命令原文。
func (p *Parser) command(name, src string, i int) (string, int) {
	if sym, ok := LatexSymbols[name]; ok {
		return sym, i
	}
	if fn, ok := p.commands[name]; ok {
		return fn(p, src, i)
	}
	if sample, ok := Combining[name]; ok {
		arg, next := p.argument(src, i)
		return attach(arg, sample), next
	}
	if _, ok := LatexStyles[name]; ok {
		arg, next := p.argument(src, i)
		return Style(name, arg), next
	}
	return name, i
}

// readCommand 读取从 src[i]（反斜杠）开始的控制序列名
func readCommand(src string, i int) (string, int) {
	j := i + 1
	if j >= len(src) {
		return `\`, j
	}
	if !isLetter(src[j]) {
		_, size := utf8.DecodeRuneInString(src[j:])
		return src[i : j+size], j + size
	}
	for j < len(src) && isLetter(src[j]) {
		j++
	}
	return src[i:j], j
}

// argument 读取一个参数：{...} 块、单个命令或单个字符。前导空白被跳过。
func (p *Parser) argument(src string, i int) (string, int) {
	i = skipSpaces(src, i)
	if i >= len(src) {
		return "", i
	}
	switch src[i] {
	case '{':
		return p.group(src, i)
	case '\\':
		name, next := readCommand(src, i)
		return p.command(name, src, next)
	}
	r, size := utf8.DecodeRuneInString(src[i:])
	return string(r), i + size
}

// group 解析 src[i] 处的 {...} 块
func (p *Parser) group(src string, i int) (string, int) {
	inner, next := rawGroup(src, i, '{', '}')
	return p.Parse(inner), next
}

// rawGroup 返回 src[i] 处成对定界符之间的原文，不解析。
// 转义的定界符（\{）不计入层级；未闭合时取到末尾。
func rawGroup(src string, i int, open, close byte) (string, int) {
	if i >= len(src) || src[i] != open {
		return "", i
	}
	depth := 1
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return src[i+1 : j], j + 1
			}
		}
		j++
	}
	return src[i+1:], len(src)
}

// optional 解析可选参数 [...]
func (p *Parser) optional(src string, i int) (string, int) {
	j := skipSpaces(src, i)
	if j >= len(src) || src[j] != '[' {
		return "", i
	}
	inner, next := rawGroup(src, j, '[', ']')
	return p.Parse(inner), next
}

func endsWithDigit(b *strings.Builder) bool {
	s := b.String()
	return s != "" && s[len(s)-1] >= '0' && s[len(s)-1] <= '9'
}

func skipSpaces(src string, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
