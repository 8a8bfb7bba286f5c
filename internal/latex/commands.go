package latex

import (
	"strings"
	"unicode/utf8"
)

func registerCommands(p *Parser) {
	p.register(cmdFrac, `\frac`, `\dfrac`, `\tfrac`, `\cfrac`)
	p.register(cmdSqrt, `\sqrt`)
	p.register(cmdNot, `\not`)
	p.register(cmdText, `\text`, `\textup`, `\mbox`, `\hbox`, `\operatorname`, `\mathop`, `\textnormal`)
	p.register(cmdDelimiter, `\left`, `\right`, `\middle`,
		`\bigl`, `\bigr`, `\Bigl`, `\Bigr`, `\biggl`, `\biggr`, `\Biggl`, `\Biggr`)
	p.register(cmdBinom, `\binom`, `\tbinom`, `\dbinom`)
	p.register(wrap("[", "]"), `\boxed`, `\fbox`)
	p.register(wrap(" (mod ", ")"), `\pmod`)
	p.register(cmdPhantom, `\phantom`, `\hphantom`, `\vphantom`)
	p.register(cmdOver(Superscript), `\overset`, `\stackrel`)
	p.register(cmdOver(Subscript), `\underset`)
	p.register(cmdSubstack, `\substack`)
	p.register(cmdColor, `\color`)
	p.register(cmdTextColor, `\textcolor`)
	p.register(combineWith(`\underline`), `\cancel`, `\bcancel`, `\xcancel`, `\sout`, `\underbrace`)
	p.register(combineWith(`\overline`), `\overbrace`)
	p.register(cmdArrow("→"), `\xrightarrow`)
	p.register(cmdArrow("←"), `\xleftarrow`)
	p.register(cmdBegin, `\begin`)
	p.register(cmdEnd, `\end`)
}

func cmdFrac(p *Parser, src string, i int) (string, int) {
	num, i := p.argument(src, i)
	den, i := p.argument(src, i)
	return Fraction(num, den), i
}

func cmdSqrt(p *Parser, src string, i int) (string, int) {
	index, i := p.optional(src, i)
	radicand, i := p.argument(src, i)
	return Root(index, radicand), i
}

func cmdNot(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	if i >= len(src) {
		return "̸", i
	}
	if src[i] == '\\' {
		name, next := readCommand(src, i)
		sym, ok := LatexSymbols[name]
		if !ok {
			sym = name
		}
		return Negate(sym), next
	}
	r, size := utf8.DecodeRuneInString(src[i:])
	return Negate(string(r)), i + size
}

// cmdText 文本命令的参数按原文输出，只处理转义
func cmdText(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	if i < len(src) && src[i] == '{' {
		raw, next := rawGroup(src, i, '{', '}')
		return unescapeText(raw), next
	}
	return p.argument(src, i)
}

var textEscapes = strings.NewReplacer(`\{`, "{", `\}`, "}", `\%`, "%", `\$`, "$", `\&`, "&", `\#`, "#", `\_`, "_", `\ `, " ", `~`, " ")

func unescapeText(s string) string {
	return textEscapes.Replace(s)
}

// cmdDelimiter 处理 \left( 这类定界符，"." 表示不可见
func cmdDelimiter(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	if i >= len(src) {
		return "", i
	}
	switch src[i] {
	case '.':
		return "", i + 1
	case '\\':
		name, next := readCommand(src, i)
		if sym, ok := LatexSymbols[name]; ok {
			return sym, next
		}
		return strings.TrimPrefix(name, `\`), next
	}
	r, size := utf8.DecodeRuneInString(src[i:])
	return string(r), i + size
}

func cmdBinom(p *Parser, src string, i int) (string, int) {
	n, i := p.argument(src, i)
	k, i := p.argument(src, i)
	return "C(" + strings.TrimSpace(n) + "," + strings.TrimSpace(k) + ")", i
}

func wrap(prefix, suffix string) commandFunc {
	return func(p *Parser, src string, i int) (string, int) {
		arg, next := p.argument(src, i)
		return prefix + strings.TrimSpace(arg) + suffix, next
	}
}

func cmdPhantom(p *Parser, src string, i int) (string, int) {
	arg, next := p.argument(src, i)
	n := utf8.RuneCountInString(arg)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n), next
}

// cmdOver 处理 \overset{a}{b} 一类命令：a 以上标或下标形式附在 b 之后
func cmdOver(script func(string) string) commandFunc {
	return func(p *Parser, src string, i int) (string, int) {
		mark, i := p.argument(src, i)
		base, i := p.argument(src, i)
		return base + script(mark), i
	}
}

func cmdSubstack(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	raw, next := rawGroup(src, i, '{', '}')
	var lines []string
	for _, line := range splitRows(raw) {
		if s := strings.TrimSpace(p.Parse(line)); s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, ", "), next
}

func cmdColor(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	_, next := rawGroup(src, i, '{', '}')
	return "", next
}

func cmdTextColor(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	_, i = rawGroup(src, i, '{', '}')
	return p.argument(src, i)
}

func combineWith(command string) commandFunc {
	sample := Combining[command]
	return func(p *Parser, src string, i int) (string, int) {
		arg, next := p.argument(src, i)
		return attach(arg, sample), next
	}
}

func cmdArrow(arrow string) commandFunc {
	return func(p *Parser, src string, i int) (string, int) {
		_, i = p.optional(src, i)
		label, i := p.argument(src, i)
		if label = strings.TrimSpace(label); label != "" {
			return arrow + "(" + label + ")", i
		}
		return arrow, i
	}
}

func cmdBegin(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	name, i := rawGroup(src, i, '{', '}')
	body, next := environmentBody(src, i, name)
	return p.environment(name, body), next
}

// cmdEnd 吞掉没有配对 \begin 的 \end{...}
func cmdEnd(p *Parser, src string, i int) (string, int) {
	i = skipSpaces(src, i)
	_, next := rawGroup(src, i, '{', '}')
	return "", next
}
