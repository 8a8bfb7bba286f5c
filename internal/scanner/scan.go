// Package scanner locates math regions in mixed HTML/MathML/LaTeX text and
// turns them into an ordered segment list.
//
// 扫描分三步，优先级固定：
//  1. <math>...</math> 块
//  2. $$...$$ 块级公式
//  3. $...$ 行内公式（逐字符扫描）
//
// 前两步产出的区域以 Token 的形式嵌入 token 流，第三步扫描时整体跳过，
// 不依赖任何输入中"不会出现"的控制字符。
package scanner

import (
	"regexp"
	"strings"
)

// TokenKind 标识 token 类型
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenMathML
	TokenDisplay
	TokenInline
	TokenBracketDisplay
	TokenBracketInline
)

// Token 是扫描结果中的一个单元。
//
// 文本 token 的 Text 为原文；其余 token 的 Text 为包含定界符的原始片段，
// Index 指向 Result 中对应表的下标。Start/End 为原始输入中的字节偏移。
type Token struct {
	Kind  TokenKind
	Text  string
	Index int
	Start int
	End   int
}

// Options 控制扫描行为
type Options struct {
	// Brackets 启用 \[...\] 与 \(...\) 定界符
	Brackets bool
}

// Result 扫描输出：token 流加上各类公式表
type Result struct {
	Tokens         []Token
	MathML         []string // 原始 <math> 块
	Display        []string // $$...$$ 内容（已 trim）
	Inline         []string // $...$ 内容（已 trim）
	BracketDisplay []string // \[...\] 内容（已 trim）
	BracketInline  []string // \(...\) 内容（已 trim）
}

var (
	mathMLBlockRe    = regexp.MustCompile(`(?is)<math(?:\s[^>]*)?>.*?</math\s*>`)
	displayBlockRe   = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	bracketDisplayRe = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)
	bracketInlineRe  = regexp.MustCompile(`(?s)\\\((.+?)\\\)`)
)

// Scan runs the three extraction passes over text.
func Scan(text string, opts Options) *Result {
	res := &Result{}
	tokens := []Token{{Kind: TokenText, Text: text, Start: 0, End: len(text)}}

	tokens = splitText(tokens, mathMLBlockRe, func(m string, _ string) (TokenKind, int, bool) {
		res.MathML = append(res.MathML, m)
		return TokenMathML, len(res.MathML) - 1, true
	})

	tokens = splitText(tokens, displayBlockRe, func(_ string, inner string) (TokenKind, int, bool) {
		inner = strings.TrimSpace(inner)
		if inner == "" {
			return 0, 0, false
		}
		res.Display = append(res.Display, inner)
		return TokenDisplay, len(res.Display) - 1, true
	})

	if opts.Brackets {
		tokens = splitText(tokens, bracketDisplayRe, func(_ string, inner string) (TokenKind, int, bool) {
			inner = strings.TrimSpace(inner)
			if inner == "" {
				return 0, 0, false
			}
			res.BracketDisplay = append(res.BracketDisplay, inner)
			return TokenBracketDisplay, len(res.BracketDisplay) - 1, true
		})
		tokens = splitText(tokens, bracketInlineRe, func(_ string, inner string) (TokenKind, int, bool) {
			inner = strings.TrimSpace(inner)
			if inner == "" {
				return 0, 0, false
			}
			res.BracketInline = append(res.BracketInline, inner)
			return TokenBracketInline, len(res.BracketInline) - 1, true
		})
	}

	res.Tokens = scanInline(tokens, res)
	return res
}

// splitText 用 re 切分所有文本 token。accept 返回 false 时该匹配保留为文本。
func splitText(tokens []Token, re *regexp.Regexp, accept func(match, inner string) (TokenKind, int, bool)) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != TokenText {
			out = append(out, tok)
			continue
		}
		last := 0
		for _, loc := range re.FindAllStringSubmatchIndex(tok.Text, -1) {
			match := tok.Text[loc[0]:loc[1]]
			inner := ""
			if len(loc) >= 4 && loc[2] >= 0 {
				inner = tok.Text[loc[2]:loc[3]]
			}
			kind, idx, ok := accept(match, inner)
			if !ok {
				continue
			}
			if loc[0] > last {
				out = append(out, Token{
					Kind:  TokenText,
					Text:  tok.Text[last:loc[0]],
					Start: tok.Start + last,
					End:   tok.Start + loc[0],
				})
			}
			out = append(out, Token{
				Kind:  kind,
				Text:  match,
				Index: idx,
				Start: tok.Start + loc[0],
				End:   tok.Start + loc[1],
			})
			last = loc[1]
		}
		if last < len(tok.Text) {
			out = append(out, Token{
				Kind:  TokenText,
				Text:  tok.Text[last:],
				Start: tok.Start + last,
				End:   tok.End,
			})
		}
	}
	return out
}

// isEscaped 判断 text[i] 前面是否紧跟反斜杠（只看同一个文本 token 内）
func isEscaped(text string, i int) bool {
	return i > 0 && text[i-1] == '\\'
}

// scanInline 在 token 流上逐字符查找 $...$。
//
// $$ token 在查找闭合 $ 时整体跳过，以原始文本计入公式内容；遇到 <math> 块时停止查找。
// 没有闭合 $ 时开头的 $ 原样保留；内容 trim 后为空时两个 $ 连同内容都保留为文本，
// 闭合的 $ 不再作为下一个公式的开头。
func scanInline(tokens []Token, res *Result) []Token {
	out := make([]Token, 0, len(tokens))

	var lit strings.Builder
	litStart, litEnd := -1, -1
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, Token{Kind: TokenText, Text: lit.String(), Start: litStart, End: litEnd})
		}
		lit.Reset()
		litStart, litEnd = -1, -1
	}
	emit := func(b byte, pos int) {
		if litStart < 0 {
			litStart = pos
		}
		lit.WriteByte(b)
		litEnd = pos + 1
	}

	ti, ci := 0, 0
	for ti < len(tokens) {
		tok := tokens[ti]
		if tok.Kind != TokenText {
			flush()
			out = append(out, tok)
			ti, ci = ti+1, 0
			continue
		}
		if ci >= len(tok.Text) {
			flush()
			ti, ci = ti+1, 0
			continue
		}

		c := tok.Text[ci]
		if c == '$' && !isEscaped(tok.Text, ci) {
			content, endTi, endCi, ok := findClosing(tokens, ti, ci)
			if ok && content == "" && endTi == ti {
				for ; ci <= endCi; ci++ {
					emit(tok.Text[ci], tok.Start+ci)
				}
				continue
			}
			if ok && content != "" {
				flush()
				res.Inline = append(res.Inline, content)
				closeTok := tokens[endTi]
				out = append(out, Token{
					Kind:  TokenInline,
					Text:  "$" + content + "$",
					Index: len(res.Inline) - 1,
					Start: tok.Start + ci,
					End:   closeTok.Start + endCi + 1,
				})
				if endTi != ti {
					ti = endTi
				}
				ci = endCi + 1
				continue
			}
		}
		emit(c, tok.Start+ci)
		ci++
	}
	flush()
	return out
}

// findClosing 从 tokens[ti].Text[ci]（开头的 $）之后查找第一个未转义的 $。
// 返回 trim 后的内容和闭合 $ 所在位置；遇到 <math> 块或找不到时 ok 为 false。
func findClosing(tokens []Token, ti, ci int) (content string, endTi, endCi int, ok bool) {
	var body strings.Builder
	j := ci + 1
	for k := ti; k < len(tokens); k++ {
		tok := tokens[k]
		if tok.Kind == TokenMathML {
			return "", 0, 0, false
		}
		if tok.Kind != TokenText {
			body.WriteString(tok.Text)
			continue
		}
		if k != ti {
			j = 0
		}
		for ; j < len(tok.Text); j++ {
			if tok.Text[j] == '$' && !isEscaped(tok.Text, j) {
				return strings.TrimSpace(body.String()), k, j, true
			}
			body.WriteByte(tok.Text[j])
		}
	}
	return "", 0, 0, false
}
