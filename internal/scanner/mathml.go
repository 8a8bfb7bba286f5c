package scanner

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// texAnnotationRe 匹配 <annotation encoding="application/x-tex">...</annotation>
var texAnnotationRe = regexp.MustCompile(`(?is)<annotation\b[^>]*\bencoding\s*=\s*["']application/x-tex["'][^>]*>(.*?)</annotation\s*>`)

// TeXAnnotation returns the TeX source embedded in a MathML block, if any.
// Entities in the annotation body are unescaped.
func TeXAnnotation(block string) (string, bool) {
	m := texAnnotationRe.FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(html.UnescapeString(m[1])), true
}

// annotation 内容是公式的另一种表示，剥离标签时丢弃，避免重复
var skipMathMLTags = map[string]bool{
	"annotation":     true,
	"annotation-xml": true,
}

// StripMathML drops every tag from a MathML block and returns its text
// content. Whitespace-only text between tags is ignored, remaining runs of
// whitespace collapse to one space. Malformed markup is tolerated.
func StripMathML(block string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(block))
	var b strings.Builder
	depth := 0
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if skipMathMLTags[strings.ToLower(string(name))] {
				depth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if skipMathMLTags[strings.ToLower(string(name))] && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth > 0 {
				continue
			}
			t := string(tokenizer.Text())
			if strings.TrimSpace(t) == "" {
				continue
			}
			b.WriteString(t)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// MathMLSource picks the best LaTeX-ish source for a MathML block: the TeX
// annotation when present, otherwise the stripped text content.
func MathMLSource(block string) string {
	if tex, ok := TeXAnnotation(block); ok {
		return tex
	}
	return StripMathML(block)
}
