// Package plaintext renders a segment list as sanitized plain text and
// records where each formula landed.
package plaintext

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/mathclean-go/internal/buffer"
	"github.com/riverfjs/mathclean-go/internal/latex"
	"github.com/riverfjs/mathclean-go/internal/types"
)

// Mode 决定公式以何种形式进入纯文本
type Mode int

const (
	// ModeSource 保留 LaTeX 源码
	ModeSource Mode = iota
	// ModeUnicode 降级为 Unicode 文本
	ModeUnicode
)

func (m Mode) String() string {
	if m == ModeUnicode {
		return "unicode"
	}
	return "source"
}

// Encoder 将 segment 列表编码为纯文本
type Encoder struct {
	Mode Mode
	// Markdown 为 true 时去掉文本中的 markdown 标记
	Markdown bool
	Parser   *latex.Parser
}

// stripPolicy 只保留文本。Policy 构建后可并发使用。
var stripPolicy = bluemonday.StripTagsPolicy()

// blockBreakRe 块级结束标签与 <br> 在剥离前换成换行
var blockBreakRe = regexp.MustCompile(`(?i)<br\s*/?>|</(?:p|div|li|tr|h[1-6]|blockquote|pre)\s*>`)

// StripHTML 去掉 HTML 标签并解码实体。
// 只有已知 HTML 元素名的标签会被去掉，x<y and y>z 这样的比较式保留原样。
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	s = blockBreakRe.ReplaceAllString(s, "\n")
	return html.UnescapeString(stripPolicy.Sanitize(escapeUnknownTags(s)))
}

// escapeUnknownTags 将元素名不是 HTML 元素的“标签”转义为文本
func escapeUnknownTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	consumed := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := z.Raw()
		consumed += len(raw)
		switch tt {
		case html.TextToken:
			b.WriteString(strings.ReplaceAll(string(raw), "<", "&lt;"))
			continue
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == 0 {
				b.WriteString(html.EscapeString(string(raw)))
				continue
			}
		}
		b.Write(raw)
	}
	// 末尾未闭合的 < 不会产生 token
	if consumed < len(s) {
		b.WriteString(html.EscapeString(s[consumed:]))
	}
	return b.String()
}

// mathMarker 整体做 markdown 处理时代替公式的占位字符（Unicode 私用区）
const mathMarker = '\uE000'

// Encode 返回纯文本以及每个公式在其中的位置（UTF-16）。
// 结果经过 NFC 规范化并去掉首尾空白。
//
// 开启 Markdown 时，全部文本连同公式占位符一起解析一次，
// 公式之间的运算符不会被当作列表或标题标记。
func (e *Encoder) Encode(segments []types.Segment) (string, []types.Span) {
	var (
		skeleton strings.Builder
		maths    []string
		index    []int
	)
	for i, seg := range segments {
		if !seg.IsMath() {
			skeleton.WriteString(strings.ReplaceAll(StripHTML(seg.Content), string(mathMarker), ""))
			continue
		}
		m := norm.NFC.String(e.math(seg.Fragment))
		if m == "" {
			continue
		}
		skeleton.WriteRune(mathMarker)
		maths = append(maths, m)
		index = append(index, i)
	}

	text := skeleton.String()
	if e.Markdown {
		text = Markdown(text)
	}
	text = norm.NFC.String(text)

	buf := buffer.New()
	spans := make([]types.Span, 0, len(maths))
	writeMath := func() {
		n := len(spans)
		spans = append(spans, types.Span{
			Segment: index[n],
			Offset:  buf.UTF16Offset(),
			Length:  buffer.UTF16Len(maths[n]),
		})
		buf.Write(maths[n])
	}
	for {
		k := strings.IndexRune(text, mathMarker)
		if k < 0 || len(spans) == len(maths) {
			break
		}
		buf.Write(text[:k])
		writeMath()
		text = text[k+len(string(mathMarker)):]
	}
	buf.Write(strings.ReplaceAll(text, string(mathMarker), ""))
	// markdown 丢掉的占位符（如链接地址里的公式）补在末尾
	for len(spans) < len(maths) {
		buf.Write(" ")
		writeMath()
	}

	return trim(buf.String(), spans)
}

func (e *Encoder) math(f *types.Fragment) string {
	if e.Mode != ModeUnicode {
		return f.Source
	}
	p := e.Parser
	if p == nil {
		p = latex.Default()
	}
	return p.Convert(f.Source)
}

// trim 去掉首尾空白并平移 span
func trim(s string, spans []types.Span) (string, []types.Span) {
	left := strings.TrimLeftFunc(s, unicode.IsSpace)
	shift := buffer.UTF16Len(s[:len(s)-len(left)])
	out := strings.TrimRightFunc(left, unicode.IsSpace)

	limit := buffer.UTF16Len(out)
	kept := spans[:0]
	for _, sp := range spans {
		sp.Offset -= shift
		if sp.Offset < 0 || sp.Offset+sp.Length > limit {
			continue
		}
		kept = append(kept, sp)
	}
	return out, kept
}
