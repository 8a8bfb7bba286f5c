// Package assemble builds the preview and clipboard documents from a
// segment list.
package assemble

import (
	"fmt"
	"strings"

	"github.com/riverfjs/mathclean-go/internal/format"
	"github.com/riverfjs/mathclean-go/internal/render"
	"github.com/riverfjs/mathclean-go/internal/types"
)

// Typesetter 渲染单个公式，不返回错误（由 render.Adapter 实现）
type Typesetter interface {
	Render(source string, display bool, f render.Format) string
}

// Document Word/剪贴板文档的样式
type Document struct {
	FontFamily string
	FontSize   string
}

// DefaultDocument 与 Word 默认公式字体一致
var DefaultDocument = Document{
	FontFamily: "Cambria,serif",
	FontSize:   "12pt",
}

// Preview 生成预览 HTML：文本经格式化，公式以 HTML 格式渲染
func Preview(segments []types.Segment, ts Typesetter) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.IsMath() {
			b.WriteString(ts.Render(seg.Fragment.Source, seg.Fragment.Display, render.FormatHTML))
			continue
		}
		b.WriteString(format.Text(seg.Content))
	}
	return b.String()
}

// WordBody 生成剪贴板 HTML 的 body 内容。
// 来自 MathML 的公式原样输出原始 <math> 块，其余以 MathML 格式渲染。
func WordBody(segments []types.Segment, ts Typesetter) string {
	var b strings.Builder
	for _, seg := range segments {
		if !seg.IsMath() {
			b.WriteString(format.Text(seg.Content))
			continue
		}
		if seg.Fragment.HasOriginal() {
			b.WriteString(seg.Fragment.Original)
			continue
		}
		b.WriteString(ts.Render(seg.Fragment.Source, seg.Fragment.Display, render.FormatMathML))
	}
	return b.String()
}

// Word 生成完整的剪贴板 HTML 文档
func Word(segments []types.Segment, ts Typesetter, doc Document) string {
	return WrapWord(WordBody(segments, ts), doc)
}

// WrapWord 将 body 包进 Word 可识别的最小 HTML 文档
func WrapWord(body string, doc Document) string {
	if doc.FontFamily == "" {
		doc.FontFamily = DefaultDocument.FontFamily
	}
	if doc.FontSize == "" {
		doc.FontSize = DefaultDocument.FontSize
	}
	return fmt.Sprintf(`<html><head><meta charset="utf-8"></head><body style="font-family:%s;font-size:%s;">%s</body></html>`,
		doc.FontFamily, doc.FontSize, body)
}
