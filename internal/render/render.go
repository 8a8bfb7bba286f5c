// Package render defines the typesetting capability used by the output
// assemblers, and the engines that provide it.
package render

import (
	"fmt"

	"golang.org/x/net/html"
)

// Format 渲染输出格式
type Format int

const (
	// FormatHTML 用于预览的 HTML 片段
	FormatHTML Format = iota
	// FormatMathML 用于剪贴板/Word 的 MathML
	FormatMathML
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMathML:
		return "mathml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// DefaultErrorColor 错误标记的默认颜色
const DefaultErrorColor = "#cc0000"

// Options 单次渲染的参数
type Options struct {
	Display    bool
	ErrorColor string
	// Strict 为 true 时排版错误以 error 返回；否则引擎自行输出错误标记
	Strict bool
	// Trust 允许 \href、\url 一类命令，仅远程引擎使用
	Trust  bool
	Format Format
}

// Renderer 将 LaTeX 源码排版为 HTML 或 MathML
type Renderer interface {
	Render(source string, opts Options) (string, error)
}

// RendererFunc 让普通函数满足 Renderer
type RendererFunc func(source string, opts Options) (string, error)

// Render 调用 f
func (f RendererFunc) Render(source string, opts Options) (string, error) {
	return f(source, opts)
}

// ErrorMarkup 返回渲染失败时替代公式的行内标记：
// 原始源码转义后作为内容，错误信息作为 title。
func ErrorMarkup(source string, err error, color string) string {
	if color == "" {
		color = DefaultErrorColor
	}
	msg := "render failed"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf(`<span class="math-error" style="color:%s" title="%s">%s</span>`,
		html.EscapeString(color), html.EscapeString(msg), html.EscapeString(source))
}

// wrapHTML 将排版结果包进行内 span 或块级 div
func wrapHTML(markup string, display bool) string {
	if display {
		return `<div class="math math-display">` + markup + `</div>`
	}
	return `<span class="math math-inline">` + markup + `</span>`
}
