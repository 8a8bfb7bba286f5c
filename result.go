package mathclean

import (
	"github.com/riverfjs/mathclean-go/internal/types"
)

// 导出类型别名
type (
	Segment  = types.Segment
	Fragment = types.Fragment
	Span     = types.Span
	Kind     = types.Kind
	Origin   = types.Origin
)

const (
	KindText = types.KindText
	KindMath = types.KindMath
)

// Result 一次处理的全部输出。每次调用返回新的 Result，不保留历史。
type Result struct {
	// PreviewHTML 预览 HTML，公式以 HTML 渲染
	PreviewHTML string `json:"preview_html"`
	// ClipboardHTML 剪贴板/Word 文档，公式以 MathML 表示
	ClipboardHTML string `json:"clipboard_html"`
	// PlainText 纯文本表示
	PlainText string `json:"plain_text"`
	// Segments 有序的文本/公式单元，偏移相对于 trim 后的输入
	Segments []Segment `json:"segments"`
	// MathSpans 公式在 PlainText 中的位置（UTF-16 code units）
	MathSpans []Span `json:"math_spans"`
	// Strategy 产生结果的策略名
	Strategy string `json:"strategy"`
}

// MathCount 返回公式 segment 的数量
func (r *Result) MathCount() int {
	n := 0
	for _, seg := range r.Segments {
		if seg.IsMath() {
			n++
		}
	}
	return n
}

// Fragments 按顺序返回所有公式片段
func (r *Result) Fragments() []*Fragment {
	var out []*Fragment
	for _, seg := range r.Segments {
		if seg.IsMath() {
			out = append(out, seg.Fragment)
		}
	}
	return out
}
