package types

// Kind 区分 segment 的类型
type Kind int

const (
	// KindText 普通文本
	KindText Kind = iota
	// KindMath 数学公式
	KindMath
)

// String returns the JSON-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindMath:
		return "math"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Origin 记录公式片段来自哪种定界符
type Origin int

const (
	OriginInline Origin = iota
	OriginDisplay
	OriginMathML
	OriginBracket
)

// String returns the name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginInline:
		return "inline"
	case OriginDisplay:
		return "display"
	case OriginMathML:
		return "mathml"
	case OriginBracket:
		return "bracket"
	default:
		return "unknown"
	}
}

// Fragment 表示一个提取出的公式片段
//
// Original 仅在片段来自 <math>...</math> 块时非空，保存原始 MathML，
// 用于剪贴板输出时原样写回。
type Fragment struct {
	Source   string `json:"source"`
	Display  bool   `json:"display"`
	Original string `json:"original,omitempty"`
	Origin   Origin `json:"-"`
}

// HasOriginal reports whether the fragment carries its original MathML block.
func (f *Fragment) HasOriginal() bool {
	return f != nil && f.Original != ""
}

// Segment 文档中的一个有序单元：文本或公式
type Segment struct {
	Kind     Kind      `json:"kind"`
	Content  string    `json:"content,omitempty"`
	Fragment *Fragment `json:"fragment,omitempty"`
	Start    int       `json:"start"` // 在原始输入中的起始字节
	End      int       `json:"end"`   // 在原始输入中的结束字节
}

// IsMath reports whether the segment is a math segment.
func (s Segment) IsMath() bool {
	return s.Kind == KindMath && s.Fragment != nil
}

// Source returns the logical content of the segment: text verbatim, math by its source.
func (s Segment) Source() string {
	if s.IsMath() {
		return s.Fragment.Source
	}
	return s.Content
}

// Span 记录公式在纯文本输出中的位置（UTF-16 code units）
type Span struct {
	Segment int `json:"segment"`
	Offset  int `json:"offset"`
	Length  int `json:"length"`
}
