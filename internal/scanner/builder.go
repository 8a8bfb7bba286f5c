package scanner

import (
	"github.com/riverfjs/mathclean-go/internal/types"
)

// Build turns a scan result into the ordered segment sequence.
//
// 文本 token 原样成为 text segment（不 trim），相邻文本合并，空文本丢弃；
// 公式 token 解析回对应的 Fragment。
func Build(res *Result) []types.Segment {
	segments := make([]types.Segment, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		if tok.Kind == TokenText {
			if tok.Text == "" {
				continue
			}
			if n := len(segments); n > 0 && segments[n-1].Kind == types.KindText && segments[n-1].End == tok.Start {
				segments[n-1].Content += tok.Text
				segments[n-1].End = tok.End
				continue
			}
			segments = append(segments, types.Segment{
				Kind:    types.KindText,
				Content: tok.Text,
				Start:   tok.Start,
				End:     tok.End,
			})
			continue
		}

		frag := resolve(res, tok)
		if frag == nil {
			continue
		}
		segments = append(segments, types.Segment{
			Kind:     types.KindMath,
			Fragment: frag,
			Start:    tok.Start,
			End:      tok.End,
		})
	}
	return segments
}

// resolve 将 token 映射回公式片段
func resolve(res *Result, tok Token) *types.Fragment {
	switch tok.Kind {
	case TokenMathML:
		if tok.Index >= len(res.MathML) {
			return nil
		}
		raw := res.MathML[tok.Index]
		return &types.Fragment{
			Source:   MathMLSource(raw),
			Display:  true,
			Original: raw,
			Origin:   types.OriginMathML,
		}
	case TokenDisplay:
		if tok.Index >= len(res.Display) {
			return nil
		}
		return &types.Fragment{
			Source:  res.Display[tok.Index],
			Display: true,
			Origin:  types.OriginDisplay,
		}
	case TokenInline:
		if tok.Index >= len(res.Inline) {
			return nil
		}
		src := res.Inline[tok.Index]
		return &types.Fragment{
			Source:  src,
			Display: IsDisplayEnvironment(src),
			Origin:  types.OriginInline,
		}
	case TokenBracketDisplay:
		if tok.Index >= len(res.BracketDisplay) {
			return nil
		}
		return &types.Fragment{
			Source:  res.BracketDisplay[tok.Index],
			Display: true,
			Origin:  types.OriginBracket,
		}
	case TokenBracketInline:
		if tok.Index >= len(res.BracketInline) {
			return nil
		}
		src := res.BracketInline[tok.Index]
		return &types.Fragment{
			Source:  src,
			Display: IsDisplayEnvironment(src),
			Origin:  types.OriginBracket,
		}
	}
	return nil
}

// Segments is Scan followed by Build.
func Segments(text string, opts Options) []types.Segment {
	return Build(Scan(text, opts))
}
