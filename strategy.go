package mathclean

import (
	"strings"

	"github.com/riverfjs/mathclean-go/internal/assemble"
	"github.com/riverfjs/mathclean-go/internal/format"
	"github.com/riverfjs/mathclean-go/internal/plaintext"
	"github.com/riverfjs/mathclean-go/internal/render"
	"github.com/riverfjs/mathclean-go/internal/scanner"
)

const (
	// StrategyRich 渲染公式的完整策略
	StrategyRich = "rich"
	// StrategyPlain 只输出纯文本的策略
	StrategyPlain = "plain"
)

// Strategy 将输入转换为 Result
type Strategy interface {
	Process(input string) (*Result, error)
}

// RichStrategy 扫描输入，生成预览 HTML、剪贴板文档以及纯文本
type RichStrategy struct {
	typesetter assemble.Typesetter
	config     *Config
}

// NewRichStrategy 用排版引擎 r 创建 RichStrategy。config 为 nil 时使用默认配置。
func NewRichStrategy(r render.Renderer, config *Config) *RichStrategy {
	if config == nil {
		config = DefaultConfig()
	}
	return &RichStrategy{
		typesetter: config.adapter(r),
		config:     config,
	}
}

// Process 处理 input
func (s *RichStrategy) Process(input string) (*Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	segments := scanner.Segments(input, scanner.Options{Brackets: s.config.Brackets})

	enc := &plaintext.Encoder{Mode: plaintext.ModeSource, Markdown: s.config.StripMarkdown}
	plain, spans := enc.Encode(segments)

	return &Result{
		PreviewHTML:   assemble.Preview(segments, s.typesetter),
		ClipboardHTML: assemble.Word(segments, s.typesetter, s.config.document()),
		PlainText:     plain,
		Segments:      segments,
		MathSpans:     spans,
		Strategy:      StrategyRich,
	}, nil
}

// PlainStrategy 不调用排版引擎，公式降级为 Unicode 文本
type PlainStrategy struct {
	config *Config
}

// NewPlainStrategy 创建 PlainStrategy。config 为 nil 时使用默认配置。
func NewPlainStrategy(config *Config) *PlainStrategy {
	if config == nil {
		config = DefaultConfig()
	}
	return &PlainStrategy{config: config}
}

// Process 处理 input
func (s *PlainStrategy) Process(input string) (*Result, error) {
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	segments := scanner.Segments(input, scanner.Options{Brackets: s.config.Brackets})

	enc := &plaintext.Encoder{Mode: plaintext.ModeUnicode, Markdown: s.config.StripMarkdown}
	plain, spans := enc.Encode(segments)

	preview := strings.ReplaceAll(format.Escape(plain), "\n", "<br>\n")
	return &Result{
		PreviewHTML:   preview,
		ClipboardHTML: assemble.WrapWord(preview, s.config.document()),
		PlainText:     plain,
		Segments:      segments,
		MathSpans:     spans,
		Strategy:      StrategyPlain,
	}, nil
}
