package render

import (
	"fmt"
	"log"
)

// Adapter 包装一个 Renderer，保证单个公式的失败不会影响整体输出
type Adapter struct {
	Renderer   Renderer
	ErrorColor string
	Strict     bool
	Trust      bool
	// Logger 为 nil 时不记录
	Logger *log.Logger
}

// NewAdapter 使用默认参数创建 Adapter
func NewAdapter(r Renderer, logger *log.Logger) *Adapter {
	return &Adapter{
		Renderer:   r,
		ErrorColor: DefaultErrorColor,
		Logger:     logger,
	}
}

// Render 排版 source。失败（返回错误或 panic）时返回 ErrorMarkup，从不失败。
func (a *Adapter) Render(source string, display bool, format Format) (out string) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("renderer panic: %v", r)
			a.logf("render %q: %v", source, err)
			out = ErrorMarkup(source, err, a.ErrorColor)
		}
	}()

	if a.Renderer == nil {
		return ErrorMarkup(source, fmt.Errorf("no renderer configured"), a.ErrorColor)
	}

	rendered, err := a.Renderer.Render(source, Options{
		Display:    display,
		ErrorColor: a.errorColor(),
		Strict:     a.Strict,
		Trust:      a.Trust,
		Format:     format,
	})
	if err != nil {
		a.logf("render %q (%s): %v", source, format, err)
		return ErrorMarkup(source, err, a.ErrorColor)
	}
	return rendered
}

func (a *Adapter) errorColor() string {
	if a.ErrorColor == "" {
		return DefaultErrorColor
	}
	return a.ErrorColor
}

func (a *Adapter) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}
