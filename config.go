package mathclean

import (
	"sync"

	"github.com/riverfjs/mathclean-go/internal/assemble"
	"github.com/riverfjs/mathclean-go/internal/export"
	"github.com/riverfjs/mathclean-go/internal/render"
)

// Config 处理与输出的配置
type Config struct {
	// ErrorColor 渲染失败时错误标记的颜色
	ErrorColor string
	// Strict 为 true 时排版引擎的语法错误交给 Adapter 处理
	Strict bool
	// Trust 允许 \href 等命令（仅远程引擎）
	Trust bool

	// FontFamily / FontSize 剪贴板文档的字体
	FontFamily string
	FontSize   string

	// Stylesheet 下载文档引用的公式样式表
	Stylesheet string
	// FilenamePrefix 下载文件名前缀
	FilenamePrefix string
	// Lang / Title 下载文档的语言与标题
	Lang  string
	Title string

	// Brackets 启用 \[...\] 与 \(...\) 定界符
	Brackets bool
	// StripMarkdown 纯文本输出时去掉 markdown 标记
	StripMarkdown bool
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
// The returned value is shared and must not be modified; copy it first.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		page := export.DefaultPage()
		defaultConfig = &Config{
			ErrorColor:     render.DefaultErrorColor,
			FontFamily:     assemble.DefaultDocument.FontFamily,
			FontSize:       assemble.DefaultDocument.FontSize,
			Stylesheet:     page.Stylesheet,
			FilenamePrefix: export.DefaultPrefix,
			Lang:           page.Lang,
			Title:          page.Title,
			StripMarkdown:  true,
		}
	})
	return defaultConfig
}

// document 剪贴板文档样式
func (c *Config) document() assemble.Document {
	return assemble.Document{FontFamily: c.FontFamily, FontSize: c.FontSize}
}

// page 下载文档页面设置
func (c *Config) page() export.Page {
	return export.Page{
		Lang:       c.Lang,
		Title:      c.Title,
		Stylesheet: c.Stylesheet,
	}
}

// adapter 根据配置包装渲染引擎
func (c *Config) adapter(r render.Renderer) *render.Adapter {
	a := render.NewAdapter(r, Logger)
	if c.ErrorColor != "" {
		a.ErrorColor = c.ErrorColor
	}
	a.Strict = c.Strict
	a.Trust = c.Trust
	return a
}
