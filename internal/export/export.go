// Package export produces the standalone HTML document offered for
// download and the files it is saved to.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// DefaultStylesheet 预览 HTML 依赖的公式样式表
const DefaultStylesheet = "https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.css"

// Page 下载文档的页面设置
type Page struct {
	Lang       string
	Title      string
	Stylesheet string
	FontFamily string
	FontSize   string
}

// DefaultPage 返回默认页面设置
func DefaultPage() Page {
	return Page{
		Lang:       "es",
		Title:      "Texto Matemático Limpio",
		Stylesheet: DefaultStylesheet,
		FontFamily: "Cambria, 'Times New Roman', serif",
		FontSize:   "12pt",
	}
}

const documentLayout = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
%s<style>
body { font-family: %s; font-size: %s; line-height: 1.8; max-width: 800px; margin: 2rem auto; padding: 0 1rem; color: #222; }
.bullet { font-weight: bold; }
strong { font-weight: 700; }
.math-error { font-family: monospace; }
</style>
</head>
<body>
%s
</body>
</html>`

// Document 将预览 HTML 包装为独立页面。body 按原样嵌入。
func Document(body string, page Page) string {
	def := DefaultPage()
	if page.Lang == "" {
		page.Lang = def.Lang
	}
	if page.Title == "" {
		page.Title = def.Title
	}
	if page.FontFamily == "" {
		page.FontFamily = def.FontFamily
	}
	if page.FontSize == "" {
		page.FontSize = def.FontSize
	}

	link := ""
	if page.Stylesheet != "" {
		link = fmt.Sprintf("<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(page.Stylesheet))
	}
	return fmt.Sprintf(documentLayout,
		html.EscapeString(page.Lang), html.EscapeString(page.Title), link,
		page.FontFamily, page.FontSize, body)
}

// DefaultPrefix 下载文件名前缀
const DefaultPrefix = "texto_matematico"

var unsafeNameRe = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)

// Filename 生成带时间戳的文件名，如 texto_matematico_20260119T103000.html。
// 时间取 UTC。
func Filename(prefix, ext string, now time.Time) string {
	prefix = strings.Trim(unsafeNameRe.ReplaceAllString(prefix, "_"), "_")
	if prefix == "" {
		prefix = DefaultPrefix
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "html"
	}
	return fmt.Sprintf("%s_%s.%s", prefix, now.UTC().Format("20060102T150405"), ext)
}

// WriteFile 将 data 写入 dir/name，返回完整路径。目录不存在时创建。
func WriteFile(dir, name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
