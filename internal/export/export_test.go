package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDocument 测试下载文档结构
func TestDocument(t *testing.T) {
	doc := Document(`<strong>x</strong>`, DefaultPage())

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="es">`,
		`<meta charset="utf-8">`,
		`<link rel="stylesheet" href="` + DefaultStylesheet + `">`,
		"<body>\n<strong>x</strong>\n</body>",
		"max-width: 800px",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("Document() missing %q", want)
		}
	}
}

// TestDocument_NoStylesheet 测试不引用样式表
func TestDocument_NoStylesheet(t *testing.T) {
	doc := Document("x", Page{Title: "T & U"})
	if strings.Contains(doc, "<link") {
		t.Error("Document() should not link a stylesheet")
	}
	if !strings.Contains(doc, "<title>T &amp; U</title>") {
		t.Error("title should be escaped")
	}
}

// TestFilename 测试带时间戳的文件名
func TestFilename(t *testing.T) {
	now := time.Date(2026, 1, 19, 10, 30, 5, 0, time.UTC)
	tests := []struct {
		prefix, ext, want string
	}{
		{DefaultPrefix, "html", "texto_matematico_20260119T103005.html"},
		{"", ".txt", "texto_matematico_20260119T103005.txt"},
		{"../notes x", "", "notes_x_20260119T103005.html"},
	}
	for _, tt := range tests {
		if got := Filename(tt.prefix, tt.ext, now); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.prefix, tt.ext, got, tt.want)
		}
	}

	local := now.In(time.FixedZone("UTC-3", -3*3600))
	if got := Filename("", "", local); got != "texto_matematico_20260119T103005.html" {
		t.Errorf("Filename() should use UTC, got %q", got)
	}
}

// TestWriteFile 测试文件写入
func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteFile(dir, "a.html", []byte("hi"))
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "hi" {
		t.Errorf("file content = %q, %v", data, err)
	}

	if _, err := WriteFile(dir, "../escape.html", nil); err == nil {
		t.Error("WriteFile() should reject paths")
	}
}
