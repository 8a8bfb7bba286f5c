package plaintext

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/mathclean-go/internal/buffer"
)

// markdownOptions 与 GitHub 的 markdown 一致（删除线、任务列表、表格）
var markdownOptions = []goldmark.Option{
	goldmark.WithExtensions(extension.GFM),
}

// Markdown 去掉文本中的 markdown 标记，只保留文字。
// 首尾空白原样保留，便于与相邻公式拼接。
func Markdown(s string) string {
	core := strings.TrimSpace(s)
	if core == "" {
		return s
	}
	lead := s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
	trail := s[len(strings.TrimRightFunc(s, unicode.IsSpace)):]

	source := []byte(core)
	md := goldmark.New(markdownOptions...)
	doc := md.Parser().Parse(text.NewReader(source))

	w := newWalker(source)
	_ = ast.Walk(doc, w.walk)
	return lead + strings.Trim(w.buf.String(), "\n") + trail
}

// walker 遍历 goldmark AST，输出去掉标记的文本
type walker struct {
	buf    *buffer.TextBuffer
	source []byte
	// lists 每层列表的下一个序号，无序列表为 -1
	lists []int
	cells int
}

func newWalker(source []byte) *walker {
	return &walker{
		buf:    buffer.New(),
		source: source,
	}
}

func (w *walker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.Heading, *ast.Blockquote:
		if entering {
			w.startBlock(n)
		}

	case *ast.List:
		if entering {
			w.startBlock(n)
			next := -1
			if n.IsOrdered() {
				next = n.Start
			}
			w.lists = append(w.lists, next)
		} else {
			w.lists = w.lists[:len(w.lists)-1]
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.buf.Write("[x] ")
			} else {
				w.buf.Write("[ ] ")
			}
		}

	case *ast.Text:
		if entering {
			w.buf.Write(string(util.UnescapePunctuations(n.Segment.Value(w.source))))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.buf.Write("\n")
			}
		}

	case *ast.String:
		if entering {
			w.buf.Write(string(n.Value))
		}

	case *ast.AutoLink:
		if entering {
			w.buf.Write(string(n.URL(w.source)))
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		// 输入里的 HTML 已经剥离，剩下的尖括号是正文
		if entering {
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				w.buf.Write(string(seg.Value(w.source)))
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.HTMLBlock:
		if entering {
			w.startBlock(n)
			w.writeLines(n)
			if n.HasClosure() {
				w.buf.Write(string(n.ClosureLine.Value(w.source)))
			}
			return ast.WalkSkipChildren, nil
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.startBlock(n)
			w.writeLines(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.startBlock(n)
			w.buf.Write("---")
		}

	case *east.TableHeader, *east.TableRow:
		if entering {
			w.buf.EnsureNewlines(1)
			w.cells = 0
		}

	case *east.TableCell:
		if entering {
			if w.cells > 0 {
				w.buf.Write("\t")
			}
			w.cells++
		}
	}
	return ast.WalkContinue, nil
}

// startBlock 块之间空一行；列表内只换行。列表项的第一个块紧跟项目符号。
func (w *walker) startBlock(n ast.Node) {
	if _, ok := n.Parent().(*ast.ListItem); ok && n.PreviousSibling() == nil {
		return
	}
	if len(w.lists) > 0 {
		w.buf.EnsureNewlines(1)
		return
	}
	w.buf.EnsureNewlines(2)
}

func (w *walker) onStartItem() {
	w.buf.EnsureNewlines(1)
	depth := len(w.lists) - 1
	if depth < 0 {
		return
	}
	w.buf.Write(strings.Repeat("  ", depth))
	if next := w.lists[depth]; next >= 0 {
		w.buf.Write(fmt.Sprintf("%d. ", next))
		w.lists[depth]++
	} else {
		w.buf.Write("• ")
	}
}

// writeLines 原样写出代码块、HTML 块的各行，去掉最后的换行
func (w *walker) writeLines(n ast.Node) {
	lines := n.Lines()
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.source))
	}
	w.buf.Write(strings.TrimRight(b.String(), "\n"))
}
