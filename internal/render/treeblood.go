package render

import (
	"fmt"

	"github.com/wyatt915/treeblood"
)

// TreeBlood 使用 treeblood 将 LaTeX 排版为 MathML
type TreeBlood struct {
	// Macros 预定义宏，如 {"R": `\mathbb{R}`}
	Macros map[string]string
}

// NewTreeBlood 创建 TreeBlood 引擎
func NewTreeBlood(macros map[string]string) *TreeBlood {
	return &TreeBlood{Macros: macros}
}

// Render 实现 Renderer。每次调用新建 treeblood 文档，引擎本身无共享状态。
func (t *TreeBlood) Render(source string, opts Options) (string, error) {
	doc := treeblood.NewDocument(t.Macros, false)

	var (
		mml string
		err error
	)
	if opts.Display {
		mml, err = doc.DisplayStyle(source)
	} else {
		mml, err = doc.TextStyle(source)
	}
	if err != nil {
		if opts.Strict {
			return "", fmt.Errorf("treeblood: %w", err)
		}
		return ErrorMarkup(source, err, opts.ErrorColor), nil
	}

	if opts.Format == FormatMathML {
		return mml, nil
	}
	return wrapHTML(mml, opts.Display), nil
}
