package render

import (
	"golang.org/x/net/html"

	"github.com/riverfjs/mathclean-go/internal/latex"
)

// Unicode 将 LaTeX 降级为 Unicode 文本，不依赖排版引擎
type Unicode struct {
	Parser *latex.Parser
}

// NewUnicode 创建 Unicode 引擎
func NewUnicode() *Unicode {
	return &Unicode{Parser: latex.Default()}
}

// Render 实现 Renderer
func (u *Unicode) Render(source string, opts Options) (string, error) {
	p := u.Parser
	if p == nil {
		p = latex.Default()
	}
	text := html.EscapeString(p.Convert(source))

	if opts.Format == FormatMathML {
		if opts.Display {
			return `<math display="block"><mtext>` + text + `</mtext></math>`, nil
		}
		return `<math><mtext>` + text + `</mtext></math>`, nil
	}
	return wrapHTML(text, opts.Display), nil
}
