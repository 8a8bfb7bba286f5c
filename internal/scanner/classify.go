package scanner

import "regexp"

// displayEnvRe 匹配块级环境的 \begin{...}，只看开头标记，不检查配对
var displayEnvRe = regexp.MustCompile(`\\begin\{(pmatrix|bmatrix|vmatrix|Vmatrix|matrix|cases|align|equation|gather)`)

// IsDisplayEnvironment reports whether inline math source opens a block-level
// environment (matrices, cases, align, equation, gather) and should therefore
// render in display mode.
func IsDisplayEnvironment(source string) bool {
	return displayEnvRe.MatchString(source)
}
