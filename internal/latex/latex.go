package latex

import (
	"regexp"
	"sync"
)

var (
	defaultParser     *Parser
	defaultParserOnce sync.Once
)

// Default 返回共享的解析器实例
func Default() *Parser {
	defaultParserOnce.Do(func() {
		defaultParser = NewParser()
	})
	return defaultParser
}

// Convert 使用共享解析器转换 src
func Convert(src string) string {
	return Default().Convert(src)
}

// commandRe 匹配已知结构命令或符号表命令的开头
var commandRe = regexp.MustCompile(`\\(?:frac|dfrac|sqrt|begin|sum|int|prod|lim|left|mathbb|mathbf|alpha|beta|gamma|delta|theta|lambda|pi|sigma|omega|infty|cdot|times|leq|geq|neq|to|partial)\b`)

// ContainsCommands 判断文本是否含有常见 LaTeX 数学命令
func ContainsCommands(text string) bool {
	return commandRe.MatchString(text)
}
