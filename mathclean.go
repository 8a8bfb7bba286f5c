// Package mathclean 清理从网页或文档转换工具复制来的数学文本
//
// 输入是混合了 HTML、MathML 和 LaTeX 定界符的文本。包会扫描出
// <math>...</math> 块、$$...$$ 行间公式和 $...$ 行内公式，
// 得到有序的 segment 列表，再从同一个列表生成多种输出。
//
// 核心功能：
//   - 识别公式定界符，正确处理转义的 \$ 和不配对的 $
//   - 判断公式以行间还是行内方式显示
//   - 生成预览 HTML、可粘贴到 Word 的剪贴板 HTML（MathML）和纯文本
//   - 单个公式渲染失败时以错误标记替代，不影响其余内容
//   - 纯文本策略：不调用排版引擎，LaTeX 降级为 Unicode
//
// 主要 API：
//   - Process(): 处理输入，返回 *Result
//   - Segments(): 只做扫描，返回 segment 列表
//   - Copy() / CopyAsync(): 写入剪贴板，失败时降级为纯文本
//   - Export(): 保存为独立的 HTML 文件
//
// 示例：
//
//	res, err := mathclean.Process(input)
//	if errors.Is(err, mathclean.ErrNoContent) {
//	    // 没有可提取的内容
//	}
//	fmt.Println(res.PreviewHTML)
//
//	// 纯文本策略
//	res, err = mathclean.Process(input, mathclean.WithPlainMode(true))
package mathclean

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riverfjs/mathclean-go/internal/latex"
	"github.com/riverfjs/mathclean-go/internal/scanner"
	"github.com/riverfjs/mathclean-go/internal/textenc"
)

var (
	// ErrEmptyInput 输入为空或只有空白，处理流程不会运行
	ErrEmptyInput = errors.New("empty input")
	// ErrNoContent 处理完成但纯文本为空。同时返回部分结果。
	ErrNoContent = errors.New("no extractable content")
)

// Process 处理输入文本
//
// 输入先去掉首尾空白；为空时返回 ErrEmptyInput。
// 策略由 WithStrategy / WithPlainMode 选择，默认使用 RichStrategy。
// 纯文本结果为空时返回结果和 ErrNoContent。
func Process(input string, opts ...Option) (*Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	options := applyOptions(opts...)
	res, err := options.strategy().Process(input)
	if err != nil {
		return res, fmt.Errorf("failed to process input: %w", err)
	}
	if res == nil {
		return nil, ErrNoContent
	}
	if strings.TrimSpace(res.PlainText) == "" {
		return res, ErrNoContent
	}
	return res, nil
}

// Segments 扫描输入并返回 segment 列表，不做渲染
func Segments(input string, opts ...Option) []Segment {
	options := applyOptions(opts...)
	return scanner.Segments(input, scanner.Options{Brackets: options.Config.Brackets})
}

// DetectMath 判断文本是否像是含有公式，用于粘贴时提示
func DetectMath(input string) bool {
	for _, marker := range []string{"<math", "$", `\begin{`, `\(`, `\[`} {
		if strings.Contains(input, marker) {
			return true
		}
	}
	return latex.ContainsCommands(input)
}

// Encoding 输入文本的编码
type Encoding = textenc.Encoding

// DecodeInput 将上传或粘贴的字节解码为 UTF-8（NFC）
func DecodeInput(data []byte) (string, Encoding, error) {
	text, enc, err := textenc.Decode(data)
	if err != nil {
		return "", enc, fmt.Errorf("failed to decode input: %w", err)
	}
	return text, enc, nil
}
