package mathclean

import "github.com/riverfjs/mathclean-go/internal/buffer"

// CountText 计算文本长度（UTF-16 code units），与 MathSpans 的偏移单位一致
//
// 参数：
//   - text: 要计数的文本
//
// 返回：
//   - int: UTF-16 code units 数量
func CountText(text string) int {
	return buffer.UTF16Len(text)
}
