package latex

import (
	"strings"
)

// matrixDelims 矩阵类环境的左右定界符
var matrixDelims = map[string][2]string{
	"matrix":      {"", ""},
	"pmatrix":     {"(", ")"},
	"bmatrix":     {"[", "]"},
	"Bmatrix":     {"{", "}"},
	"vmatrix":     {"|", "|"},
	"Vmatrix":     {"‖", "‖"},
	"smallmatrix": {"", ""},
}

// lineEnvs 逐行输出、去掉对齐符 & 的环境
var lineEnvs = map[string]bool{
	"align": true, "align*": true, "aligned": true, "alignat": true,
	"gather": true, "gather*": true, "gathered": true,
	"equation": true, "equation*": true, "multline": true, "multline*": true,
	"split": true, "flalign": true, "flalign*": true, "eqnarray": true,
}

// environmentBody 返回 \begin{name} 之后到配对 \end{name} 之前的原文。
// 同名环境嵌套时按层级配对；缺少 \end 时取到末尾。
func environmentBody(src string, i int, name string) (string, int) {
	begin := `\begin{` + name + `}`
	end := `\end{` + name + `}`
	depth := 1
	for j := i; j < len(src); {
		switch {
		case strings.HasPrefix(src[j:], begin):
			depth++
			j += len(begin)
		case strings.HasPrefix(src[j:], end):
			depth--
			if depth == 0 {
				return src[i:j], j + len(end)
			}
			j += len(end)
		default:
			j++
		}
	}
	return src[i:], len(src)
}

func (p *Parser) environment(name, body string) string {
	if d, ok := matrixDelims[name]; ok {
		return p.matrix(body, d[0], d[1], name == "smallmatrix")
	}
	switch {
	case name == "cases" || name == "dcases":
		return p.cases(body)
	case name == "array":
		return p.matrix(skipColumnSpec(body), "", "", false)
	case lineEnvs[name]:
		return p.lines(body)
	}
	return p.Parse(body)
}

// splitRows 按 \\ 切分行，忽略嵌套 {} 内部的 \\
func splitRows(body string) []string {
	return splitTop(body, `\\`)
}

// splitCells 按 & 切分单元格，忽略嵌套 {} 与转义的 \&
func splitCells(row string) []string {
	return splitTop(row, "&")
}

func splitTop(s, sep string) []string {
	var parts []string
	depth, last := 0, 0
	for j := 0; j < len(s); {
		switch {
		case s[j] == '{':
			depth++
		case s[j] == '}':
			if depth > 0 {
				depth--
			}
		case depth == 0 && strings.HasPrefix(s[j:], sep):
			parts = append(parts, s[last:j])
			j += len(sep)
			last = j
			continue
		case s[j] == '\\':
			j += 2
			continue
		}
		j++
	}
	return append(parts, s[last:])
}

func (p *Parser) matrix(body, left, right string, compact bool) string {
	cellSep, rowSep := "  ", "\n"
	if compact {
		cellSep, rowSep = ", ", "; "
	}
	var rows []string
	for _, row := range splitRows(body) {
		if strings.TrimSpace(row) == "" {
			continue
		}
		var cells []string
		for _, cell := range splitCells(row) {
			cells = append(cells, strings.TrimSpace(p.Parse(cell)))
		}
		rows = append(rows, strings.Join(cells, cellSep))
	}
	return left + strings.Join(rows, rowSep) + right
}

func (p *Parser) cases(body string) string {
	var parts []string
	for _, row := range splitRows(body) {
		if strings.TrimSpace(row) == "" {
			continue
		}
		cells := splitCells(row)
		value := strings.TrimSpace(p.Parse(cells[0]))
		if len(cells) > 1 {
			if cond := strings.TrimSpace(p.Parse(strings.Join(cells[1:], " "))); cond != "" {
				value += ", " + cond
			}
		}
		parts = append(parts, value)
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return "{ " + parts[0]
	}
	lines := make([]string, len(parts))
	for k, part := range parts {
		brace := "⎨"
		switch k {
		case 0:
			brace = "⎧"
		case len(parts) - 1:
			brace = "⎩"
		}
		lines[k] = brace + " " + part
	}
	return strings.Join(lines, "\n")
}

func (p *Parser) lines(body string) string {
	var out []string
	for _, row := range splitRows(body) {
		if strings.TrimSpace(row) == "" {
			continue
		}
		cells := splitCells(row)
		for k := range cells {
			cells[k] = strings.TrimSpace(cells[k])
		}
		out = append(out, strings.TrimSpace(p.Parse(strings.Join(cells, " "))))
	}
	return strings.Join(out, "\n")
}

// skipColumnSpec 去掉 array 的列格式参数 {ccc}
func skipColumnSpec(body string) string {
	trimmed := strings.TrimLeft(body, " \t\n")
	if strings.HasPrefix(trimmed, "{") {
		_, next := rawGroup(trimmed, 0, '{', '}')
		return trimmed[next:]
	}
	return body
}
