package latex

// LatexSymbols 控制序列到 Unicode 的直接映射
var LatexSymbols = map[string]string{
	// 小写希腊字母
	`\alpha`: "α", `\beta`: "β", `\gamma`: "γ", `\delta`: "δ", `\epsilon`: "ϵ",
	`\varepsilon`: "ε", `\zeta`: "ζ", `\eta`: "η", `\theta`: "θ", `\vartheta`: "ϑ",
	`\iota`: "ι", `\kappa`: "κ", `\lambda`: "λ", `\mu`: "μ", `\nu`: "ν",
	`\xi`: "ξ", `\pi`: "π", `\varpi`: "ϖ", `\rho`: "ρ", `\varrho`: "ϱ",
	`\sigma`: "σ", `\varsigma`: "ς", `\tau`: "τ", `\upsilon`: "υ", `\phi`: "ϕ",
	`\varphi`: "φ", `\chi`: "χ", `\psi`: "ψ", `\omega`: "ω",

	// 大写希腊字母
	`\Gamma`: "Γ", `\Delta`: "Δ", `\Theta`: "Θ", `\Lambda`: "Λ", `\Xi`: "Ξ",
	`\Pi`: "Π", `\Sigma`: "Σ", `\Upsilon`: "Υ", `\Phi`: "Φ", `\Psi`: "Ψ",
	`\Omega`: "Ω",

	// 二元运算
	`\pm`: "±", `\mp`: "∓", `\times`: "×", `\div`: "÷", `\cdot`: "·",
	`\ast`: "∗", `\star`: "⋆", `\circ`: "∘", `\bullet`: "•", `\oplus`: "⊕",
	`\ominus`: "⊖", `\otimes`: "⊗", `\oslash`: "⊘", `\odot`: "⊙", `\cap`: "∩",
	`\cup`: "∪", `\uplus`: "⊎", `\sqcap`: "⊓", `\sqcup`: "⊔", `\vee`: "∨",
	`\wedge`: "∧", `\lor`: "∨", `\land`: "∧", `\setminus`: "∖", `\wr`: "≀",
	`\dagger`: "†", `\ddagger`: "‡", `\amalg`: "⨿",

	// 关系
	`\leq`: "≤", `\le`: "≤", `\geq`: "≥", `\ge`: "≥", `\neq`: "≠", `\ne`: "≠",
	`\equiv`: "≡", `\approx`: "≈", `\sim`: "∼", `\simeq`: "≃", `\cong`: "≅",
	`\propto`: "∝", `\ll`: "≪", `\gg`: "≫", `\subset`: "⊂", `\supset`: "⊃",
	`\subseteq`: "⊆", `\supseteq`: "⊇", `\in`: "∈", `\notin`: "∉", `\ni`: "∋",
	`\mid`: "∣", `\parallel`: "∥", `\perp`: "⊥", `\vdash`: "⊢", `\dashv`: "⊣",
	`\models`: "⊨", `\prec`: "≺", `\succ`: "≻", `\preceq`: "⪯", `\succeq`: "⪰",
	`\asymp`: "≍", `\doteq`: "≐", `\leqslant`: "⩽", `\geqslant`: "⩾",
	`\lesssim`: "≲", `\gtrsim`: "≳", `\coloneqq`: "≔",

	// 箭头
	`\to`: "→", `\rightarrow`: "→", `\leftarrow`: "←", `\gets`: "←",
	`\leftrightarrow`: "↔", `\Rightarrow`: "⇒", `\Leftarrow`: "⇐",
	`\Leftrightarrow`: "⇔", `\implies`: "⟹", `\impliedby`: "⟸", `\iff`: "⟺",
	`\mapsto`: "↦", `\longrightarrow`: "⟶", `\longleftarrow`: "⟵",
	`\Longrightarrow`: "⟹", `\Longleftarrow`: "⟸", `\longmapsto`: "⟼",
	`\uparrow`: "↑", `\downarrow`: "↓", `\updownarrow`: "↕", `\Uparrow`: "⇑",
	`\Downarrow`: "⇓", `\nearrow`: "↗", `\searrow`: "↘", `\nwarrow`: "↖",
	`\swarrow`: "↙", `\hookrightarrow`: "↪", `\hookleftarrow`: "↩",
	`\rightleftharpoons`: "⇌",

	// 大型运算符
	`\sum`: "∑", `\prod`: "∏", `\coprod`: "∐", `\int`: "∫", `\iint`: "∬",
	`\iiint`: "∭", `\oint`: "∮", `\bigcup`: "⋃", `\bigcap`: "⋂",
	`\bigoplus`: "⨁", `\bigotimes`: "⨂", `\bigvee`: "⋁", `\bigwedge`: "⋀",

	// 杂项符号
	`\infty`: "∞", `\partial`: "∂", `\nabla`: "∇", `\forall`: "∀", `\exists`: "∃",
	`\nexists`: "∄", `\emptyset`: "∅", `\varnothing`: "∅", `\neg`: "¬", `\lnot`: "¬",
	`\angle`: "∠", `\triangle`: "△", `\square`: "□", `\Box`: "□", `\diamond`: "⋄",
	`\aleph`: "ℵ", `\hbar`: "ℏ", `\ell`: "ℓ", `\wp`: "℘", `\Re`: "ℜ", `\Im`: "ℑ",
	`\prime`: "′", `\degree`: "°", `\therefore`: "∴", `\because`: "∵",
	`\ldots`: "…", `\cdots`: "⋯", `\vdots`: "⋮", `\ddots`: "⋱", `\dots`: "…",
	`\top`: "⊤", `\bot`: "⊥", `\checkmark`: "✓", `\clubsuit`: "♣",
	`\diamondsuit`: "♢", `\heartsuit`: "♡", `\spadesuit`: "♠",

	// 定界符
	`\langle`: "⟨", `\rangle`: "⟩", `\lceil`: "⌈", `\rceil`: "⌉", `\lfloor`: "⌊",
	`\rfloor`: "⌋", `\lvert`: "|", `\rvert`: "|", `\lVert`: "‖", `\rVert`: "‖",
	`\vert`: "|", `\Vert`: "‖", `\|`: "‖", `\{`: "{", `\}`: "}", `\lbrace`: "{",
	`\rbrace`: "}", `\backslash`: "\\",

	// 函数名
	`\sin`: "sin", `\cos`: "cos", `\tan`: "tan", `\cot`: "cot", `\sec`: "sec",
	`\csc`: "csc", `\arcsin`: "arcsin", `\arccos`: "arccos", `\arctan`: "arctan",
	`\sinh`: "sinh", `\cosh`: "cosh", `\tanh`: "tanh", `\log`: "log", `\ln`: "ln",
	`\lg`: "lg", `\exp`: "exp", `\lim`: "lim", `\limsup`: "lim sup",
	`\liminf`: "lim inf", `\max`: "max", `\min`: "min", `\sup`: "sup",
	`\inf`: "inf", `\det`: "det", `\dim`: "dim", `\ker`: "ker", `\deg`: "deg",
	`\gcd`: "gcd", `\arg`: "arg", `\Pr`: "Pr", `\hom`: "hom", `\bmod`: " mod ",

	// 空白与转义
	`\,`: " ", `\:`: " ", `\;`: " ", `\!`: "", `\ `: " ", `\quad`: "  ",
	`\qquad`: "    ", `\enspace`: " ", `\%`: "%", `\$`: "$", `\&`: "&",
	`\#`: "#", `\_`: "_", `\\`: "\n", `\displaystyle`: "", `\textstyle`: "",
	`\limits`: "", `\nolimits`: "", `\big`: "", `\Big`: "", `\bigg`: "",
	`\Bigg`: "",
}

// NotMap 否定形式
var NotMap = map[string]string{
	"=": "≠", "<": "≮", ">": "≯", "∈": "∉", "∋": "∌", "⊂": "⊄", "⊃": "⊅",
	"⊆": "⊈", "⊇": "⊉", "≤": "≰", "≥": "≱", "≡": "≢", "∼": "≁", "≈": "≉",
	"≃": "≄", "≅": "≇", "∃": "∄", "|": "∤", "∣": "∤", "∥": "∦", "≺": "⊀",
	"≻": "⊁",
}

// CombiningType 组合字符的附着方式
type CombiningType int

const (
	// FirstChar 附在第一个字符上
	FirstChar CombiningType = iota
	// LastChar 附在末尾
	LastChar
	// AllChars 附在每个字符上
	AllChars
)

// CombiningSample 组合字符定义
type CombiningSample struct {
	Char rune
	Type CombiningType
}

// Combining 重音类命令
var Combining = map[string]CombiningSample{
	`\hat`:       {'̂', FirstChar},
	`\widehat`:   {'̂', FirstChar},
	`\check`:     {'̌', FirstChar},
	`\tilde`:     {'̃', FirstChar},
	`\widetilde`: {'̃', FirstChar},
	`\acute`:     {'́', FirstChar},
	`\grave`:     {'̀', FirstChar},
	`\dot`:       {'̇', FirstChar},
	`\ddot`:      {'̈', FirstChar},
	`\breve`:     {'̆', FirstChar},
	`\bar`:       {'̄', FirstChar},
	`\vec`:       {'⃗', FirstChar},
	`\mathring`:  {'̊', FirstChar},
	`\overline`:  {'̅', AllChars},
	`\underline`: {'̲', AllChars},
	`\not`:       {'̸', LastChar},
}

// Subscripts 可用 Unicode 表示的下标字符
var Subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ',
	'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ',
	'p': 'ₚ', 'r': 'ᵣ', 's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ',
	'v': 'ᵥ', 'x': 'ₓ', 'β': 'ᵦ', 'γ': 'ᵧ', 'ρ': 'ᵨ',
	'φ': 'ᵩ', 'χ': 'ᵪ',
}

// Superscripts 可用 Unicode 表示的上标字符
var Superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'a': 'ᵃ', 'b': 'ᵇ', 'c': 'ᶜ', 'd': 'ᵈ', 'e': 'ᵉ',
	'f': 'ᶠ', 'g': 'ᵍ', 'h': 'ʰ', 'i': 'ⁱ', 'j': 'ʲ',
	'k': 'ᵏ', 'l': 'ˡ', 'm': 'ᵐ', 'n': 'ⁿ', 'o': 'ᵒ',
	'p': 'ᵖ', 'r': 'ʳ', 's': 'ˢ', 't': 'ᵗ', 'u': 'ᵘ',
	'v': 'ᵛ', 'w': 'ʷ', 'x': 'ˣ', 'y': 'ʸ', 'z': 'ᶻ',
	'T': 'ᵀ', '′': '′', '*': '*', '∗': '*',
}

// FracMap 有专用字符的分数
var FracMap = map[[2]string]string{
	{"1", "2"}: "½", {"1", "3"}: "⅓", {"2", "3"}: "⅔", {"1", "4"}: "¼",
	{"3", "4"}: "¾", {"1", "5"}: "⅕", {"2", "5"}: "⅖", {"3", "5"}: "⅗",
	{"4", "5"}: "⅘", {"1", "6"}: "⅙", {"5", "6"}: "⅚", {"1", "7"}: "⅐",
	{"1", "8"}: "⅛", {"3", "8"}: "⅜", {"5", "8"}: "⅝", {"7", "8"}: "⅞",
	{"1", "9"}: "⅑", {"1", "10"}: "⅒",
}

// LatexStyles 字体样式命令。值为 nil 表示原样输出。
var LatexStyles = map[string]map[rune]rune{
	`\mathrm`:     nil,
	`\mathsf`:     nil,
	`\mathtt`:     nil,
	`\textrm`:     nil,
	`\mathbf`:     alphabet(0x1D400, 0x1D41A, 0x1D7CE, nil),
	`\boldsymbol`: alphabet(0x1D400, 0x1D41A, 0x1D7CE, nil),
	`\textbf`:     alphabet(0x1D400, 0x1D41A, 0x1D7CE, nil),
	`\mathit`:     alphabet(0x1D434, 0x1D44E, 0, map[rune]rune{'h': 'ℎ'}),
	`\textit`:     alphabet(0x1D434, 0x1D44E, 0, map[rune]rune{'h': 'ℎ'}),
	`\mathbb`: alphabet(0x1D538, 0x1D552, 0x1D7D8, map[rune]rune{
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	}),
	`\mathcal`: alphabet(0x1D49C, 0, 0, map[rune]rune{
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
	}),
	`\mathscr`: alphabet(0x1D49C, 0, 0, map[rune]rune{
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
	}),
	`\mathfrak`: alphabet(0x1D504, 0x1D51E, 0, map[rune]rune{
		'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
	}),
}

// alphabet 生成 Unicode 数学字母表映射。起点为 0 的部分不生成；
// holes 覆盖 Letterlike Symbols 区块中预先存在的字符。
func alphabet(upper, lower, digits rune, holes map[rune]rune) map[rune]rune {
	m := make(map[rune]rune, 62)
	for i := rune(0); i < 26; i++ {
		if upper != 0 {
			m['A'+i] = upper + i
		}
		if lower != 0 {
			m['a'+i] = lower + i
		}
	}
	if digits != 0 {
		for i := rune(0); i < 10; i++ {
			m['0'+i] = digits + i
		}
	}
	for k, v := range holes {
		m[k] = v
	}
	return m
}
