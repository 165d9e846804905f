package mathtex

// arities lists commands taking arguments, by the number of arguments.
var arities = map[string]int{
	"frac":       2,
	"sqrt":       1,
	"boldsymbol": 1,
	"left":       1,
	"right":      1,
	"_":          1,
	"^":          1,
}

// symbols maps commands to the character they stand for.
var symbols = map[string]string{
	// greek small letters
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"lamda":   "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"omicron": "ο",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"upsilon": "υ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",

	// greek capital letters
	"Alpha":   "Α",
	"Beta":    "Β",
	"Gamma":   "Γ",
	"Delta":   "Δ",
	"Epsilon": "Ε",
	"Zeta":    "Ζ",
	"Eta":     "Η",
	"Theta":   "Θ",
	"Iota":    "Ι",
	"Kappa":   "Κ",
	"Lambda":  "Λ",
	"Lamda":   "Λ",
	"Mu":      "Μ",
	"Nu":      "Ν",
	"Xi":      "Ξ",
	"Omicron": "Ο",
	"Pi":      "Π",
	"Rho":     "Ρ",
	"Sigma":   "Σ",
	"Tau":     "Τ",
	"Upsilon": "Υ",
	"Phi":     "Φ",
	"Chi":     "Χ",
	"Psi":     "Ψ",
	"Omega":   "Ω",

	// greek letter variants
	"varsigma":    "ς",
	"varbeta":     "ϐ",
	"vartheta":    "ϑ",
	"varphi":      "ϕ",
	"varpi":       "ϖ",
	"stigma":      "Ϛ",
	"digamma":     "Ϝ",
	"koppa":       "Ϟ",
	"sampi":       "Ϡ",
	"varkappa":    "ϰ",
	"varrho":      "ϱ",
	"lunatesigma": "ϲ",

	// escaped specials
	"{": "{",
	"}": "}",
	"%": "%",
	"&": "&",
	"$": "$",
	"#": "#",
	"_": "_",

	// delimiters
	"langle": "⟨",
	"rangle": "⟩",
	"lfloor": "⌊",
	"rfloor": "⌋",
	"lceil":  "⌈",
	"rceil":  "⌉",
	"lbrace": "{",
	"rbrace": "}",
	"vert":   "|",
	"Vert":   "‖",

	// operators and relations
	"times":   "×",
	"cdot":    "⋅",
	"pm":      "±",
	"mp":      "∓",
	"div":     "÷",
	"le":      "≤",
	"leq":     "≤",
	"ge":      "≥",
	"geq":     "≥",
	"neq":     "≠",
	"ne":      "≠",
	"approx":  "≈",
	"equiv":   "≡",
	"infty":   "∞",
	"sum":     "∑",
	"prod":    "∏",
	"int":     "∫",
	"to":      "→",
	"in":      "∈",
	"partial": "∂",
	"nabla":   "∇",
	"ldots":   "…",
	"cdots":   "⋯",
}

// symbol returns the character of a symbol command
func symbol(name string) (string, bool) {
	s, ok := symbols[name]
	return s, ok
}

// arity returns number of arguments of a structural command
func arity(name string) (int, bool) {
	n, ok := arities[name]
	return n, ok
}
