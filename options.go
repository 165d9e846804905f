package mathtex

// Option configures a Renderer.
type Option func(r *Renderer)

// WithCharMargin sets horizontal space put between glyphs and between
// horizontally concatenated boxes.
func WithCharMargin(em float64) Option {
	return func(r *Renderer) {
		r.charMargin = em
	}
}

// WithLineHeight overrides height of text boxes. It defaults to the natural
// glyph box height of the metrics.
func WithLineHeight(em float64) Option {
	return func(r *Renderer) {
		r.lineHeight = em
	}
}

// WithColumnGap sets space between array columns.
func WithColumnGap(em float64) Option {
	return func(r *Renderer) {
		r.columnGap = em
	}
}

// WithRowGap sets space between array rows.
func WithRowGap(em float64) Option {
	return func(r *Renderer) {
		r.rowGap = em
	}
}

// WithScriptMargin sets space between a base and its scripts, before scaling.
func WithScriptMargin(em float64) Option {
	return func(r *Renderer) {
		r.scriptMargin = em
	}
}

// WithRuleThickness sets thickness of fraction and radical rules.
func WithRuleThickness(em float64) Option {
	return func(r *Renderer) {
		r.ruleThickness = em
	}
}

// WithDelimiterCorrection sets how far synthesized delimiters are moved
// down relative to the content they enclose.
func WithDelimiterCorrection(em float64) Option {
	return func(r *Renderer) {
		r.delimiterCorrection = em
	}
}
