package mathtex

// Typeset parses, restructures and renders the source in one go.
func Typeset(src string, m Metrics, size float64, opts ...Option) (*Box, error) {
	if m == nil {
		return nil, ErrInvalidInput
	}

	root, err := ParseString(src)
	if err != nil {
		return nil, err
	}

	return NewRenderer(m, opts...).Render(Prepare(root), size), nil
}
