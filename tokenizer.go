package mathtex

import (
	"io"
	"unicode"
)

// Tokenizer splits math source into tokens: Char, Command, EnvironmentStart
// and EnvironmentEnd. Whitespace and % comments are skipped.
type Tokenizer struct {
	r       io.RuneScanner
	pending []any // tokens recovered from an incomplete \begin{ or \end{
}

func NewTokenizer(r io.RuneScanner) *Tokenizer {
	return &Tokenizer{r: r}
}

// Token returns the next token or io.EOF when the input is exhausted.
func (l *Tokenizer) Token() (any, error) {
	if len(l.pending) > 0 {
		token := l.pending[0]
		l.pending = l.pending[1:]
		return token, nil
	}

	for {
		char, _, err := l.r.ReadRune()
		if err != nil {
			return nil, err
		}

		switch {
		case isWhitespace(char):
			continue
		case char == '%':
			if err := l.readLineComment(); err != nil {
				return nil, err
			}
		case char == '\\':
			return l.readBackslash()
		default:
			return Char(char), nil
		}
	}
}

func (l *Tokenizer) readBackslash() (any, error) {
	r, _, err := l.r.ReadRune()
	if err == io.EOF {
		// a lone backslash at the end is just a character
		return Char('\\'), nil
	}

	if err != nil {
		return nil, err
	}

	// one symbol command: \\, \{, \, etc.
	if !isLetter(r) {
		return Command(string(r)), nil
	}

	name, err := l.word(r)
	if err != nil {
		return nil, err
	}

	switch name {
	case "begin", "end":
		return l.readEnvironment(name)
	default:
		return Command(name), nil
	}
}

// readEnvironment reads {name} after \begin or \end. When the braces do not
// enclose a plain word, the command is returned as is and everything consumed
// after it is replayed as characters.
func (l *Tokenizer) readEnvironment(command string) (any, error) {
	open, _, err := l.r.ReadRune()
	if err == io.EOF {
		return Command(command), nil
	}

	if err != nil {
		return nil, err
	}

	if open != '{' {
		return Command(command), l.r.UnreadRune()
	}

	var runes []rune
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		if isLetter(read) {
			runes = append(runes, read)
			continue
		}

		if read == '}' && len(runes) > 0 {
			if command == "begin" {
				return EnvironmentStart{Name: string(runes)}, nil
			}

			return EnvironmentEnd{Name: string(runes)}, nil
		}

		if err := l.r.UnreadRune(); err != nil {
			return nil, err
		}

		break
	}

	l.pending = append(l.pending, Char('{'))
	for _, r := range runes {
		l.pending = append(l.pending, Char(r))
	}

	return Command(command), nil
}

// readLineComment skips everything up to and including the end of line
func (l *Tokenizer) readLineComment() error {
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if read == '\n' {
			return nil
		}
	}
}

// word reads sequence of letters starting with first
func (l *Tokenizer) word(first rune) (string, error) {
	runes := []rune{first}
	for {
		read, _, err := l.r.ReadRune()
		if err == io.EOF {
			return string(runes), nil
		}

		if err != nil {
			return "", err
		}

		if !isLetter(read) {
			return string(runes), l.r.UnreadRune()
		}

		runes = append(runes, read)
	}
}

// isLetter returns true for an ASCII letter, the only runes allowed in command names
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}
