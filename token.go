package mathtex

// Char is a literal character.
type Char rune

// Command is a backslash command, stored without the backslash.
type Command string

type EnvironmentStart struct {
	Name string
}

type EnvironmentEnd struct {
	Name string
}
