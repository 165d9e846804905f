package mathtex

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var measure = regexp.MustCompile("^(-?[0-9]*(?:\\.[0-9]+)?)([a-z]*)$")
var whitespaces = regexp.MustCompile("[ \n\t\r]+")

// emInPoints is the font size dimensions are converted against.
const emInPoints = 12

// Measure parses measurement value, a number and units, for example: 0.5em, 2pt, .25ex
func Measure(raw string) (float64, string, error) {
	raw = whitespaces.ReplaceAllString(raw, "")

	match := measure.FindStringSubmatch(raw)
	if len(match) == 0 || match[1] == "" || match[1] == "-" {
		return 0, "", errors.New("unable to parse measurement")
	}

	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", err
	}

	return number, match[2], nil
}

// ParseEm parses a measurement and converts it to em. A number without unit is in em.
func ParseEm(raw string) (float64, error) {
	n, u, err := Measure(raw)
	if err != nil {
		return 0, err
	}

	return ToEm(n, u)
}

// ToEm converts value to em of a 12pt font.
func ToEm(value float64, unit string) (float64, error) {
	switch strings.ToLower(unit) {
	case "", "em":
		return value, nil
	case "ex":
		return value / 2, nil
	case "pt":
		return value / emInPoints, nil
	case "px":
		return value * 0.75 / emInPoints, nil
	case "mm":
		return value * 72 / 25.4 / emInPoints, nil
	case "cm":
		return value * 72 / 2.54 / emInPoints, nil
	case "in":
		return value * 72 / emInPoints, nil
	default:
		return 0, fmt.Errorf("measurement unit %#v is not supported", unit)
	}
}
