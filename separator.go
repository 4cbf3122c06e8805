package numstring

import (
	"unicode"
	"unicode/utf8"
)

// Separator is the symbol used for thousand grouping or the decimal mark.
// The predefined values cover the common conventions; any other single-rune
// symbol works as a custom separator.
type Separator string

const (
	SeparatorComma      Separator = ","
	SeparatorDot        Separator = "."
	SeparatorSpace      Separator = " "
	SeparatorApostrophe Separator = "'"

	// SeparatorNone disables thousand grouping. Only valid in the thousand
	// role.
	SeparatorNone Separator = ""
)

// CustomSeparator builds a separator from an arbitrary symbol.
func CustomSeparator(symbol rune) Separator {
	return Separator(string(symbol))
}

func (s Separator) String() string {
	return string(s)
}

// symbol returns the separator rune. ok is false for SeparatorNone.
func (s Separator) symbol() (rune, bool) {
	if s == SeparatorNone {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(string(s))
	return r, true
}

// validate checks symbol arity and keeps digits and signs out of separator
// position.
func (s Separator) validate(role string) error {
	if s == SeparatorNone {
		if role == "decimal" {
			return wrapSeparatorError("decimal separator must not be empty")
		}
		return nil
	}
	if utf8.RuneCountInString(string(s)) != 1 {
		return wrapSeparatorError(role + " separator must be a single symbol")
	}
	r, _ := utf8.DecodeRuneInString(string(s))
	if unicode.IsDigit(r) || r == '+' || r == '-' {
		return wrapSeparatorError(role + " separator must not be a digit or sign")
	}
	return nil
}

// Grouping selects how whole-part digits are grouped by the thousand
// separator.
type Grouping int

const (
	// GroupThreeBlock groups digits in threes: 1,234,567.
	GroupThreeBlock Grouping = iota

	// GroupTwoBlock keeps the rightmost group of three and groups the rest
	// in twos, the Indian lakh/crore convention: 12,34,567.
	GroupTwoBlock
)

func (g Grouping) String() string {
	switch g {
	case GroupTwoBlock:
		return "two-block"
	default:
		return "three-block"
	}
}
