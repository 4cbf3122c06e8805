package numstring

import "fmt"

// NumberCultureSettings pairs a thousand separator, a decimal separator and a
// grouping convention. Values are immutable once built; WithGrouping returns
// a modified copy.
type NumberCultureSettings struct {
	thousand Separator
	decimal  Separator
	grouping Grouping
}

// NewNumberCultureSettings builds settings from a thousand and a decimal
// separator, grouped in three-blocks. The decimal separator must be a single
// symbol, the thousand separator a single symbol or SeparatorNone, and the
// two must differ.
func NewNumberCultureSettings(thousand, decimal Separator) (NumberCultureSettings, error) {
	s := NumberCultureSettings{thousand: thousand, decimal: decimal, grouping: GroupThreeBlock}
	if err := s.Validate(); err != nil {
		return NumberCultureSettings{}, err
	}
	return s, nil
}

// MustNumberCultureSettings is NewNumberCultureSettings that panics on
// invalid symbols. Reserve it for package-level tables and tests.
func MustNumberCultureSettings(thousand, decimal Separator) NumberCultureSettings {
	s, err := NewNumberCultureSettings(thousand, decimal)
	if err != nil {
		panic(err)
	}
	return s
}

// WithGrouping returns a copy of the settings using the given grouping.
func (s NumberCultureSettings) WithGrouping(grouping Grouping) NumberCultureSettings {
	s.grouping = grouping
	return s
}

// ThousandSeparator returns the grouping symbol, SeparatorNone when grouping
// is disabled.
func (s NumberCultureSettings) ThousandSeparator() Separator {
	return s.thousand
}

// DecimalSeparator returns the decimal mark.
func (s NumberCultureSettings) DecimalSeparator() Separator {
	return s.decimal
}

// Grouping returns the digit-grouping convention.
func (s NumberCultureSettings) Grouping() Grouping {
	return s.grouping
}

// Validate reports whether the settings can drive classification and
// formatting. The zero value is invalid: it has no decimal separator.
func (s NumberCultureSettings) Validate() error {
	if err := s.thousand.validate("thousand"); err != nil {
		return err
	}
	if err := s.decimal.validate("decimal"); err != nil {
		return err
	}
	if s.thousand != SeparatorNone && s.thousand == s.decimal {
		return wrapSeparatorError(fmt.Sprintf("thousand and decimal separators are both %q", s.thousand))
	}
	return nil
}

func wrapSeparatorError(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSeparators, detail)
}
