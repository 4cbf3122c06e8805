package numstring

import "fmt"

// ConvertOption adjusts the separator settings a ConvertString classifies
// under.
type ConvertOption func(*convertConfig) error

type convertConfig struct {
	settings NumberCultureSettings
}

// WithCulture classifies under a built-in culture.
func WithCulture(culture Culture) ConvertOption {
	return func(c *convertConfig) error {
		settings, err := culture.Settings()
		if err != nil {
			return err
		}
		c.settings = settings
		return nil
	}
}

// WithSeparators classifies under explicit separator settings.
func WithSeparators(settings NumberCultureSettings) ConvertOption {
	return func(c *convertConfig) error {
		if err := settings.Validate(); err != nil {
			return err
		}
		c.settings = settings
		return nil
	}
}

// ConvertString classifies an input once, at construction, and answers every
// query from the cached result. Instances are immutable and safe for
// concurrent reads.
type ConvertString struct {
	input    string
	settings NumberCultureSettings
	pattern  ParsingPattern
	numeric  bool
}

// NewConvertString classifies input, under the default culture unless an
// option says otherwise. Only invalid options error; a non-numeric input
// yields a working instance whose IsNumeric reports false.
func NewConvertString(input string, opts ...ConvertOption) (*ConvertString, error) {
	cfg := &convertConfig{settings: cultureSettings[DefaultCulture]}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cs := &ConvertString{input: input, settings: cfg.settings}
	cs.pattern, cs.numeric = classify(input, cfg.settings)
	return cs, nil
}

// Input returns the original string.
func (cs *ConvertString) Input() string {
	if cs == nil {
		return ""
	}
	return cs.input
}

// Settings returns the separator settings the input was classified under.
func (cs *ConvertString) Settings() NumberCultureSettings {
	if cs == nil {
		return NumberCultureSettings{}
	}
	return cs.settings
}

// IsNumeric reports whether any pattern matched.
func (cs *ConvertString) IsNumeric() bool {
	return cs != nil && cs.numeric
}

// IsInteger reports whether the input matched a whole-number shape.
func (cs *ConvertString) IsInteger() bool {
	return cs.IsNumeric() && cs.pattern.numberType == NumberTypeWhole
}

// IsFloat reports whether the input matched a decimal shape.
func (cs *ConvertString) IsFloat() bool {
	return cs.IsNumeric() && cs.pattern.numberType == NumberTypeDecimal
}

// Pattern returns the matched pattern, ErrNotNumeric when nothing matched.
func (cs *ConvertString) Pattern() (ParsingPattern, error) {
	if !cs.IsNumeric() {
		return ParsingPattern{}, fmt.Errorf("%w: %q", ErrNotNumeric, cs.Input())
	}
	return cs.pattern, nil
}

// Int64 converts the classified input to an int64.
func (cs *ConvertString) Int64() (int64, error) {
	return Number[int64](cs)
}

// Float64 converts the classified input to a float64.
func (cs *ConvertString) Float64() (float64, error) {
	return Number[float64](cs)
}

// Number converts the classified input into T, reusing the cached
// classification. It is a package function because methods cannot take type
// parameters.
func Number[T Numeric](cs *ConvertString) (T, error) {
	var zero T
	if !cs.IsNumeric() {
		return zero, fmt.Errorf("%w: %q", ErrNotNumeric, cs.Input())
	}
	return parseLiteral[T](normalizeLiteral(cs.input, cs.settings, cs.pattern), cs.input)
}
