package numstring

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Numeric constrains conversion targets to Go's integer and float kinds.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// ToNumber converts input into T under the default culture.
func ToNumber[T Numeric](input string) (T, error) {
	return ToNumberCulture[T](input, DefaultCulture)
}

// ToNumberCulture converts input into T using a built-in culture's
// separators.
func ToNumberCulture[T Numeric](input string, culture Culture) (T, error) {
	var zero T
	settings, err := culture.Settings()
	if err != nil {
		return zero, err
	}
	return ToNumberSeparators[T](input, settings)
}

// ToNumberSeparators converts input into T using explicit separator
// settings. The input must classify under the settings; a classified input
// can still fail the typed parse on overflow or on a fraction aimed at an
// integer target.
func ToNumberSeparators[T Numeric](input string, settings NumberCultureSettings) (T, error) {
	var zero T
	if err := settings.Validate(); err != nil {
		return zero, err
	}

	pattern, ok := classify(input, settings)
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotNumeric, input)
	}

	return parseLiteral[T](normalizeLiteral(input, settings, pattern), input)
}

// normalizeLiteral rewrites a classified input into strconv's dialect: no
// grouping, '.' as decimal mark, an explicit zero whole part.
func normalizeLiteral(input string, settings NumberCultureSettings, pattern ParsingPattern) string {
	literal := input
	if sep := settings.thousand.String(); sep != "" {
		literal = strings.ReplaceAll(literal, sep, "")
	}
	if sep := settings.decimal.String(); sep != "." {
		literal = strings.Replace(literal, sep, ".", 1)
	}
	if pattern.tag == DecimalNoWhole {
		if strings.HasPrefix(literal, "-") || strings.HasPrefix(literal, "+") {
			literal = literal[:1] + "0" + literal[1:]
		} else {
			literal = "0" + literal
		}
	}
	return literal
}

// parseLiteral dispatches on T's kind and parses with T's bit size, so
// strconv reports overflow instead of a silent truncating conversion.
func parseLiteral[T Numeric](literal, input string) (T, error) {
	var zero T
	typ := reflect.TypeOf(zero)

	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(literal, typ.Bits())
		if err != nil {
			return zero, conversionError(input, typ, err)
		}
		return T(v), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		// ParseUint rejects sign prefixes outright; a leading plus still
		// names a representable value.
		v, err := strconv.ParseUint(strings.TrimPrefix(literal, "+"), 10, typ.Bits())
		if err != nil {
			return zero, conversionError(input, typ, err)
		}
		return T(v), nil
	default:
		v, err := strconv.ParseInt(literal, 10, typ.Bits())
		if err != nil {
			return zero, conversionError(input, typ, err)
		}
		return T(v), nil
	}
}

func conversionError(input string, typ reflect.Type, err error) error {
	return fmt.Errorf("%w: %q as %s: %v", ErrUnableToConvertStringToNumber, input, typ.Kind(), err)
}
