package numstring

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// maxFractionDigits caps fraction precision the way .NET caps N-style
// specifiers.
const maxFractionDigits = 99

// FormatOption controls fraction rendering: the fraction is rounded half
// away from zero at MaxFractionDigits and padded with zeros up to
// MinFractionDigits. "N2" is the option pair {2, 2}.
type FormatOption struct {
	MinFractionDigits int
	MaxFractionDigits int
}

func (o FormatOption) validate() error {
	if o.MinFractionDigits < 0 || o.MaxFractionDigits < 0 {
		return fmt.Errorf("%w: negative fraction digits", ErrInvalidFormatSpecifier)
	}
	if o.MinFractionDigits > o.MaxFractionDigits {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidFormatSpecifier, o.MinFractionDigits, o.MaxFractionDigits)
	}
	if o.MaxFractionDigits > maxFractionDigits {
		return fmt.Errorf("%w: max %d exceeds %d", ErrInvalidFormatSpecifier, o.MaxFractionDigits, maxFractionDigits)
	}
	return nil
}

// ParseFormat parses an N-style specifier: "N" followed by the exact number
// of fraction digits, "N0" through "N99".
func ParseFormat(format string) (FormatOption, error) {
	if len(format) < 2 || format[0] != 'N' {
		return FormatOption{}, fmt.Errorf("%w: %q", ErrInvalidFormatSpecifier, format)
	}
	for i := 1; i < len(format); i++ {
		if format[i] < '0' || format[i] > '9' {
			return FormatOption{}, fmt.Errorf("%w: %q", ErrInvalidFormatSpecifier, format)
		}
	}
	digits, err := strconv.Atoi(format[1:])
	if err != nil || digits > maxFractionDigits {
		return FormatOption{}, fmt.Errorf("%w: %q", ErrInvalidFormatSpecifier, format)
	}
	return FormatOption{MinFractionDigits: digits, MaxFractionDigits: digits}, nil
}

// ToFormat renders value with an N-style specifier under a built-in culture:
// ToFormat(1000, "N2", CultureFrench) is "1 000,00".
func ToFormat[T Numeric](value T, format string, culture Culture) (string, error) {
	settings, err := culture.Settings()
	if err != nil {
		return "", err
	}
	return ToFormatSeparators(value, format, settings)
}

// ToFormatSeparators renders value with an N-style specifier under explicit
// separator settings.
func ToFormatSeparators[T Numeric](value T, format string, settings NumberCultureSettings) (string, error) {
	option, err := ParseFormat(format)
	if err != nil {
		return "", err
	}
	return ToFormatOptions(value, option, settings)
}

// ToFormatOptions renders value under explicit separator settings with full
// fraction control.
func ToFormatOptions[T Numeric](value T, option FormatOption, settings NumberCultureSettings) (string, error) {
	if err := settings.Validate(); err != nil {
		return "", err
	}
	if err := option.validate(); err != nil {
		return "", err
	}

	neg, whole, frac, err := decimalParts(value)
	if err != nil {
		return "", err
	}

	whole, frac = roundFraction(whole, frac, option.MaxFractionDigits)
	frac = fitFraction(frac, option.MinFractionDigits)
	if neg && allZeroDigits(whole) && allZeroDigits(frac) {
		neg = false
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupDigits(whole, settings))
	if frac != "" {
		b.WriteString(settings.decimal.String())
		b.WriteString(frac)
	}
	return b.String(), nil
}

// decimalParts renders the value into plain decimal digits. Floats use the
// shortest representation that round-trips, so rounding later works on the
// digits a caller would read back.
func decimalParts[T Numeric](value T) (neg bool, whole, frac string, err error) {
	rv := reflect.ValueOf(value)

	var repr string
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false, "", "", fmt.Errorf("%w: %v", ErrUnableToConvertNumberToString, f)
		}
		bits := 64
		if rv.Kind() == reflect.Float32 {
			bits = 32
		}
		repr = strconv.FormatFloat(f, 'f', -1, bits)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		repr = strconv.FormatUint(rv.Uint(), 10)
	default:
		repr = strconv.FormatInt(rv.Int(), 10)
	}

	if rest, found := strings.CutPrefix(repr, "-"); found {
		neg = true
		repr = rest
	}
	whole, frac, _ = strings.Cut(repr, ".")
	return neg, whole, frac, nil
}

// roundFraction cuts frac at max digits, rounding half away from zero. The
// carry runs through the whole part: 10000.9999 at two digits is 10001.00.
func roundFraction(whole, frac string, max int) (string, string) {
	if len(frac) <= max {
		return whole, frac
	}

	keep := frac[:max]
	if frac[max] < '5' {
		return whole, keep
	}

	combined := incrementDigits(whole + keep)
	cut := len(combined) - max
	return combined[:cut], combined[cut:]
}

// incrementDigits adds one to a digit string, growing it on full carry.
func incrementDigits(digits string) string {
	out := []byte(digits)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] != '9' {
			out[i]++
			return string(out)
		}
		out[i] = '0'
	}
	return "1" + string(out)
}

// fitFraction trims trailing zeros down to min digits and pads up to min.
func fitFraction(frac string, min int) string {
	for len(frac) > min && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	if len(frac) < min {
		frac += strings.Repeat("0", min-len(frac))
	}
	return frac
}

// groupDigits inserts the thousand separator per the settings' grouping.
func groupDigits(whole string, settings NumberCultureSettings) string {
	sep, ok := settings.thousand.symbol()
	if !ok || len(whole) <= 3 {
		return whole
	}

	var b strings.Builder
	switch settings.grouping {
	case GroupTwoBlock:
		for i := 0; i < len(whole); i++ {
			remaining := len(whole) - i
			if i > 0 && (remaining == 3 || (remaining > 3 && (remaining-3)%2 == 0)) {
				b.WriteRune(sep)
			}
			b.WriteByte(whole[i])
		}
	default:
		for i := 0; i < len(whole); i++ {
			if i > 0 && (len(whole)-i)%3 == 0 {
				b.WriteRune(sep)
			}
			b.WriteByte(whole[i])
		}
	}
	return b.String()
}

func allZeroDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}
