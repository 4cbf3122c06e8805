package numstring

import "errors"

// ErrNotNumeric indicates that the input matched no numeric pattern for the
// active separator settings.
var ErrNotNumeric = errors.New("numstring: not numeric")

// ErrUnableToConvertStringToNumber indicates a classified input that still
// failed the typed parse (overflow, fraction into an integer target, negative
// into an unsigned target).
var ErrUnableToConvertStringToNumber = errors.New("numstring: unable to convert string to number")

// ErrUnableToConvertNumberToString indicates a value the formatter cannot
// render, such as NaN or an infinity.
var ErrUnableToConvertNumberToString = errors.New("numstring: unable to convert number to string")

// ErrInvalidFormatSpecifier marks a malformed N-style format specifier or an
// inconsistent FormatOption.
var ErrInvalidFormatSpecifier = errors.New("numstring: invalid format specifier")

// ErrInvalidSeparators marks separator settings that cannot form a valid
// culture, for example equal thousand and decimal symbols.
var ErrInvalidSeparators = errors.New("numstring: invalid separators")

// ErrCultureNotFound indicates an unknown culture name or language tag
var ErrCultureNotFound = errors.New("numstring: culture not found")
