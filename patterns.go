package numstring

// NumberType partitions shapes into whole and decimal numbers.
type NumberType int

const (
	NumberTypeWhole NumberType = iota
	NumberTypeDecimal
)

func (t NumberType) String() string {
	if t == NumberTypeDecimal {
		return "decimal"
	}
	return "whole"
}

// TypeParsing identifies the structural shape a numeric string matched.
// Signedness is part of the shape: the Signed variants require a leading
// sign, their counterparts forbid one. DecimalNoWhole is the exception and
// accepts an optional sign.
type TypeParsing int

const (
	WholeSimple TypeParsing = iota
	SignedWhole
	ThousandWhole
	SignedThousandWhole
	DecimalSimple
	SignedDecimal
	DecimalNoWhole
	ThousandDecimal
	SignedThousandDecimal
)

func (t TypeParsing) String() string {
	switch t {
	case WholeSimple:
		return "WholeSimple"
	case SignedWhole:
		return "SignedWhole"
	case ThousandWhole:
		return "ThousandWhole"
	case SignedThousandWhole:
		return "SignedThousandWhole"
	case DecimalSimple:
		return "DecimalSimple"
	case SignedDecimal:
		return "SignedDecimal"
	case DecimalNoWhole:
		return "DecimalNoWhole"
	case ThousandDecimal:
		return "ThousandDecimal"
	case SignedThousandDecimal:
		return "SignedThousandDecimal"
	default:
		return "unknown"
	}
}

// Signed reports whether the shape carries an explicit sign. DecimalNoWhole
// reports true because its grammar admits one.
func (t TypeParsing) Signed() bool {
	switch t {
	case SignedWhole, SignedThousandWhole, SignedDecimal, SignedThousandDecimal, DecimalNoWhole:
		return true
	default:
		return false
	}
}

// ParsingPattern is one rule of the catalog: a named structural matcher bound
// to a shape tag and a number type. Matchers read the separator symbols from
// the scanner, so one catalog serves every culture.
type ParsingPattern struct {
	name       string
	tag        TypeParsing
	numberType NumberType
	match      func(*shapeScanner) bool
}

func (p ParsingPattern) Name() string {
	return p.name
}

func (p ParsingPattern) Tag() TypeParsing {
	return p.tag
}

func (p ParsingPattern) NumberType() NumberType {
	return p.numberType
}

func (p ParsingPattern) String() string {
	return p.name
}

// parsingPatterns is evaluated in order; the first structural match wins.
// Decimal shapes come before whole shapes so a decimal separator is never
// mistaken for trailing garbage, and signed shapes come before their
// unsigned twins.
var parsingPatterns = []ParsingPattern{
	{name: "signed_thousand_decimal", tag: SignedThousandDecimal, numberType: NumberTypeDecimal,
		match: func(sc *shapeScanner) bool { return sc.matchDecimal(signRequired, true) }},
	{name: "thousand_decimal", tag: ThousandDecimal, numberType: NumberTypeDecimal,
		match: func(sc *shapeScanner) bool { return sc.matchDecimal(signForbidden, true) }},
	{name: "signed_decimal", tag: SignedDecimal, numberType: NumberTypeDecimal,
		match: func(sc *shapeScanner) bool { return sc.matchDecimal(signRequired, false) }},
	{name: "decimal_simple", tag: DecimalSimple, numberType: NumberTypeDecimal,
		match: func(sc *shapeScanner) bool { return sc.matchDecimal(signForbidden, false) }},
	{name: "decimal_no_whole", tag: DecimalNoWhole, numberType: NumberTypeDecimal,
		match: func(sc *shapeScanner) bool { return sc.matchDecimalNoWhole() }},
	{name: "signed_thousand_whole", tag: SignedThousandWhole, numberType: NumberTypeWhole,
		match: func(sc *shapeScanner) bool { return sc.matchWhole(signRequired, true) }},
	{name: "thousand_whole", tag: ThousandWhole, numberType: NumberTypeWhole,
		match: func(sc *shapeScanner) bool { return sc.matchWhole(signForbidden, true) }},
	{name: "signed_whole", tag: SignedWhole, numberType: NumberTypeWhole,
		match: func(sc *shapeScanner) bool { return sc.matchWhole(signRequired, false) }},
	{name: "whole_simple", tag: WholeSimple, numberType: NumberTypeWhole,
		match: func(sc *shapeScanner) bool { return sc.matchWhole(signForbidden, false) }},
}

// classify runs the catalog against the input under the given settings.
func classify(input string, settings NumberCultureSettings) (ParsingPattern, bool) {
	if input == "" || settings.Validate() != nil {
		return ParsingPattern{}, false
	}

	decimal, _ := settings.decimal.symbol()
	thousand, hasThousand := settings.thousand.symbol()
	sc := &shapeScanner{
		runes:       []rune(input),
		decimal:     decimal,
		thousand:    thousand,
		hasThousand: hasThousand,
		grouping:    settings.grouping,
	}

	for _, pattern := range parsingPatterns {
		if pattern.match(sc) {
			return pattern, true
		}
	}
	return ParsingPattern{}, false
}

type signMode int

const (
	signForbidden signMode = iota
	signRequired
	signOptional
)

type shapeScanner struct {
	runes       []rune
	decimal     rune
	thousand    rune
	hasThousand bool
	grouping    Grouping
}

// trimSign strips a single leading sign.
func (sc *shapeScanner) trimSign() ([]rune, bool) {
	if len(sc.runes) > 0 && (sc.runes[0] == '-' || sc.runes[0] == '+') {
		return sc.runes[1:], true
	}
	return sc.runes, false
}

func (sc *shapeScanner) acceptSign(mode signMode) ([]rune, bool) {
	rest, signed := sc.trimSign()
	switch mode {
	case signRequired:
		return rest, signed
	case signForbidden:
		return rest, !signed
	default:
		return rest, true
	}
}

func (sc *shapeScanner) matchWhole(mode signMode, grouped bool) bool {
	rest, ok := sc.acceptSign(mode)
	if !ok {
		return false
	}
	if grouped {
		return sc.groupedDigits(rest)
	}
	return isDigitRun(rest)
}

func (sc *shapeScanner) matchDecimal(mode signMode, grouped bool) bool {
	rest, ok := sc.acceptSign(mode)
	if !ok {
		return false
	}
	whole, frac, found := sc.splitDecimal(rest)
	if !found || !isDigitRun(frac) {
		return false
	}
	if grouped {
		return sc.groupedDigits(whole)
	}
	return isDigitRun(whole)
}

// matchDecimalNoWhole accepts shapes like ",25" and "-.5": optional sign, the
// decimal separator, then fraction digits.
func (sc *shapeScanner) matchDecimalNoWhole() bool {
	rest, _ := sc.acceptSign(signOptional)
	whole, frac, found := sc.splitDecimal(rest)
	return found && len(whole) == 0 && isDigitRun(frac)
}

// splitDecimal cuts at the first decimal separator. A second occurrence ends
// up in frac and fails the digit check there.
func (sc *shapeScanner) splitDecimal(rs []rune) (whole, frac []rune, found bool) {
	for i, r := range rs {
		if r == sc.decimal {
			return rs[:i], rs[i+1:], true
		}
	}
	return nil, nil, false
}

// groupedDigits validates a whole part with at least one thousand separator
// and correct group sizes for the active grouping.
func (sc *shapeScanner) groupedDigits(rs []rune) bool {
	if !sc.hasThousand {
		return false
	}

	var groups [][]rune
	start := 0
	for i, r := range rs {
		if r == sc.thousand {
			groups = append(groups, rs[start:i])
			start = i + 1
		}
	}
	groups = append(groups, rs[start:])

	if len(groups) < 2 {
		return false
	}
	for _, group := range groups {
		if !isDigitRun(group) {
			return false
		}
	}

	switch sc.grouping {
	case GroupTwoBlock:
		if len(groups[0]) > 2 || len(groups[len(groups)-1]) != 3 {
			return false
		}
		for _, group := range groups[1 : len(groups)-1] {
			if len(group) != 2 {
				return false
			}
		}
	default:
		if len(groups[0]) > 3 {
			return false
		}
		for _, group := range groups[1:] {
			if len(group) != 3 {
				return false
			}
		}
	}
	return true
}

func isDigitRun(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
