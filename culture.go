package numstring

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// Culture names a built-in separator convention. The constants cover the
// conventions the library ships with; CultureSet handles everything else.
type Culture string

const (
	// CultureEnglish groups with commas and marks decimals with a dot:
	// 1,000.25
	CultureEnglish Culture = "en"

	// CultureFrench groups with spaces and marks decimals with a comma:
	// 1 000,25
	CultureFrench Culture = "fr"

	// CultureItalian groups with dots and marks decimals with a comma:
	// 1.000,25
	CultureItalian Culture = "it"

	// CultureIndian uses English symbols with two-block grouping:
	// 10,00,000.25
	CultureIndian Culture = "en-IN"
)

// DefaultCulture backs every entry point that takes no culture.
const DefaultCulture = CultureEnglish

var cultureSettings = map[Culture]NumberCultureSettings{
	CultureEnglish: {thousand: SeparatorComma, decimal: SeparatorDot, grouping: GroupThreeBlock},
	CultureFrench:  {thousand: SeparatorSpace, decimal: SeparatorComma, grouping: GroupThreeBlock},
	CultureItalian: {thousand: SeparatorDot, decimal: SeparatorComma, grouping: GroupThreeBlock},
	CultureIndian:  {thousand: SeparatorComma, decimal: SeparatorDot, grouping: GroupTwoBlock},
}

// cultureTags maps normalized language tags onto built-in cultures before the
// matcher gets involved.
var cultureTags = map[string]Culture{
	"en":    CultureEnglish,
	"fr":    CultureFrench,
	"it":    CultureItalian,
	"en-IN": CultureIndian,
	"hi":    CultureIndian,
	"hi-IN": CultureIndian,
}

var (
	cultureMatcher = language.NewMatcher([]language.Tag{
		language.English,
		language.French,
		language.Italian,
		language.MustParse("hi"),
	})
	matcherCultures = []Culture{CultureEnglish, CultureFrench, CultureItalian, CultureIndian}
)

func (c Culture) String() string {
	return string(c)
}

// Settings resolves the culture to its separator settings.
func (c Culture) Settings() (NumberCultureSettings, error) {
	settings, ok := cultureSettings[c]
	if !ok {
		return NumberCultureSettings{}, fmt.Errorf("%w: %q", ErrCultureNotFound, string(c))
	}
	return settings, nil
}

// Cultures lists the built-in cultures in stable order.
func Cultures() []Culture {
	out := make([]Culture, 0, len(cultureSettings))
	for culture := range cultureSettings {
		out = append(out, culture)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseCulture resolves a BCP 47 language tag onto a built-in culture.
// Regional variants fall back along the tag's parent chain, so fr-CA resolves
// to CultureFrench. Unknown tags fail with ErrCultureNotFound.
func ParseCulture(tag string) (Culture, error) {
	normalized := normalizeTag(tag)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty tag", ErrCultureNotFound)
	}

	if culture, ok := cultureTags[normalized]; ok {
		return culture, nil
	}

	for _, parent := range tagParentChain(normalized) {
		if culture, ok := cultureTags[parent]; ok {
			return culture, nil
		}
	}

	if parsed, err := language.Parse(normalized); err == nil {
		if _, idx, conf := cultureMatcher.Match(parsed); conf >= language.High {
			return matcherCultures[idx], nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrCultureNotFound, tag)
}
