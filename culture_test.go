package numstring

import (
	"errors"
	"testing"
)

func TestCultureSettings(t *testing.T) {
	tests := []struct {
		culture  Culture
		thousand Separator
		decimal  Separator
		grouping Grouping
	}{
		{culture: CultureEnglish, thousand: SeparatorComma, decimal: SeparatorDot, grouping: GroupThreeBlock},
		{culture: CultureFrench, thousand: SeparatorSpace, decimal: SeparatorComma, grouping: GroupThreeBlock},
		{culture: CultureItalian, thousand: SeparatorDot, decimal: SeparatorComma, grouping: GroupThreeBlock},
		{culture: CultureIndian, thousand: SeparatorComma, decimal: SeparatorDot, grouping: GroupTwoBlock},
	}

	for _, tc := range tests {
		settings, err := tc.culture.Settings()
		if err != nil {
			t.Fatalf("Settings(%v): %v", tc.culture, err)
		}
		if settings.ThousandSeparator() != tc.thousand {
			t.Fatalf("%v thousand = %q want %q", tc.culture, settings.ThousandSeparator(), tc.thousand)
		}
		if settings.DecimalSeparator() != tc.decimal {
			t.Fatalf("%v decimal = %q want %q", tc.culture, settings.DecimalSeparator(), tc.decimal)
		}
		if settings.Grouping() != tc.grouping {
			t.Fatalf("%v grouping = %v want %v", tc.culture, settings.Grouping(), tc.grouping)
		}
	}
}

func TestCultureSettingsUnknown(t *testing.T) {
	_, err := Culture("xx").Settings()
	if !errors.Is(err, ErrCultureNotFound) {
		t.Fatalf("err = %v want ErrCultureNotFound", err)
	}
}

func TestDefaultCulture(t *testing.T) {
	if DefaultCulture != CultureEnglish {
		t.Fatalf("DefaultCulture = %v", DefaultCulture)
	}
}

func TestCultures(t *testing.T) {
	cultures := Cultures()
	if len(cultures) != 4 {
		t.Fatalf("Cultures() = %v", cultures)
	}
	for i := 1; i < len(cultures); i++ {
		if cultures[i-1] >= cultures[i] {
			t.Fatalf("Cultures() not sorted: %v", cultures)
		}
	}
}

func TestParseCulture(t *testing.T) {
	tests := []struct {
		tag  string
		want Culture
	}{
		{tag: "en", want: CultureEnglish},
		{tag: "EN", want: CultureEnglish},
		{tag: "en-US", want: CultureEnglish},
		{tag: "en_us", want: CultureEnglish},
		{tag: "en-GB", want: CultureEnglish},
		{tag: "fr", want: CultureFrench},
		{tag: "fr-CA", want: CultureFrench},
		{tag: "it", want: CultureItalian},
		{tag: "it-CH", want: CultureItalian},
		{tag: "en-IN", want: CultureIndian},
		{tag: "hi", want: CultureIndian},
		{tag: "hi-IN", want: CultureIndian},
	}

	for _, tc := range tests {
		got, err := ParseCulture(tc.tag)
		if err != nil {
			t.Fatalf("ParseCulture(%q): %v", tc.tag, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCulture(%q) = %v want %v", tc.tag, got, tc.want)
		}
	}
}

func TestParseCultureUnknown(t *testing.T) {
	for _, tag := range []string{"", "de", "ja-JP", "not a tag"} {
		if got, err := ParseCulture(tag); !errors.Is(err, ErrCultureNotFound) {
			t.Fatalf("ParseCulture(%q) = %v, %v want ErrCultureNotFound", tag, got, err)
		}
	}
}
