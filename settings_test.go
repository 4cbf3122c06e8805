package numstring

import (
	"errors"
	"testing"
)

func TestNewNumberCultureSettings(t *testing.T) {
	settings, err := NewNumberCultureSettings(SeparatorComma, SeparatorDot)
	if err != nil {
		t.Fatalf("NewNumberCultureSettings: %v", err)
	}
	if settings.ThousandSeparator() != SeparatorComma || settings.DecimalSeparator() != SeparatorDot {
		t.Fatalf("settings = %+v", settings)
	}
	if settings.Grouping() != GroupThreeBlock {
		t.Fatalf("Grouping() = %v want GroupThreeBlock", settings.Grouping())
	}
}

func TestNewNumberCultureSettingsRejects(t *testing.T) {
	tests := []struct {
		name     string
		thousand Separator
		decimal  Separator
	}{
		{name: "equal separators", thousand: SeparatorComma, decimal: SeparatorComma},
		{name: "empty decimal", thousand: SeparatorComma, decimal: SeparatorNone},
		{name: "multi rune thousand", thousand: Separator("🦀🦀"), decimal: SeparatorDot},
		{name: "multi rune decimal", thousand: SeparatorComma, decimal: Separator("ab")},
		{name: "digit thousand", thousand: Separator("5"), decimal: SeparatorDot},
		{name: "sign decimal", thousand: SeparatorComma, decimal: Separator("-")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNumberCultureSettings(tc.thousand, tc.decimal)
			if !errors.Is(err, ErrInvalidSeparators) {
				t.Fatalf("err = %v want ErrInvalidSeparators", err)
			}
		})
	}
}

func TestSettingsAllowNoThousandSeparator(t *testing.T) {
	settings, err := NewNumberCultureSettings(SeparatorNone, SeparatorDot)
	if err != nil {
		t.Fatalf("NewNumberCultureSettings: %v", err)
	}
	if settings.ThousandSeparator() != SeparatorNone {
		t.Fatalf("ThousandSeparator() = %q", settings.ThousandSeparator())
	}
}

func TestWithGrouping(t *testing.T) {
	base := MustNumberCultureSettings(SeparatorComma, SeparatorDot)
	indian := base.WithGrouping(GroupTwoBlock)

	if base.Grouping() != GroupThreeBlock {
		t.Fatal("WithGrouping mutated the receiver")
	}
	if indian.Grouping() != GroupTwoBlock {
		t.Fatalf("Grouping() = %v", indian.Grouping())
	}
}

func TestZeroSettingsInvalid(t *testing.T) {
	var settings NumberCultureSettings
	if err := settings.Validate(); !errors.Is(err, ErrInvalidSeparators) {
		t.Fatalf("Validate() = %v want ErrInvalidSeparators", err)
	}
}

func TestCustomSeparator(t *testing.T) {
	sep := CustomSeparator('🦀')
	if sep.String() != "🦀" {
		t.Fatalf("String() = %q", sep.String())
	}

	settings, err := NewNumberCultureSettings(sep, SeparatorDot)
	if err != nil {
		t.Fatalf("NewNumberCultureSettings: %v", err)
	}
	if settings.ThousandSeparator() != sep {
		t.Fatalf("ThousandSeparator() = %q", settings.ThousandSeparator())
	}
}

func TestGroupingString(t *testing.T) {
	if GroupThreeBlock.String() != "three-block" || GroupTwoBlock.String() != "two-block" {
		t.Fatalf("Grouping strings = %q, %q", GroupThreeBlock, GroupTwoBlock)
	}
}
