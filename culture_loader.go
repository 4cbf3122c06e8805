package numstring

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/default_cultures.yaml
var defaultCulturesYAML []byte

// CultureDefinition is the on-disk shape of one culture entry.
type CultureDefinition struct {
	Thousand string `json:"thousand" yaml:"thousand" toml:"thousand"`
	Decimal  string `json:"decimal" yaml:"decimal" toml:"decimal"`
	Grouping string `json:"grouping,omitempty" yaml:"grouping,omitempty" toml:"grouping,omitempty"`
}

// settings validates the definition and builds settings from it.
func (d CultureDefinition) settings() (NumberCultureSettings, error) {
	settings, err := NewNumberCultureSettings(Separator(d.Thousand), Separator(d.Decimal))
	if err != nil {
		return NumberCultureSettings{}, err
	}

	switch strings.ToLower(strings.TrimSpace(d.Grouping)) {
	case "", "three-block":
		return settings, nil
	case "two-block":
		return settings.WithGrouping(GroupTwoBlock), nil
	default:
		return NumberCultureSettings{}, fmt.Errorf("numstring: unknown grouping %q", d.Grouping)
	}
}

// CultureSet is an immutable snapshot of named separator settings, keyed by
// normalized language tag. Lookups fall back along the tag's parent chain,
// so a set defining "de" also answers "de-AT".
type CultureSet struct {
	settings map[string]NumberCultureSettings
}

// NewCultureSet validates every definition and snapshots the result.
func NewCultureSet(definitions map[string]CultureDefinition) (*CultureSet, error) {
	set := &CultureSet{settings: make(map[string]NumberCultureSettings, len(definitions))}

	for tag, definition := range definitions {
		normalized := normalizeTag(tag)
		if normalized == "" {
			return nil, fmt.Errorf("numstring: empty culture tag")
		}
		settings, err := definition.settings()
		if err != nil {
			return nil, fmt.Errorf("numstring: culture %q: %w", tag, err)
		}
		set.settings[normalized] = settings
	}

	return set, nil
}

// Settings resolves a tag to its settings, walking the parent chain when the
// exact tag is absent.
func (s *CultureSet) Settings(tag string) (NumberCultureSettings, bool) {
	if s == nil {
		return NumberCultureSettings{}, false
	}

	normalized := normalizeTag(tag)
	if settings, ok := s.settings[normalized]; ok {
		return settings, true
	}
	for _, parent := range tagParentChain(normalized) {
		if settings, ok := s.settings[parent]; ok {
			return settings, true
		}
	}
	return NumberCultureSettings{}, false
}

// Has reports whether the exact tag is defined.
func (s *CultureSet) Has(tag string) bool {
	if s == nil {
		return false
	}
	_, ok := s.settings[normalizeTag(tag)]
	return ok
}

// Tags lists the defined tags, sorted.
func (s *CultureSet) Tags() []string {
	if s == nil || len(s.settings) == 0 {
		return nil
	}
	tags := make([]string, 0, len(s.settings))
	for tag := range s.settings {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// CultureFileLoader builds a CultureSet from culture files layered over the
// embedded defaults. Later files win on tag collisions.
type CultureFileLoader struct {
	paths        []string
	skipDefaults bool
}

// NewCultureFileLoader creates a loader over the given files.
func NewCultureFileLoader(paths ...string) *CultureFileLoader {
	return &CultureFileLoader{paths: append([]string(nil), paths...)}
}

// WithoutDefaults drops the embedded default cultures, leaving only the
// configured files.
func (l *CultureFileLoader) WithoutDefaults() *CultureFileLoader {
	if l == nil {
		return l
	}
	l.skipDefaults = true
	return l
}

// Load reads, decodes and merges every configured file.
func (l *CultureFileLoader) Load() (*CultureSet, error) {
	definitions := make(map[string]CultureDefinition)

	if l == nil || !l.skipDefaults {
		base, err := decodeCulturesYAML(defaultCulturesYAML)
		if err != nil {
			return nil, fmt.Errorf("numstring: parse default cultures: %w", err)
		}
		mergeCultureDefinitions(definitions, base)
	}

	if l != nil {
		for _, path := range l.paths {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("numstring: read %s: %w", path, err)
			}
			src, err := decodeCultureFile(path, data)
			if err != nil {
				return nil, fmt.Errorf("numstring: decode %s: %w", path, err)
			}
			mergeCultureDefinitions(definitions, src)
		}
	}

	return NewCultureSet(definitions)
}

// cultureFile is the wrapper document shape. Files may also hold the culture
// map directly at the top level.
type cultureFile struct {
	Cultures map[string]CultureDefinition `json:"cultures" yaml:"cultures" toml:"cultures"`
}

func decodeCultureFile(path string, data []byte) (map[string]CultureDefinition, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		return decodeCulturesJSON(data)
	case ".yaml", ".yml":
		return decodeCulturesYAML(data)
	case ".toml":
		return decodeCulturesTOML(data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeCulturesJSON(data []byte) (map[string]CultureDefinition, error) {
	var wrapper cultureFile
	if err := json.Unmarshal(data, &wrapper); err == nil && len(wrapper.Cultures) > 0 {
		return wrapper.Cultures, nil
	}

	var direct map[string]CultureDefinition
	if err := json.Unmarshal(data, &direct); err != nil {
		return nil, err
	}
	return direct, nil
}

func decodeCulturesYAML(data []byte) (map[string]CultureDefinition, error) {
	var wrapper cultureFile
	if err := yaml.Unmarshal(data, &wrapper); err == nil && len(wrapper.Cultures) > 0 {
		return wrapper.Cultures, nil
	}

	var direct map[string]CultureDefinition
	if err := yaml.Unmarshal(data, &direct); err != nil {
		return nil, err
	}
	return direct, nil
}

func decodeCulturesTOML(data []byte) (map[string]CultureDefinition, error) {
	var wrapper cultureFile
	if err := toml.Unmarshal(data, &wrapper); err == nil && len(wrapper.Cultures) > 0 {
		return wrapper.Cultures, nil
	}

	var direct map[string]CultureDefinition
	if err := toml.Unmarshal(data, &direct); err != nil {
		return nil, err
	}
	return direct, nil
}

func mergeCultureDefinitions(dst, src map[string]CultureDefinition) {
	for tag, definition := range src {
		dst[tag] = definition
	}
}
