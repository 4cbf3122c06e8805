package numstring

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeTag canonicalizes a culture tag: trims whitespace, swaps
// underscores for hyphens and lowercases the language part while keeping the
// region uppercased when x/text can parse it.
func normalizeTag(tag string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if cleaned == "" {
		return ""
	}
	if parsed, err := language.Parse(cleaned); err == nil {
		return parsed.String()
	}
	return cleaned
}

func tagParent(tag string) string {
	if tag == "" {
		return ""
	}

	parsed, err := language.Parse(tag)
	if err == nil {
		parent := parsed.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(tag, "-"); idx > 0 {
		return tag[:idx]
	}

	return ""
}

// tagParentChain lists a tag's parents from closest to root, so lookups can
// fall back from de-CH to de.
func tagParentChain(tag string) []string {
	if tag == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if parsed, err := language.Parse(tag); err == nil {
		for parent := parsed.Parent(); parent != language.Und; parent = parent.Parent() {
			value := parent.String()
			if value == "" || value == "und" {
				break
			}
			if _, exists := seen[value]; exists {
				break
			}
			seen[value] = struct{}{}
			chain = append(chain, value)
		}
	}

	for current := tagParent(tag); current != ""; current = tagParent(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
