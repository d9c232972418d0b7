package config

import (
	"fmt"
	"sort"

	"github.com/agbru/fibtime/internal/bounds"
)

// Variant names.
const (
	// VariantBounded shows "[n = 1-40]" and enforces the ceiling.
	VariantBounded = "bounded"
	// VariantUnbounded shows "[1-50]" and accepts any integer.
	VariantUnbounded = "unbounded"
)

// Presets maps variant names to their ceiling.
var Presets = map[string]bounds.Ceiling{
	VariantBounded:   {Max: 40, Enforce: true},
	VariantUnbounded: {Max: 50, Enforce: false},
}

// VariantNames returns the preset names in sorted order.
func VariantNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PromptFor renders the input prompt. An enforced ceiling is written as
// "[n = 1-MAX]", a documentation-only one as "[1-MAX]".
func PromptFor(c bounds.Ceiling) string {
	if c.Enforce {
		return fmt.Sprintf("Please input a number: [n = 1-%d] ? ", c.Max)
	}
	return fmt.Sprintf("Please input a number: [1-%d] ? ", c.Max)
}
