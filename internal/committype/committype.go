// Package committype defines the catalog of commit types offered by the
// guided prompt. The catalog is an immutable, ordered table injected into the
// workflow at startup; projects may replace it via configuration.
package committype

import (
	"fmt"
	"strings"
)

// Type describes one selectable commit type.
type Type struct {
	Label       string `mapstructure:"label" yaml:"label"`
	Symbol      string `mapstructure:"symbol" yaml:"symbol"`
	Description string `mapstructure:"description" yaml:"description"`
}

// Catalog is an ordered set of commit types. The order is the display order.
type Catalog struct {
	types []Type
}

// Default returns the standard catalog. Each call returns a fresh value so
// callers cannot mutate shared state.
func Default() Catalog {
	return Catalog{types: []Type{
		{Label: "feat", Symbol: "✨", Description: "A new feature"},
		{Label: "fix", Symbol: "🐛", Description: "A bug fix"},
		{Label: "refactor", Symbol: "♻️", Description: "A code change that neither fixes a bug nor adds a feature"},
		{Label: "chore", Symbol: "🔧", Description: "Changes to the build process or auxiliary tools"},
		{Label: "docs", Symbol: "📝", Description: "Documentation only changes"},
		{Label: "style", Symbol: "💄", Description: "Changes that do not affect the meaning of the code"},
		{Label: "test", Symbol: "✅", Description: "Adding missing tests or correcting existing tests"},
	}}
}

// New builds a catalog from the given types, validating that every entry has
// a label and a symbol and that labels are unique.
func New(types []Type) (Catalog, error) {
	if len(types) == 0 {
		return Catalog{}, fmt.Errorf("commit type catalog cannot be empty")
	}

	seen := make(map[string]struct{}, len(types))
	for i, t := range types {
		if strings.TrimSpace(t.Label) == "" {
			return Catalog{}, fmt.Errorf("commit type %d has an empty label", i)
		}
		if strings.TrimSpace(t.Symbol) == "" {
			return Catalog{}, fmt.Errorf("commit type %q has an empty symbol", t.Label)
		}
		if _, ok := seen[t.Label]; ok {
			return Catalog{}, fmt.Errorf("duplicate commit type %q", t.Label)
		}
		seen[t.Label] = struct{}{}
	}

	copied := make([]Type, len(types))
	copy(copied, types)
	return Catalog{types: copied}, nil
}

// Types returns the catalog entries in display order.
func (c Catalog) Types() []Type {
	copied := make([]Type, len(c.types))
	copy(copied, c.types)
	return copied
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.types)
}

// Lookup returns the type for label. The prompt only offers catalog values,
// so a miss indicates a programming error upstream.
func (c Catalog) Lookup(label string) (Type, bool) {
	for _, t := range c.types {
		if t.Label == label {
			return t, true
		}
	}
	return Type{}, false
}

// LabelWidth returns the length in runes of the longest label.
func (c Catalog) LabelWidth() int {
	width := 0
	for _, t := range c.types {
		if n := len([]rune(t.Label)); n > width {
			width = n
		}
	}
	return width
}

// Row renders one aligned prompt row for t, padding the label to width so the
// catalog displays as a table.
func Row(t Type, width int) string {
	return fmt.Sprintf("- %-*s %s %s", width, t.Label, t.Symbol, t.Description)
}

// Rows renders every catalog entry with labels padded to a common width.
func (c Catalog) Rows() []string {
	width := c.LabelWidth()
	rows := make([]string, 0, len(c.types))
	for _, t := range c.types {
		rows = append(rows, Row(t, width))
	}
	return rows
}
