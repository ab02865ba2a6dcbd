package recipe

import (
	"regexp"
	"strings"
)

// unitAlias maps a long-form unit name to its canonical abbreviation.
type unitAlias struct {
	long  string
	short string
}

// unitAliases is ordered so plurals are tried before their singular prefix.
var unitAliases = []unitAlias{
	{"tablespoons", "tbsp"},
	{"tablespoon", "tbsp"},
	{"ounces", "oz"},
	{"ounce", "oz"},
	{"teaspoons", "tsp"},
	{"teaspoon", "tsp"},
	{"cups", "cup"},
	{"pounds", "pound"},
}

// canonicalUnits is the vocabulary the line parser recognises as a unit token.
var canonicalUnits = map[string]bool{
	"tbsp":  true,
	"oz":    true,
	"tsp":   true,
	"cup":   true,
	"pound": true,
	"kg":    true,
	"g":     true,
}

// longUnitPattern matches any long form. Go's regexp picks the leftmost
// alternative first, so the table order carries over.
var longUnitPattern = func() *regexp.Regexp {
	alts := make([]string, len(unitAliases))
	for i, a := range unitAliases {
		alts[i] = regexp.QuoteMeta(a.long)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(alts, "|"))
}()

// NormalizeUnits replaces every long-form unit name in line with its
// canonical abbreviation, ignoring case. The rest of the line is untouched.
func NormalizeUnits(line string) string {
	return longUnitPattern.ReplaceAllStringFunc(line, func(m string) string {
		lower := strings.ToLower(m)
		for _, a := range unitAliases {
			if a.long == lower {
				return a.short
			}
		}
		return m
	})
}

// IsUnit reports whether tok is a canonical unit abbreviation.
func IsUnit(tok string) bool {
	return canonicalUnits[tok]
}
