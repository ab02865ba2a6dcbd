// Package recipe turns raw recipe data into parsed, scalable recipes and
// provides the built-in offline recipe source.
package recipe

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/forkcook/internal/domain"
)

// parenthetical matches a "(...)" aside and the spaces around it.
var parenthetical = regexp.MustCompile(` *\([^)]*\) *`)

// CleanLine lower-cases a raw ingredient line, normalizes its units and
// strips parenthetical asides.
func CleanLine(raw string) string {
	line := NormalizeUnits(strings.ToLower(raw))
	line = parenthetical.ReplaceAllString(line, " ")
	return strings.Join(strings.Fields(line), " ")
}

// ParseLine decomposes one raw ingredient line into quantity, unit and
// description. It returns a *domain.ParseError when the tokens in front of
// the unit are not a numeric expression.
func ParseLine(raw string) (domain.Ingredient, error) {
	line := CleanLine(raw)
	tokens := strings.Fields(line)

	unitIdx := -1
	for i, tok := range tokens {
		if IsUnit(tok) {
			unitIdx = i
			break
		}
	}

	switch {
	case unitIdx >= 0:
		qty := 1.0
		if unitIdx > 0 {
			expr := quantityExpr(tokens[:unitIdx])
			v, err := EvalQuantity(expr)
			if err != nil {
				return domain.Ingredient{}, &domain.ParseError{Line: raw, Expr: strings.Join(tokens[:unitIdx], " "), Err: err}
			}
			qty = v
		}
		return domain.Ingredient{
			Quantity:    qty,
			Unit:        tokens[unitIdx],
			Description: strings.Join(tokens[unitIdx+1:], " "),
		}, nil

	case len(tokens) > 0 && isQuantityToken(tokens[0]):
		qty, _ := EvalQuantity(quantityExpr(tokens[:1]))
		return domain.Ingredient{
			Quantity:    qty,
			Description: strings.Join(tokens[1:], " "),
		}, nil

	default:
		return domain.Ingredient{Quantity: 1, Description: line}, nil
	}
}

// quantityExpr turns the tokens in front of a unit into a sum expression.
// A hyphen inside a token is mixed-number notation ("4-1/2") and means plus.
func quantityExpr(tokens []string) string {
	terms := make([]string, len(tokens))
	for i, tok := range tokens {
		terms[i] = strings.ReplaceAll(tok, "-", "+")
	}
	return strings.Join(terms, "+")
}

// isQuantityToken reports whether a leading token without a following unit
// should be read as a count: an integer, or a fraction or mixed number.
func isQuantityToken(tok string) bool {
	if tok == "" || tok[0] < '0' || tok[0] > '9' {
		return false
	}
	_, err := EvalQuantity(quantityExpr([]string{tok}))
	return err == nil
}
