package recipe

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	errEmptyTerm    = errors.New("empty term")
	errDivideByZero = errors.New("division by zero")
)

// EvalQuantity evaluates a quantity expression: a sum of decimal literals
// and fractions, e.g. "4+1/2" or "1 + 3/4". Only '+', '/', digits, a
// decimal point and spaces are accepted.
func EvalQuantity(expr string) (float64, error) {
	p := &quantityParser{src: expr}
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return v, nil
}

// quantityParser is a recursive-descent evaluator for
//
//	sum    = term { "+" term }
//	term   = number [ "/" number ]
//	number = digit { digit } [ "." { digit } ] | "." digit { digit }
type quantityParser struct {
	src string
	pos int
}

func (p *quantityParser) sum() (float64, error) {
	total, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != '+' {
			return total, nil
		}
		p.pos++
		v, err := p.term()
		if err != nil {
			return 0, err
		}
		total += v
	}
}

func (p *quantityParser) term() (float64, error) {
	num, err := p.number()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '/' {
		return num, nil
	}
	p.pos++
	den, err := p.number()
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, errDivideByZero
	}
	return num / den, nil
}

func (p *quantityParser) number() (float64, error) {
	p.skipSpace()
	start := p.pos
	digits := 0
	dot := false
scan:
	for ; p.pos < len(p.src); p.pos++ {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			break scan
		}
	}
	if digits == 0 {
		if p.pos < len(p.src) {
			return 0, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
		}
		return 0, errEmptyTerm
	}
	return strconv.ParseFloat(p.src[start:p.pos], 64)
}

func (p *quantityParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}
