package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrServingFloor = errors.New("servings already at minimum")
	ErrNoRecipe     = errors.New("no recipe is open")
	ErrNoSearch     = errors.New("no search has been run")
)

// ParseError reports an ingredient line whose quantity expression is not a
// sum of numbers and fractions.
type ParseError struct {
	Line string
	Expr string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: quantity %q: %v", e.Line, e.Expr, e.Err)
	}
	return fmt.Sprintf("parse %q: quantity %q", e.Line, e.Expr)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FetchError wraps any network or decoding failure talking to a recipe API.
type FetchError struct {
	Op  string // "search" or "get"
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
