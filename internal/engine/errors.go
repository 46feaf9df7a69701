package engine

import "errors"

var (
	// ErrWeddingTypeNotFound is returned when no rule data exists under any
	// normalization of the requested wedding type.
	ErrWeddingTypeNotFound = errors.New("wedding type not found")

	// ErrNoRuleForCombination is returned when the wedding type resolves but
	// no color rule exists for any resolved color, even after fallback.
	ErrNoRuleForCombination = errors.New("no rule for wedding type and colour combination")

	// ErrInvalidColorExpression is returned for malformed hex color strings.
	ErrInvalidColorExpression = errors.New("invalid color expression")
)
