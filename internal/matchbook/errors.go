package matchbook

import "errors"

// Sentinel errors for expression construction.
var (
	// ErrTextRequired indicates Contains was given a non-text value.
	// Substring matching is only defined for text keywords.
	ErrTextRequired = errors.New("substring match requires a text value")

	// ErrInconsistentBuffers indicates a self-combination was attempted
	// while the node's buffers match none of the valid merge patterns.
	// The usual cause is unbalanced chaining of comparison operators.
	ErrInconsistentBuffers = errors.New("inconsistent operators; check your parentheses")

	// ErrUnresolvedOperand indicates a cross-node combination where an
	// operand could not be reduced to exactly one resolved expression,
	// i.e. a combinator was applied to a half-built node.
	ErrUnresolvedOperand = errors.New("operand does not reduce to a single expression")

	// ErrNegateNonSingular indicates Not was called on a node that does
	// not hold exactly one pending expression.
	ErrNegateNonSingular = errors.New("negation requires exactly one pending expression")
)
