package matchbook

import (
	"fmt"
	"sort"
	"strings"
)

// Keyword is the stateful builder node for one searchable field, or for a
// composite expression produced by combining two different nodes.
//
// A node obtained from a session is the sole entry point for building
// filters against that field. Comparison methods append to the cache
// buffer; And/Or merge buffers (same node) or produce a fresh composite
// node (different nodes); String/Render externalize the result.
type Keyword struct {
	name    string
	state   []string
	cache   []string
	classes map[string]struct{}
	negated bool
	err     error
}

// New creates a prototype node for the named field with clean buffers.
func New(name string) *Keyword {
	return &Keyword{
		name:    name,
		classes: map[string]struct{}{name: {}},
	}
}

// newComposite creates an anonymous node holding one settled expression.
// Composite nodes have no field name of their own.
func newComposite(settled string, classes map[string]struct{}) *Keyword {
	return &Keyword{
		state:   []string{settled},
		classes: classes,
	}
}

// Name returns the field name, or "" for composite nodes.
func (k *Keyword) Name() string { return k.name }

// Err returns the first error recorded by a builder method, if any.
func (k *Keyword) Err() error { return k.err }

// Pending reports whether the node holds any buffered expression, settled
// or not.
func (k *Keyword) Pending() bool {
	return len(k.state)+len(k.cache) > 0
}

// Classes returns the sorted names of all fields that contributed to this
// node's current expression.
func (k *Keyword) Classes() []string {
	names := make([]string, 0, len(k.classes))
	for n := range k.classes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AtMost appends the upper-bound comparison name(*value) to the cache.
func (k *Keyword) AtMost(v Value) *Keyword {
	if k.err != nil {
		return k
	}
	k.settleNegation()
	k.cache = append(k.cache, fmt.Sprintf("%s(*%s)", k.name, render(v)))
	return k
}

// AtLeast appends the lower-bound comparison name(value*) to the cache.
func (k *Keyword) AtLeast(v Value) *Keyword {
	if k.err != nil {
		return k
	}
	k.settleNegation()
	k.cache = append(k.cache, fmt.Sprintf("%s(%s*)", k.name, render(v)))
	return k
}

// Contains appends the substring comparison name(*'value'*) to the cache.
// Only text values are accepted; any other variant records ErrTextRequired
// and leaves the buffers untouched.
func (k *Keyword) Contains(v Value) *Keyword {
	if k.err != nil {
		return k
	}
	if !isText(v) {
		k.err = fmt.Errorf("%s: %w (got %T)", k.name, ErrTextRequired, v)
		return k
	}
	k.settleNegation()
	k.cache = append(k.cache, fmt.Sprintf("%s(*%s*)", k.name, render(v)))
	return k
}

// Equals appends the exact-match comparison name(value) to the cache.
func (k *Keyword) Equals(v Value) *Keyword {
	if k.err != nil {
		return k
	}
	k.settleNegation()
	k.cache = append(k.cache, fmt.Sprintf("%s(%s)", k.name, render(v)))
	return k
}

// And combines this node with other using the AFLUX conjunction token.
func (k *Keyword) And(other *Keyword) *Keyword {
	return k.combine(other, ",")
}

// Or combines this node with other using the AFLUX disjunction token.
func (k *Keyword) Or(other *Keyword) *Keyword {
	return k.combine(other, ":")
}

// combine implements boolean combination. Two cases, keyed on pointer
// identity:
//
// Self-combination (other is the same node): the caller narrowed one field
// with two clauses, e.g. AtLeast then AtMost on the same node. Merge the
// buffers per the valid patterns and settle into state:
//
//	cache=2            -> state gains cache[0]+token+cache[1]
//	cache=1, state=1   -> state becomes cache[0]+token+(state[0])
//	state=2            -> state becomes (state[0])+token+(state[1])
//
// Any other buffer shape means the chain is unbalanced; the error is
// recorded and the buffers are left exactly as they were.
//
// Cross-node combination: each side must reduce to exactly one resolved
// string. Resolved operands that already contain a combination token are
// wrapped in parentheses to preserve precedence. A brand-new composite node
// is returned; both operands are left untouched.
func (k *Keyword) combine(other *Keyword, token string) *Keyword {
	if k.err != nil {
		return k
	}

	if other == k {
		k.settleNegation()
		switch {
		case len(k.cache) == 2:
			k.state = append(k.state, k.cache[0]+token+k.cache[1])
		case len(k.cache) == 1 && len(k.state) == 1:
			k.state = []string{k.cache[0] + token + "(" + k.state[0] + ")"}
		case len(k.state) == 2:
			k.state = []string{"(" + k.state[0] + ")" + token + "(" + k.state[1] + ")"}
		default:
			k.err = fmt.Errorf("%s: %w", k.display(), ErrInconsistentBuffers)
			return k
		}
		k.cache = nil
		return k
	}

	if other.err != nil {
		return other
	}

	left, err := k.resolved()
	if err != nil {
		return &Keyword{err: fmt.Errorf("left operand %s: %w", k.display(), err)}
	}
	right, err := other.resolved()
	if err != nil {
		return &Keyword{err: fmt.Errorf("right operand %s: %w", other.display(), err)}
	}

	classes := make(map[string]struct{}, len(k.classes)+len(other.classes))
	for n := range k.classes {
		classes[n] = struct{}{}
	}
	for n := range other.classes {
		classes[n] = struct{}{}
	}
	return newComposite(left+token+right, classes)
}

// resolved reduces the node to its single pending expression, applying any
// pending negation and wrapping composites in parentheses. The node itself
// is not mutated.
func (k *Keyword) resolved() (string, error) {
	var s string
	switch {
	case len(k.state) == 1 && len(k.cache) == 0:
		s = k.state[0]
	case len(k.state) == 0 && len(k.cache) == 1:
		s = k.cache[0]
	default:
		return "", ErrUnresolvedOperand
	}
	s = toggleMarker(s, k.negated)
	if strings.ContainsAny(s, ",:") {
		s = "(" + s + ")"
	}
	return s, nil
}

// Not toggles the polarity of the node's single pending expression. The
// node must hold exactly one entry across both buffers. Negating twice
// restores the original expression.
//
// Negation is only meaningful for a single comparison. On a settled
// composite the marker lands on the first comparison alone, which is
// rarely the intended reading; negate before combining instead.
func (k *Keyword) Not() *Keyword {
	if k.err != nil {
		return k
	}
	if len(k.state)+len(k.cache) != 1 {
		k.err = fmt.Errorf("%s: %w", k.display(), ErrNegateNonSingular)
		return k
	}
	k.negated = !k.negated
	return k
}

// settleNegation bakes a pending negation into the stored entry before the
// buffers change shape. After this, the marker travels with the text like
// any other comparison content.
func (k *Keyword) settleNegation() {
	if !k.negated {
		return
	}
	switch {
	case len(k.state) == 1 && len(k.cache) == 0:
		k.state[0] = toggleMarker(k.state[0], true)
	case len(k.state) == 0 && len(k.cache) == 1:
		k.cache[0] = toggleMarker(k.cache[0], true)
	}
	k.negated = false
}

// toggleMarker inserts the negation marker immediately after the first
// opening parenthesis, or removes it when already present, so negation
// toggles instead of accumulating.
func toggleMarker(s string, negated bool) string {
	if !negated {
		return s
	}
	i := strings.Index(s, "(")
	if i < 0 {
		return s
	}
	if strings.HasPrefix(s[i+1:], "!") {
		return s[:i+1] + s[i+2:]
	}
	return s[:i+1] + "!" + s[i+1:]
}

// String renders the node: the single settled state entry if one exists,
// else the single pending cache entry, else the bare field name. The bare
// name is the form used for untouched prototype nodes (e.g. when a keyword
// is selected as a returned property rather than filtered on).
func (k *Keyword) String() string {
	switch {
	case len(k.state) == 1:
		return toggleMarker(k.state[0], k.negated)
	case len(k.cache) == 1:
		return toggleMarker(k.cache[0], k.negated)
	default:
		return k.name
	}
}

// Render returns the wire form of the node, surfacing any error recorded
// during construction. This is the only sanctioned path to the transport
// layer.
func (k *Keyword) Render() (string, error) {
	if k.err != nil {
		return "", k.err
	}
	return k.String(), nil
}

// Reset restores the node to its immediately-post-construction condition:
// empty buffers, no pending negation, no recorded error. The contributing
// field set is untouched.
func (k *Keyword) Reset() {
	k.state = nil
	k.cache = nil
	k.negated = false
	k.err = nil
}

// display names the node in error messages.
func (k *Keyword) display() string {
	if k.name != "" {
		return k.name
	}
	return "composite"
}
