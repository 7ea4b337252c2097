package query

import (
	"fmt"
	"strings"

	"github.com/aflowkit/aflux/internal/catalog"
	"github.com/aflowkit/aflux/internal/matchbook"
)

// Query is a complete AFLUX request under construction.
type Query struct {
	// Filter is the matchbook expression narrowing the search.
	// Nil means no filter.
	Filter *matchbook.Keyword

	// Select names the keywords whose values the response should carry
	// in addition to the mandatory set. Order is preserved on the wire.
	Select []string

	// Directives are rendered request directives, emitted last.
	Directives []Directive
}

// Render produces the full request string: filter, then selected
// properties, then directives, joined by the conjunction token. A query
// with none of the three is an error; an empty request asks for nothing.
func (q *Query) Render() (string, error) {
	var parts []string

	if q.Filter != nil {
		s, err := q.Filter.Render()
		if err != nil {
			return "", fmt.Errorf("render filter: %w", err)
		}
		// A top-level disjunction binds looser than the comma joining
		// the request parts; wrap it so the filter stays one operand.
		if (len(q.Select) > 0 || len(q.Directives) > 0) && topLevelDisjunction(s) {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
	}

	for _, name := range q.Select {
		if _, ok := catalog.Lookup(name); !ok {
			return "", fmt.Errorf("select: unknown keyword %q", name)
		}
		parts = append(parts, name)
	}

	for _, d := range q.Directives {
		parts = append(parts, string(d))
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("empty query")
	}
	return strings.Join(parts, ","), nil
}

// topLevelDisjunction reports whether s carries a disjunction token outside
// any parentheses. Already-wrapped disjunctions need no second wrap.
func topLevelDisjunction(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
