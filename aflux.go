// Package aflux builds query strings for the AFLUX search API of the AFLOW
// materials database.
//
// A query session owns one stateful builder node per searchable keyword.
// Comparison methods narrow a node, And/Or combine nodes, Not inverts, and
// Render produces the matchbook string submitted to the endpoint:
//
//	s, _ := aflux.NewSession()
//	egap, _ := s.Keyword("Egap")
//	egapType, _ := s.Keyword("Egap_type")
//	filter := egap.AtLeast(aflux.Float(1.0)).And(egapType.Equals(aflux.Text("insulator")))
//	q, _ := filter.Render() // Egap(1.0*),Egap_type('insulator')
//
// Combining a node with itself (two bounds on one field) merges in place;
// combining two different nodes yields a fresh composite node. This package
// only constructs query text; it never talks to the endpoint and never
// parses query strings back.
package aflux

import (
	"github.com/aflowkit/aflux/internal/catalog"
	"github.com/aflowkit/aflux/internal/matchbook"
	"github.com/aflowkit/aflux/internal/query"
	"github.com/aflowkit/aflux/internal/session"
)

// Keyword is the stateful expression builder node for one searchable field
// or a composite expression.
type Keyword = matchbook.Keyword

// Value is a tagged comparison operand: Text, Int, Float, Texts or Numbers.
type Value = matchbook.Value

// Comparison value variants.
type (
	// Text is a textual value, single-quoted on the wire.
	Text = matchbook.Text
	// Int is an integer value, emitted bare.
	Int = matchbook.Int
	// Float is a floating-point value; integral floats keep a trailing ".0".
	Float = matchbook.Float
	// Texts is a sequence of textual values.
	Texts = matchbook.Texts
	// Numbers is a sequence of numeric values.
	Numbers = matchbook.Numbers
)

// Session owns an independent set of keyword nodes built from the catalog.
type Session = session.Session

// NewSession builds a session with a fresh node for every catalog keyword.
func NewSession() (*Session, error) {
	return session.New()
}

// NewKeyword creates a standalone node for the named field, bypassing the
// catalog. Useful for keywords the embedded catalog does not know yet.
func NewKeyword(name string) *Keyword {
	return matchbook.New(name)
}

// Descriptor describes one catalog keyword.
type Descriptor = catalog.Descriptor

// Keywords returns the descriptors of every keyword in the embedded
// catalog, sorted by name.
func Keywords() ([]Descriptor, error) {
	return catalog.Load()
}

// Query assembles a filter expression, selected properties and directives
// into a complete request string.
type Query = query.Query

// Directive is a $-prefixed request directive.
type Directive = query.Directive

// Paging asks for the given 1-based page of at most limit entries.
func Paging(page, limit int) (Directive, error) {
	return query.Paging(page, limit)
}

// Count asks for the number of matching entries instead of the entries
// themselves.
func Count() Directive {
	return query.Count()
}

// Format asks for the given response encoding.
func Format(f ResponseFormat) (Directive, error) {
	return query.Format(f)
}

// ResponseFormat names the response encodings the endpoint understands.
type ResponseFormat = query.ResponseFormat

// Supported response formats.
const (
	FormatJSON  = query.FormatJSON
	FormatAflux = query.FormatAflux
)

// Builder errors surfaced by Keyword.Render and Keyword.Err.
var (
	// ErrTextRequired is returned when Contains is given a non-text value.
	ErrTextRequired = matchbook.ErrTextRequired
	// ErrInconsistentBuffers is returned when a self-combination finds an
	// unbalanced chain of comparisons.
	ErrInconsistentBuffers = matchbook.ErrInconsistentBuffers
	// ErrUnresolvedOperand is returned when a combinator is applied to a
	// half-built node.
	ErrUnresolvedOperand = matchbook.ErrUnresolvedOperand
	// ErrNegateNonSingular is returned when Not is called on a node that
	// does not hold exactly one pending expression.
	ErrNegateNonSingular = matchbook.ErrNegateNonSingular
)
