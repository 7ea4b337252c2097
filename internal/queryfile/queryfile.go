package queryfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aflowkit/aflux/internal/query"
)

// Document is a declarative query description.
type Document struct {
	// Description explains what the query is for. Informational only.
	Description string `yaml:"description,omitempty"`

	// Select names keywords to return in addition to the mandatory set.
	Select []string `yaml:"select,omitempty"`

	// Where is the filter tree. Nil means no filter.
	Where *Clause `yaml:"where,omitempty"`

	// Paging requests a specific result page.
	Paging *PagingSpec `yaml:"paging,omitempty"`

	// Format requests a response encoding ("json" or "aflux").
	Format string `yaml:"format,omitempty"`
}

// PagingSpec mirrors the $paging directive.
type PagingSpec struct {
	// Page is the 1-based page number.
	Page int `yaml:"page"`

	// Limit is the page size; zero leaves the server default.
	Limit int `yaml:"limit,omitempty"`
}

// Clause is one node of the filter tree: either a group (exactly one of
// All/Any set) or a comparison leaf (Keyword and Op set).
type Clause struct {
	// All combines child clauses with AND.
	All []Clause `yaml:"all,omitempty"`

	// Any combines child clauses with OR.
	Any []Clause `yaml:"any,omitempty"`

	// Keyword is the field a leaf compares.
	Keyword string `yaml:"keyword,omitempty"`

	// Op is the comparison: at_most, at_least, contains or equals.
	Op string `yaml:"op,omitempty"`

	// Value is the comparison operand. Strings become text values,
	// integers and floats numeric ones, homogeneous lists sequences.
	Value any `yaml:"value,omitempty"`

	// Not inverts the clause.
	Not bool `yaml:"not,omitempty"`
}

// Load reads and parses a query document from disk.
func Load(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	return Parse(src)
}

// Parse decodes a query document.
func Parse(src []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("decode query file: %w", err)
	}
	if doc.Where == nil && len(doc.Select) == 0 {
		return nil, fmt.Errorf("query file has neither where nor select")
	}
	return &doc, nil
}

// Compile turns the document into a renderable query. A fresh session is
// created per call, so documents never interfere with each other.
func (d *Document) Compile() (*query.Query, error) {
	q := &query.Query{Select: d.Select}

	if d.Where != nil {
		filter, err := compileWhere(d.Where)
		if err != nil {
			return nil, err
		}
		q.Filter = filter
	}

	if d.Paging != nil {
		dir, err := query.Paging(d.Paging.Page, d.Paging.Limit)
		if err != nil {
			return nil, err
		}
		q.Directives = append(q.Directives, dir)
	}
	if d.Format != "" {
		dir, err := query.Format(query.ResponseFormat(d.Format))
		if err != nil {
			return nil, err
		}
		q.Directives = append(q.Directives, dir)
	}

	return q, nil
}
