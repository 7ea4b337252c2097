// Package session owns the per-query-session keyword registry.
//
// The upstream library kept one process-wide set of mutable keyword nodes
// and required an explicit reset between queries; concurrent sessions would
// corrupt each other's buffers. Here every Session owns an independent set
// of prototype nodes built from the catalog, so concurrent sessions are
// naturally safe. A single session is still single-threaded by convention.
package session

import (
	"fmt"

	"github.com/aflowkit/aflux/internal/catalog"
	"github.com/aflowkit/aflux/internal/matchbook"
)

// Session holds one prototype node per catalog keyword.
type Session struct {
	keywords map[string]*matchbook.Keyword
}

// New builds a session with a fresh prototype node for every keyword in
// the catalog.
func New() (*Session, error) {
	descs, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s := &Session{keywords: make(map[string]*matchbook.Keyword, len(descs))}
	for _, d := range descs {
		s.keywords[d.Name] = matchbook.New(d.Name)
	}
	return s, nil
}

// Keyword returns the session's node for the named field.
func (s *Session) Keyword(name string) (*matchbook.Keyword, error) {
	k, ok := s.keywords[name]
	if !ok {
		return nil, fmt.Errorf("unknown keyword %q", name)
	}
	return k, nil
}

// Load populates target with the session's nodes, keyed by field name.
// Idempotent: repeated calls scan the same cached catalog and write the
// same entries, never duplicating or replacing nodes already present from
// this session.
func (s *Session) Load(target map[string]*matchbook.Keyword) {
	for name, k := range s.keywords {
		target[name] = k
	}
}

// Reset clears the buffers of every node in the session, restoring the
// registry to its immediately-post-New condition. Contributing field sets
// are untouched. Call between logically independent queries that share one
// session.
func (s *Session) Reset() {
	for _, k := range s.keywords {
		k.Reset()
	}
}

// Len returns the number of registered keywords.
func (s *Session) Len() int { return len(s.keywords) }
