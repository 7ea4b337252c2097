package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aflowkit/aflux/internal/catalog"
	"github.com/aflowkit/aflux/internal/matchbook"
)

func TestNew_CoversCatalog(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	names, err := catalog.Names()
	require.NoError(t, err)
	assert.Equal(t, len(names), s.Len())

	for _, name := range names {
		k, err := s.Keyword(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.Name())
	}
}

func TestKeyword_Unknown(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	_, err = s.Keyword("no_such_keyword")
	assert.Error(t, err)
}

func TestLoad_Idempotent(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	first := make(map[string]*matchbook.Keyword)
	s.Load(first)
	assert.Equal(t, s.Len(), len(first))

	second := make(map[string]*matchbook.Keyword)
	s.Load(second)
	require.Len(t, second, len(first))
	for name, k := range first {
		assert.Same(t, k, second[name], "repeated load returns the same node for %q", name)
	}

	// Loading into an already-populated map neither duplicates nor
	// replaces entries.
	s.Load(first)
	assert.Equal(t, s.Len(), len(first))
}

func TestReset_RestoresBareNames(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	nspecies, err := s.Keyword("nspecies")
	require.NoError(t, err)
	nspecies.AtLeast(matchbook.Int(2)).AtMost(matchbook.Int(5)).And(nspecies)
	require.NoError(t, nspecies.Err())

	egap, err := s.Keyword("Egap")
	require.NoError(t, err)
	egap.Equals(matchbook.Float(1.0))

	s.Reset()

	for _, name := range []string{"nspecies", "Egap"} {
		k, err := s.Keyword(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String(), "after reset %q stringifies to its bare name", name)
	}
}

func TestSessions_AreIndependent(t *testing.T) {
	s1, err := New()
	require.NoError(t, err)
	s2, err := New()
	require.NoError(t, err)

	k1, err := s1.Keyword("Egap")
	require.NoError(t, err)
	k2, err := s2.Keyword("Egap")
	require.NoError(t, err)

	assert.NotSame(t, k1, k2)

	k1.Equals(matchbook.Float(2.0))
	assert.Equal(t, "Egap", k2.String(), "mutating one session leaves the other untouched")
}
