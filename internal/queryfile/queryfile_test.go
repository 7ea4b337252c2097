package queryfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, src string) (string, error) {
	t.Helper()
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	q, err := doc.Compile()
	if err != nil {
		return "", err
	}
	return q.Render()
}

func TestCompile_SameKeywordBounds(t *testing.T) {
	got, err := render(t, `
where:
  all:
    - {keyword: nspecies, op: at_least, value: 2}
    - {keyword: nspecies, op: at_most, value: 5}
`)
	require.NoError(t, err)
	assert.Equal(t, "nspecies(2*),nspecies(*5)", got)
}

func TestCompile_CrossFieldFilter(t *testing.T) {
	got, err := render(t, `
select: [species]
where:
  all:
    - {keyword: Egap, op: at_least, value: 1.0}
    - {keyword: Egap, op: at_most, value: 3.0}
    - {keyword: Egap_type, op: equals, value: insulator}
paging: {page: 1, limit: 64}
format: json
`)
	require.NoError(t, err)
	assert.Equal(t,
		"(Egap(1.0*),Egap(*3.0)),Egap_type('insulator'),species,$paging(1,64),$format(json)",
		got)
}

func TestCompile_NestedAnyInsideAll(t *testing.T) {
	got, err := render(t, `
where:
  all:
    - any:
        - {keyword: nspecies, op: at_least, value: 5}
        - {keyword: nspecies, op: at_most, value: 2}
    - {keyword: Egap_type, op: equals, value: metal}
`)
	require.NoError(t, err)
	assert.Equal(t, "(nspecies(5*):nspecies(*2)),Egap_type('metal')", got)
}

func TestCompile_LeafNarrowsNestedGroupResult(t *testing.T) {
	got, err := render(t, `
where:
  all:
    - any:
        - {keyword: nspecies, op: at_least, value: 5}
        - {keyword: nspecies, op: at_most, value: 2}
    - {keyword: nspecies, op: equals, value: 3}
`)
	require.NoError(t, err)
	assert.Equal(t, "nspecies(3),(nspecies(5*):nspecies(*2))", got)
}

func TestCompile_NegatedLeaf(t *testing.T) {
	got, err := render(t, `
where:
  all:
    - {keyword: Egap_type, op: equals, value: metal, not: true}
    - {keyword: nspecies, op: equals, value: 2}
`)
	require.NoError(t, err)
	assert.Equal(t, "Egap_type(!'metal'),nspecies(2)", got)
}

func TestCompile_TopLevelAnyGroup(t *testing.T) {
	got, err := render(t, `
where:
  any:
    - {keyword: nspecies, op: equals, value: 1}
    - {keyword: nspecies, op: equals, value: 2}
`)
	require.NoError(t, err)
	assert.Equal(t, "nspecies(1):nspecies(2)", got)
}

func TestCompile_TopLevelAnyWithSelect(t *testing.T) {
	got, err := render(t, `
select: [species]
where:
  any:
    - {keyword: nspecies, op: equals, value: 1}
    - {keyword: nspecies, op: equals, value: 2}
`)
	require.NoError(t, err)
	assert.Equal(t, "(nspecies(1):nspecies(2)),species", got)
}

func TestCompile_RejectsGroupNot(t *testing.T) {
	_, err := render(t, `
where:
  not: true
  any:
    - {keyword: nspecies, op: at_least, value: 5}
    - {keyword: nspecies, op: at_most, value: 2}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leaves")
}

func TestCompile_ContainsTextOnly(t *testing.T) {
	got, err := render(t, `
where: {keyword: species, op: contains, value: Si}
`)
	require.NoError(t, err)
	assert.Equal(t, "species(*'Si'*)", got)

	_, err = render(t, `
where: {keyword: species, op: contains, value: 2}
`)
	assert.Error(t, err)
}

func TestCompile_SequenceValue(t *testing.T) {
	got, err := render(t, `
where: {keyword: species, op: equals, value: [Si, O]}
`)
	require.NoError(t, err)
	assert.Equal(t, "species('Si','O')", got)
}

func TestCompile_RejectsNonAdjacentKeywordReuse(t *testing.T) {
	_, err := render(t, `
where:
  all:
    - {keyword: Egap, op: at_least, value: 1.0}
    - {keyword: Egap_type, op: equals, value: insulator}
    - {keyword: Egap, op: at_most, value: 3.0}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjacent")
}

func TestCompile_RejectsKeywordReuseAcrossNesting(t *testing.T) {
	_, err := render(t, `
where:
  all:
    - {keyword: Egap, op: at_least, value: 1.0}
    - any:
        - {keyword: Egap, op: at_most, value: 5.0}
        - {keyword: Egap_type, op: equals, value: metal}
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "adjacent")
}

func TestCompile_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"unknown keyword", `
where: {keyword: bogus, op: equals, value: 1}
`},
		{"unknown op", `
where: {keyword: Egap, op: approximately, value: 1}
`},
		{"missing value", `
where: {keyword: Egap, op: equals}
`},
		{"both all and any", `
where:
  all:
    - {keyword: Egap, op: equals, value: 1}
    - {keyword: nspecies, op: equals, value: 2}
  any:
    - {keyword: Egap, op: equals, value: 1}
    - {keyword: nspecies, op: equals, value: 2}
`},
		{"single-clause group", `
where:
  all:
    - {keyword: Egap, op: equals, value: 1}
`},
		{"mixed sequence", `
where: {keyword: species, op: equals, value: [Si, 2]}
`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := render(t, tc.src)
			assert.Error(t, err)
		})
	}
}

func TestParse_RequiresContent(t *testing.T) {
	_, err := Parse([]byte("description: nothing else"))
	assert.Error(t, err)
}

func TestLoad_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte("select: [Egap]\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Egap"}, doc.Select)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
