package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aflowkit/aflux/internal/catalog"
)

func TestKeywords_List(t *testing.T) {
	out, _, err := execute(t, "keywords")
	require.NoError(t, err)
	assert.Contains(t, out, "Egap")
	assert.Contains(t, out, "nspecies")
}

func TestKeywords_StatusFilter(t *testing.T) {
	out, _, err := execute(t, "keywords", "--status", "conditional")
	require.NoError(t, err)
	assert.NotContains(t, out, "mandatory")
}

func TestKeywords_Describe(t *testing.T) {
	out, _, err := execute(t, "keywords", "Egap")
	require.NoError(t, err)
	assert.Contains(t, out, "Egap (number, mandatory)")
	assert.Contains(t, out, "units: eV")
}

func TestKeywords_DescribeJSON(t *testing.T) {
	out, _, err := execute(t, "keywords", "--format", "json", "Egap")
	require.NoError(t, err)

	var desc catalog.Descriptor
	require.NoError(t, json.Unmarshal([]byte(out), &desc))
	assert.Equal(t, "Egap", desc.Name)
	assert.Equal(t, catalog.KindNumber, desc.Kind)
}

func TestKeywords_Unknown(t *testing.T) {
	_, _, err := execute(t, "keywords", "bogus")
	require.Error(t, err)
}

func TestVet(t *testing.T) {
	out, _, err := execute(t, "vet")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok")
}

func TestVet_JSON(t *testing.T) {
	out, _, err := execute(t, "vet", "--format", "json")
	require.NoError(t, err)

	var result VetResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
}
