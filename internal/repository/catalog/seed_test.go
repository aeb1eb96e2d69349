package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/sahayata/internal/domain/scheme"
)

const seedYAML = `
schemes:
  - id: 1
    name: {en: "PM Kisan", te: "పీఎం కిసాన్", hi: "पीएम किसान"}
    description: {en: "Income support for farmers"}
    beneficiary_tags: "Farmer, Small and Marginal"
    scheme_type: "Central"
  - id: 2
    name: {en: "Mahila Shakti"}
    beneficiary_tags: "Women"
    category: "Custom Category"
`

func TestParseSeed(t *testing.T) {
	got, err := ParseSeed([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "పీఎం కిసాన్", got[0].TE.Name)
	assert.Equal(t, "Income support for farmers", got[0].EN.Description)
	assert.Equal(t, "", got[0].HI.Description)
	assert.Equal(t, scheme.CategoryAgriculture, got[0].Category, "category inferred from tags")
	assert.Equal(t, "Custom Category", got[1].Category, "explicit category kept")
}

func TestParseSeed_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"bad yaml":     "schemes: [",
		"missing id":   "schemes:\n  - name: {en: x}\n",
		"duplicate id": "schemes:\n  - id: 1\n  - id: 1\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
