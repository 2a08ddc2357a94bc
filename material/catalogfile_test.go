// SPDX-License-Identifier: MIT

package material_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/filmcalc/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userCatalog = `
[[material]]
id    = "ITO"
name  = "Indium Tin Oxide"
color = "#c9ada7"
kind  = "cauchy"
a = 1.80
b = 0.02
k = 0.005

[[material]]
id    = "Cr"
kind  = "table"
table = [[400.0, 2.13, 3.24], [600.0, 3.18, 3.33]]

[[material]]
id    = "Water"
kind  = "constant"
n = 1.333

[[material]]
id    = "Glass2"
kind  = "sellmeier"
terms = [[1.03961212, 0.00600069867], [0.231792344, 0.0200179144]]
`

func TestParseCatalog(t *testing.T) {
	defs, err := material.ParseCatalog([]byte(userCatalog))
	require.NoError(t, err)
	require.Len(t, defs, 4)

	assert.Equal(t, "ITO", defs[0].ID)
	assert.Equal(t, "Indium Tin Oxide", defs[0].Name)
	assert.Equal(t, 0.005, defs[0].At(550).K)

	assert.Equal(t, "Cr", defs[1].Name, "name defaults to id")
	assert.NotEmpty(t, defs[1].Color)
	assert.InDelta(t, (2.13+3.18)/2, defs[1].At(500).N, 1e-12)

	assert.Equal(t, material.Index{N: 1.333}, defs[2].At(700))
	assert.Greater(t, defs[3].At(550).N, 1.4)

	reg, err := material.Catalog(defs...)
	require.NoError(t, err)
	assert.Equal(t, len(material.Builtin())+4, reg.Len())
	assert.Equal(t, "Glass2", reg.IDs()[reg.Len()-1])
}

func TestParseCatalog_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown kind": {`[[material]]
id = "X"
kind = "drude"`, material.ErrUnknownKind},
		"missing id": {`[[material]]
kind = "constant"
n = 1.2`, material.ErrEmptyID},
		"unsorted table": {`[[material]]
id = "X"
kind = "table"
table = [[500.0, 1.0, 0.0], [400.0, 1.0, 0.0]]`, material.ErrUnsortedTable},
		"bad constant": {`[[material]]
id = "X"
kind = "constant"
n = -1.0`, material.ErrInvalidIndex},
		"short term": {`[[material]]
id = "X"
kind = "sellmeier"
terms = [[1.0]]`, material.ErrInvalidIndex},
		"nan constant": {`[[material]]
id = "X"
kind = "constant"
n = nan
k = nan`, material.ErrInvalidIndex},
		"infinite constant": {`[[material]]
id = "X"
kind = "constant"
n = inf`, material.ErrInvalidIndex},
		"nan cauchy k": {`[[material]]
id = "Y"
kind = "cauchy"
a = 1.5
k = -nan`, material.ErrInvalidIndex},
		"nan cauchy b": {`[[material]]
id = "Y"
kind = "cauchy"
a = 1.5
b = nan`, material.ErrInvalidIndex},
		"infinite sellmeier term": {`[[material]]
id = "Z"
kind = "sellmeier"
terms = [[1.0, inf]]`, material.ErrInvalidIndex},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := material.ParseCatalog([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := material.ParseCatalog([]byte("[[material]\nid="))
	require.Error(t, err)
}

func TestLoadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.toml")
	require.NoError(t, os.WriteFile(path, []byte(userCatalog), 0o644))

	defs, err := material.LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Len(t, defs, 4)

	_, err = material.LoadCatalogFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
