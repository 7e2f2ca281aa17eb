package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "products": [
    {"id": "case-01", "name": "Phone Case", "images": ["a.png", "b.png"], "price": 9.99},
    {"id": "strap-01", "name": "Strap", "images": [], "price": {"0": 4.5, "1": 5.0}}
  ]
}`

func writeDoc(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cat, err := Load(writeDoc(t, sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, []byte(sampleDoc), cat.Raw(), "raw bytes are preserved verbatim")

	products := cat.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "case-01", products[0].ID)
	assert.Equal(t, []string{"a.png", "b.png"}, products[0].Images)
	assert.JSONEq(t, `9.99`, string(products[0].Price))
	assert.JSONEq(t, `{"0": 4.5, "1": 5.0}`, string(products[1].Price))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadMalformedDocument(t *testing.T) {
	t.Parallel()

	_, err := Load(writeDoc(t, `{"products": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")
}
