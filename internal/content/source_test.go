package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	src, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", src.Manifest().Format)

	raw, err := src.ReadDomains()
	require.NoError(t, err)
	domains, err := decodeList[Domain](DomainsSchema, raw)
	require.NoError(t, err)
	assert.Len(t, domains, 5)

	for id := 1; id <= 5; id++ {
		raw, err := src.ReadFlashcards(id)
		require.NoError(t, err, "domain %d", id)
		cards, err := decodeList[Flashcard](FlashcardsSchema, raw)
		require.NoError(t, err, "domain %d", id)
		assert.NotEmpty(t, cards, "domain %d", id)
		for _, c := range cards {
			assert.Equal(t, id, c.Domain, c.ID)
		}
	}
}

func TestOpenFS_Manifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  error
	}{
		{"minor bump", `{"format":"v1.3.0","title":"x"}`, nil},
		{"major bump", `{"format":"v2.0.0","title":"x"}`, ErrUnsupportedFormat},
		{"not semver", `{"format":"1.0","title":"x"}`, ErrBadManifest},
		{"missing title", `{"format":"v1.0.0"}`, ErrBadManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{manifestFile: {Data: []byte(tt.manifest)}}
			_, err := OpenFS(fsys)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOpenFS_NoManifest(t *testing.T) {
	_, err := OpenFS(fstest.MapFS{})
	assert.Error(t, err)
}

func TestOpenDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, manifestFile), []byte(`{"format":"v1.0.0","title":"local"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domainsFile), []byte(`[]`), 0o644))

	src, err := OpenDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "local", src.Manifest().Title)

	_, err = OpenDir(filepath.Join(dir, manifestFile))
	assert.Error(t, err)
}
