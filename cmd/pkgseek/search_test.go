package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgseek/pkgseek/internal/index"
)

// setupHome points HOME at a temp dir and seeds one bucket with a manifest.
// The bucket is not under version control, so it is rescanned on every pass.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)

	manifest := filepath.Join(home, ".pkgseek", "buckets", "main", "bucket", "firefox.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(manifest), 0o755))
	require.NoError(t, os.WriteFile(manifest, []byte(`{"version": "120.0"}`), 0o644))
	return home
}

func TestRunSearchBuildsIndexOnFirstMiss(t *testing.T) {
	home := setupHome(t)

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &out, "firefox"))

	assert.Contains(t, out.String(), "firefox")
	assert.Contains(t, out.String(), "120.0")
	assert.Contains(t, out.String(), "main")

	// The reconciled index was persisted for the next invocation.
	store := index.NewStore(filepath.Join(home, ".pkgseek", "index.json"))
	idx := store.Load()
	require.Contains(t, idx, "main")
	assert.Equal(t, "120.0", idx["main"].Packages["firefox"])
}

func TestRunSearchServesFromPersistedIndex(t *testing.T) {
	home := setupHome(t)

	require.NoError(t, runSearch(context.Background(), &bytes.Buffer{}, "firefox"))

	// Remove the manifest; the persisted index still answers without a
	// rescan because the hit short-circuits reconciliation.
	require.NoError(t, os.RemoveAll(filepath.Join(home, ".pkgseek", "buckets")))

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &out, "firefox"))
	assert.Contains(t, out.String(), "120.0")
}

func TestRunSearchNoResults(t *testing.T) {
	setupHome(t)

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &out, "definitely-not-a-package"))
	assert.Contains(t, out.String(), "No results found")
}

func TestRunSearchRecoversFromCorruptIndex(t *testing.T) {
	home := setupHome(t)
	indexPath := filepath.Join(home, ".pkgseek", "index.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(indexPath), 0o755))
	require.NoError(t, os.WriteFile(indexPath, []byte("{corrupt"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runSearch(context.Background(), &out, "firefox"))
	assert.Contains(t, out.String(), "120.0")
}
