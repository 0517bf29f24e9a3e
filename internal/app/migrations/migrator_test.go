package migrations

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	fsys := fstest.MapFS{
		"002_add_index.sql":   {Data: []byte("SELECT 1;")},
		"001_create.sql":      {Data: []byte("SELECT 1;")},
		"README.md":           {Data: []byte("notes")},
		"nested/003_skip.sql": {Data: []byte("SELECT 1;")},
	}

	got, err := collect(fsys)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, migration{version: "001", name: "001_create.sql"}, got[0])
	assert.Equal(t, migration{version: "002", name: "002_add_index.sql"}, got[1])
}

func TestCollect_DuplicateVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"001_b.sql": {Data: []byte("SELECT 1;")},
	}
	_, err := collect(fsys)
	assert.Error(t, err)
}

func TestBundledMigrations(t *testing.T) {
	sub, err := fs.Sub(Files, "sql")
	require.NoError(t, err)

	got, err := collect(sub)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001", got[0].version)

	content, err := fs.ReadFile(sub, got[0].name)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS submissions")
}
