package migrations

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMigrations_OrdersAndSkipsNonSQL(t *testing.T) {
	fsys := fstest.MapFS{
		"002_indexes.sql": {Data: []byte("SELECT 1;")},
		"001_init.sql":    {Data: []byte("SELECT 1;")},
		"README.md":       {Data: []byte("notes")},
		"old/003_x.sql":   {Data: []byte("SELECT 1;")},
	}

	got, err := listMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []migration{
		{version: "001", name: "001_init.sql"},
		{version: "002", name: "002_indexes.sql"},
	}, got)
}

func TestListMigrations_RejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql":  {Data: []byte("SELECT 1;")},
		"001_again.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := listMigrations(fsys)
	assert.ErrorContains(t, err, "share version 001")
}

func TestEmbeddedSchema(t *testing.T) {
	m := NewMigrator(nil)

	got, err := listMigrations(m.fsys)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001", got[0].version)

	content, err := fs.ReadFile(m.fsys, got[0].name)
	require.NoError(t, err)
	for _, table := range []string{"departments", "program_groups", "programs", "students", "student_transfers"} {
		assert.True(t, strings.Contains(string(content), "CREATE TABLE IF NOT EXISTS "+table+" "), table)
	}
}
