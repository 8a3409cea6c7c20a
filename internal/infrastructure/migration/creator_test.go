package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/crm/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add contacts table", "add_contacts_table"},
		{"Add-Contacts-Table", "add_contacts_table"},
		{"ADD_CONTACTS_TABLE", "add_contacts_table"},
		{"add__contacts__table", "add_contacts_table"},
		{"Seed Categories 2", "seed_categories_2"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"café index", "caf_index"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add customer notes", "Free text notes on customers")
	require.NoError(t, err)

	assert.Equal(t, "000001", mf.Version)
	assert.Equal(t, filepath.Join(dir, "000001_add_customer_notes.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "000001_add_customer_notes.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add customer notes")
	assert.Contains(t, string(up), "Free text notes on customers")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(Rollback)")
}

func TestCreateMigration_NextVersion(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"000001_init.up.sql", "000001_init.down.sql", "000007_seed.up.sql", "000007_seed.down.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("-- test"), 0o644))
	}

	mf, err := CreateMigration(dir, "contacts email", "")
	require.NoError(t, err)
	assert.Equal(t, "000008", mf.Version)
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(nested, "test", "test migration")
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"000010_add_index.up.sql":    {Data: []byte("--")},
		"000010_add_index.down.sql":  {Data: []byte("--")},
		"000002_customers.up.sql":    {Data: []byte("--")},
		"000002_customers.down.sql":  {Data: []byte("--")},
		"000001_categories.up.sql":   {Data: []byte("--")},
		"000001_categories.down.sql": {Data: []byte("--")},
		"README.md":                  {Data: []byte("docs")},
		"subdir.up.sql/keep":         {Data: []byte("")},
	}

	got, err := ListMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_categories", "000002_customers", "000010_add_index"}, got)
}

func TestListMigrations_NonexistentDirectory(t *testing.T) {
	got, err := ListMigrations(os.DirFS(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEmbeddedMigrations(t *testing.T) {
	got, err := ListMigrations(migrations.FS)
	require.NoError(t, err)
	require.Equal(t, []string{
		"000001_create_customer_categories",
		"000002_create_customers",
		"000003_create_contacts",
		"000004_seed_customer_categories",
	}, got)

	for _, base := range got {
		down, err := migrations.FS.ReadFile(base + downSuffix)
		require.NoError(t, err, base)
		assert.True(t, strings.Contains(string(down), "Rollback"), base)
	}

	seed, err := migrations.FS.ReadFile("000004_seed_customer_categories.up.sql")
	require.NoError(t, err)
	for _, name := range []string{"'Gold'", "'Silver'", "'Bronze'"} {
		assert.Contains(t, string(seed), name)
	}
}
