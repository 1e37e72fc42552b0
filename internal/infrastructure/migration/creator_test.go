package migration

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add voucher index", "add_voucher_index"},
		{"Add-Voucher-Index", "add_voucher_index"},
		{"add__voucher__index", "add_voucher_index"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"_leading and trailing_", "leading_and_trailing"},
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

	t.Run("first migration is version 1", func(t *testing.T) {
		mf, err := CreateMigration(dir, "commerce core")
		require.NoError(t, err)
		assert.Equal(t, uint(1), mf.Version)
		assert.Equal(t, filepath.Join(dir, "000001_commerce_core.up.sql"), mf.UpPath)
		assert.FileExists(t, mf.DownPath)

		body, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- commerce_core")
	})

	t.Run("next migration follows the highest version", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000007_manual.up.sql"), nil, 0o644))
		mf, err := CreateMigration(dir, "Add voucher index")
		require.NoError(t, err)
		assert.Equal(t, uint(8), mf.Version)
		assert.Equal(t, "add_voucher_index", mf.Name)
	})

	t.Run("unusable name is rejected", func(t *testing.T) {
		_, err := CreateMigration(dir, "!!!")
		assert.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000002_second.up.sql",
		"000001_first.up.sql",
		"000001_first.down.sql",
		"README.md",
		"not_a_migration.sql",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	list, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []MigrationInfo{
		{Version: 1, Name: "first", HasDown: true},
		{Version: 2, Name: "second", HasDown: false},
	}, list)

	missing, err := ListMigrations(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestSource(t *testing.T) {
	t.Run("embedded schema starts at version 1", func(t *testing.T) {
		src, err := NewSource()
		require.NoError(t, err)
		defer src.Close()

		first, err := src.First()
		require.NoError(t, err)
		assert.Equal(t, uint(1), first)

		r, identifier, err := src.ReadUp(first)
		require.NoError(t, err)
		defer r.Close()
		assert.Equal(t, "commerce_core", identifier)
	})

	t.Run("directory without migrations has no first version", func(t *testing.T) {
		src, err := newSource(fstest.MapFS{"notes.txt": {Data: []byte("x")}})
		require.NoError(t, err)
		defer src.Close()
		_, err = src.First()
		assert.Error(t, err)
	})
}
