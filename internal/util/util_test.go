package util

// Copyright (C) 2025 dstatplot authors
// SPDX-License-Identifier: BSD-3-Clause

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, ExpandUser("~"))
	assert.Equal(t, filepath.Join(home, "logs"), ExpandUser("~/logs"))
	assert.Equal(t, "/var/log", ExpandUser("/var/log"))
}

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "x.csv")
	require.NoError(t, os.WriteFile(file, []byte("a,b\n"), 0644))

	exists, err := FileExists(file)
	assert.NoError(t, err)
	assert.True(t, exists)
	exists, err = FileExists(filepath.Join(dir, "missing.csv"))
	assert.NoError(t, err)
	assert.False(t, exists)
	_, err = FileExists(dir)
	assert.Error(t, err)

	exists, err = DirectoryExists(dir)
	assert.NoError(t, err)
	assert.True(t, exists)
	_, err = DirectoryExists(file)
	assert.Error(t, err)
}

func TestStringInList(t *testing.T) {
	assert.True(t, StringInList("png", []string{"png", "xlsx"}))
	assert.False(t, StringInList("svg", []string{"png", "xlsx"}))
}

func TestSortedCsvFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "c.txt", "z.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0755))

	files, err := SortedCsvFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.CSV"),
		filepath.Join(dir, "b.csv"),
		filepath.Join(dir, "z.csv"),
	}, files)
}
