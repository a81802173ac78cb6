package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutRoundTrip(t *testing.T) {
	g := newGrid(gridCols, gridRows)
	g.setObstacle(cell{0, 0})
	g.setObstacle(cell{5, 7})
	g.setObstacle(cell{gridCols - 1, gridRows - 1})
	path := filepath.Join(t.TempDir(), "layout.txt")

	require.NoError(t, saveLayout(path, g))

	loaded := newGrid(gridCols, gridRows)
	require.NoError(t, loadLayout(path, loaded))
	assert.Equal(t, g.snapshot(), loaded.snapshot())
}

func TestSaveLayoutFormat(t *testing.T) {
	g := newGrid(3, 2)
	g.setObstacle(cell{1, 0})
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, saveLayout(path, g))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2, "one line per grid row")
	assert.Equal(t, "0 1 0", lines[0])
	assert.Equal(t, "0 0 0", lines[1])
}

func TestLoadLayoutTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1 0 1\n"), 0o644))

	g := newGrid(gridCols, gridRows)
	g.setObstacle(cell{4, 4})
	before := g.snapshot()

	err := loadLayout(path, g)
	require.ErrorIs(t, err, errTruncatedLayout)
	assert.Equal(t, before, g.snapshot(), "failed load must leave the grid untouched")
}

func TestLoadLayoutMissingFile(t *testing.T) {
	g := newGrid(gridCols, gridRows)
	err := loadLayout(filepath.Join(t.TempDir(), "absent.txt"), g)
	assert.Error(t, err)
}

func TestLoadLayoutBadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.txt")
	tokens := make([]string, gridCols*gridRows)
	for i := range tokens {
		tokens[i] = "0"
	}
	tokens[3] = "x"
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(tokens, " ")), 0o644))

	g := newGrid(gridCols, gridRows)
	before := g.snapshot()
	assert.Error(t, loadLayout(path, g))
	assert.Equal(t, before, g.snapshot())
}

func TestLoadLayoutCoercesNonBinaryValues(t *testing.T) {
	// Values other than 0 and 1 load as obstacles rather than failing.
	path := filepath.Join(t.TempDir(), "layout.txt")
	tokens := make([]string, gridCols*gridRows)
	for i := range tokens {
		tokens[i] = "0"
	}
	tokens[0] = "2"
	tokens[1] = "7"
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(tokens, " ")), 0o644))

	g := newGrid(gridCols, gridRows)
	require.NoError(t, loadLayout(path, g))
	assert.False(t, g.isTraversable(cell{0, 0}))
	assert.False(t, g.isTraversable(cell{1, 0}))
	assert.True(t, g.isTraversable(cell{2, 0}))
}
