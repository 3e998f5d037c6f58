package source_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaresPSCR/ROScript/pkg/compiler/lexer"
	"github.com/RaresPSCR/ROScript/pkg/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.ros", `afiseaza "salut";`)

	data, err := source.NewLoader("", 0).Load(path)
	require.NoError(t, err)
	assert.Equal(t, `afiseaza "salut";`, string(data))
}

func TestLoadMissing(t *testing.T) {
	_, err := source.NewLoader("", 0).Load(filepath.Join(t.TempDir(), "nope.ros"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, lexer.ErrSourceNotFound))
}

func TestLoadDirectory(t *testing.T) {
	_, err := source.NewLoader("", 0).Load(t.TempDir())
	assert.True(t, errors.Is(err, lexer.ErrSourceNotFound))
}

func TestLoadTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.ros", strings.Repeat("x", 65))

	_, err := source.NewLoader("", 64).Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrTooLarge))

	_, err = source.NewLoader("", 65).Load(path)
	assert.NoError(t, err)
}

func TestRootJail(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lib/a.ros", "var a = 1")
	l := source.NewLoader(dir, 0)

	data, err := l.Load("lib/a.ros")
	require.NoError(t, err)
	assert.Equal(t, "var a = 1", string(data))

	// climbing out is clamped to the root
	_, err = l.Load("../../lib/a.ros")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(l.Root, "outside.ros"), l.Resolve("../outside.ros"))
}
