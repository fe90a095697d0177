package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")

	src, err := NewCompiler().Compile("Doc", nil, nil)
	require.NoError(t, err)

	require.NoError(t, WriteFiles([]*GeneratedSource{src}, dir))

	b, err := os.ReadFile(filepath.Join(dir, "Doc.model.js"))
	require.NoError(t, err)
	assert.Equal(t, src.Text(), string(b))
}

func TestWriteFiles_DuplicateModel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	a, err := NewCompiler().Compile("Doc", nil, nil)
	require.NoError(t, err)

	b, err := NewCompiler().CompileEmpty("Doc")
	require.NoError(t, err)

	err = WriteFiles([]*GeneratedSource{a, b}, dir)
	require.ErrorIs(t, err, ErrDuplicateScript)
	assert.Contains(t, err.Error(), "Doc.model.js")

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "nothing is written on collision")
}

func TestGeneratedSource_Write(t *testing.T) {
	src, err := NewCompiler().CompileEmpty("")
	require.NoError(t, err)

	path, err := src.Write(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "model.js", filepath.Base(path))

	_, err = src.Write(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
