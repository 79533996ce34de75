package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/exercises/lines"
	"github.com/npillmayer/exercises/quaternion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBSTCommand(t *testing.T) {
	out, err := run(t, "bst", "m", "b", "t", "b")
	require.NoError(t, err)
	assert.Equal(t, "((b)m(t))\nsize 3\n", out)
	out, err = run(t, "bst", "--dump", "m", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "Tree(size=2)")
	out, err = run(t, "bst")
	require.NoError(t, err)
	assert.Equal(t, "()\nsize 0\n", out)
}

func TestQuaternionCommand(t *testing.T) {
	out, err := run(t, "quaternion", "1", "1", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "q   = 1.0+i\nq*  = 1.0-i\n", out)
	out, err = run(t, "quaternion", "0", "1", "0", "0", "0", "0", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "q·p = k\n")
	assert.Contains(t, out, "q+p = i+j\n")
	_, err = run(t, "quaternion", "NaN", "0", "0", "0")
	assert.True(t, errors.Is(err, quaternion.ErrInvalidCoefficient))
	_, err = run(t, "quaternion", "1", "2")
	assert.Error(t, err)
}

func TestLinesCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("# c\na\n\nb\n"), 0o644))
	out, err := run(t, "lines", path)
	require.NoError(t, err)
	assert.Equal(t, "3\t"+path+"\n", out)
	_, err = run(t, "lines", path+".missing")
	assert.True(t, errors.Is(err, lines.ErrFileNotFound))
}

func TestSayCommand(t *testing.T) {
	out, err := run(t, "say", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestTraceFlag(t *testing.T) {
	_, err := run(t, "--trace", "debug", "say", "x")
	assert.NoError(t, err)
	_, err = run(t, "--trace", "loud", "say", "x")
	assert.Error(t, err)
}
