package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGrammar(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.grammar")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestRunPrintsSamples(t *testing.T) {
	path := writeGrammar(t, "1 ROOT hello , World\n1 World world\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "3", "-seed", "5", path}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "hello, world\nhello, world\nhello, world\n", stdout.String())
}

func TestRunStartSymbol(t *testing.T) {
	path := writeGrammar(t, "1 ROOT a Thing\n1 Thing gizmo\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "1", "-seed", "1", path, "Thing"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Equal(t, "gizmo\n", stdout.String())
}

func TestRunIsReproducible(t *testing.T) {
	path := writeGrammar(t, "1 ROOT A A A\n1 A x\n1 A y\n1 A z\n")

	var first, second, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-seed", "77", path}, &first, &stderr))
	require.Equal(t, 0, run([]string{"-seed", "77", path}, &second, &stderr))

	assert.Equal(t, first.String(), second.String())
	assert.Len(t, strings.Split(strings.TrimSpace(first.String()), "\n"), 25)
}

func TestRunWarnsOnTerminalStart(t *testing.T) {
	path := writeGrammar(t, "1 ROOT a\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "1", path, "Nope"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Nope\n", stdout.String())
	assert.Contains(t, stderr.String(), "heads no rule")
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.grammar")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "failed to read grammar")

	stderr.Reset()
	bad := writeGrammar(t, "1 ROOT ok\nnope\n")
	assert.Equal(t, 1, run([]string{bad}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "line 2")
	assert.Empty(t, stdout.String())
}
