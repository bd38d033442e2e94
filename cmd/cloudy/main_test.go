/*
File   : cloudy/cmd/cloudy/main_test.go
Package: main
*/
package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.Nil(t, err)
	os.Stdout = w

	fn()

	require.Nil(t, w.Close())
	os.Stdout = old

	out, err := io.ReadAll(r)
	require.Nil(t, err)
	return string(out)
}

func TestRunExecutesScriptFileAndPrintsResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.cdy")
	require.Nil(t, os.WriteFile(path, []byte("2 + 2"), 0o644))

	out := captureStdout(t, func() {
		err := run(nil, []string{path})
		require.Nil(t, err)
	})
	assert.Contains(t, out, "4")
}

func TestRunSkipsPrintingNullResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.cdy")
	require.Nil(t, os.WriteFile(path, []byte("var x = null"), 0o644))

	out := captureStdout(t, func() {
		err := run(nil, []string{path})
		require.Nil(t, err)
	})
	assert.Empty(t, out)
}

func TestPrintErrorWritesToStderr(t *testing.T) {
	old := os.Stderr
	r, w, err := os.Pipe()
	require.Nil(t, err)
	os.Stderr = w

	noColor = true
	printError("boom")

	require.Nil(t, w.Close())
	os.Stderr = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.Nil(t, err)
	assert.Contains(t, buf.String(), "boom")
}
