package bbox

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool writes an executable shell script standing in for pdftotext.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "pdftotext")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestExtractorRun(t *testing.T) {
	tool := fakeTool(t, `echo "$@"`)

	out, err := Extractor{Command: tool, Args: []string{"-bbox"}}.Run(context.Background(), "page.pdf")
	require.NoError(t, err)
	assert.Equal(t, "-bbox page.pdf -\n", string(out))
}

func TestExtractorExtract(t *testing.T) {
	dir := t.TempDir()
	fixture := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(fixture, []byte(bboxOutput), 0o644))
	tool := fakeTool(t, `cat "`+fixture+`"`)

	doc, err := Extractor{Command: tool}.Extract(context.Background(), "page.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.WordCount())

	first, err := Extractor{Command: tool}.Extract(context.Background(), "page.pdf", 1)
	require.NoError(t, err)
	assert.Len(t, first.Pages, 1)
	assert.Equal(t, 2, first.PageCount)
}

func TestExtractorNonZeroExit(t *testing.T) {
	tool := fakeTool(t, "echo 'Syntax Error: Couldn'\\''t open file' >&2\nexit 3\n")

	_, err := Extractor{Command: tool}.Run(context.Background(), "missing.pdf")
	require.Error(t, err)

	var toolErr *ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, tool, toolErr.Command)
	assert.Contains(t, toolErr.Stderr, "Couldn't open file")
	assert.Contains(t, err.Error(), "exit status 3")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExtractorNotFound(t *testing.T) {
	_, err := Extractor{Command: "svgtext-no-such-tool"}.Run(context.Background(), "page.pdf")

	var toolErr *ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestDefaultExtractor(t *testing.T) {
	e := DefaultExtractor()
	assert.Equal(t, "pdftotext", e.Command)
	assert.Equal(t, []string{"-bbox"}, e.Args)
}
