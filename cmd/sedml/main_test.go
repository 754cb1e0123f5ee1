package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/andaru/sedml/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.xml")
	var stdout, stderr bytes.Buffer
	ctx := context.Background()
	require.NoError(t, run(ctx, &stdout, &stderr, []string{"create", path}))
	require.NoError(t, run(ctx, &stdout, &stderr, []string{"print", path}))
	assert.Contains(t, stdout.String(), "The document has 1 task(s).")

	err := run(ctx, &stdout, &stderr, []string{"print"})
	assert.Equal(t, cli.ExitUsage, cli.Exit(&stderr, err))
}
