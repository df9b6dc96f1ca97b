package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestCatalogCommand(t *testing.T) {
	out := run(t, "catalog")

	assert.Contains(t, out, "tools (5)")
	assert.Contains(t, out, "rental (3)")
	assert.Contains(t, out, "rent 200.00/day")
	assert.Equal(t, 4+12+3, strings.Count(out, "\n"))
}

func TestTranslateCommand(t *testing.T) {
	assert.Equal(t, "स्वागत\n", run(t, "translate", "hi", "welcome"))
	assert.Equal(t, "Dashboard\n", run(t, "translate", "bn", "dashboard"))
	assert.Equal(t, "missingKey\n", run(t, "translate", "ur", "missingKey"))
}

func TestTranslateCommand_Args(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"translate", "hi"})

	assert.Error(t, cmd.Execute())
}
