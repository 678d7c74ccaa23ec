package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" flag should cause cli.Parse to return shouldExit=true.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{filepath.Join(t.TempDir(), "nope.ghx")})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read document")
}

func TestRun_EvaluatesHCLDocument(t *testing.T) {
	t.Parallel()

	doc := `
node "s" {
  component = "Number Slider"
  meta = { value = 4 }
}

node "pt" {
  component = "Construct Point"

  input "Z" {}
}

wire {
  from = "s:OUT"
  to   = "pt:Z"
}
`
	path := filepath.Join(t.TempDir(), "doc.hcl")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"--log-level", "error", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Point")
}

func TestRun_EvaluatesDocument(t *testing.T) {
	t.Parallel()

	doc := `<ghx>
	  <objects>
	    <object id="0" name="Number Slider"><slider min="0" max="10" value="2"/></object>
	    <object id="1" name="Construct Point">
	      <inputs><input name="X"/></inputs>
	    </object>
	  </objects>
	  <wires><wire from="0:OUT" to="1:X"/></wires>
	</ghx>`
	path := filepath.Join(t.TempDir(), "doc.ghx")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	out := &bytes.Buffer{}
	err := run(out, []string{"--log-level", "error", path})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Point")
}