package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func renderDefault(t *testing.T, kind documentKind) []byte {
	t.Helper()
	g := newGenerator(DefaultConfig(), zap.NewNop())
	src, err := g.render(kind)
	require.NoError(t, err)
	return src
}

func TestCLIGeneratesBothDocuments(t *testing.T) {
	dir := t.TempDir()
	polyOut := filepath.Join(dir, "poly.cs")
	trigOut := filepath.Join(dir, "trig.cs")

	_, err := execute(t, "--poly-out", polyOut, "--trig-out", trigOut)
	require.NoError(t, err)

	got, err := os.ReadFile(polyOut)
	require.NoError(t, err)
	require.Equal(t, string(renderDefault(t, docPoly)), string(got))

	got, err = os.ReadFile(trigOut)
	require.NoError(t, err)
	require.Equal(t, string(renderDefault(t, docTrig)), string(got))
}

func TestCLISubcommandWritesOnlyItsDocument(t *testing.T) {
	dir := t.TempDir()
	polyOut := filepath.Join(dir, "poly.cs")
	trigOut := filepath.Join(dir, "trig.cs")

	_, err := execute(t, "trig", "--poly-out", polyOut, "--trig-out", trigOut)
	require.NoError(t, err)
	require.FileExists(t, trigOut)
	require.NoFileExists(t, polyOut)
}

func TestCLIStdout(t *testing.T) {
	out, err := execute(t, "trig", "--stdout")
	require.NoError(t, err)
	require.Equal(t, string(renderDefault(t, docTrig)), out)
	require.NotContains(t, out, "TestAllcomplexNumeric")
}

func TestCLIConfigFile(t *testing.T) {
	dir := t.TempDir()
	polyOut := filepath.Join(dir, "poly.cs")
	path := writeConfig(t, `
polynomial:
  output: `+polyOut+`
  blocks:
    - {name: Small, iterations: 2, degree: 2}
`)

	_, err := execute(t, "poly", "--config", path)
	require.NoError(t, err)

	got, err := os.ReadFile(polyOut)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(string(got), "[TestMethod]"))
	require.Contains(t, string(got), "public class Small")
}

func TestCLIDumpConfig(t *testing.T) {
	out, err := execute(t, "config", "--trig-out", "elsewhere.cs")
	require.NoError(t, err)
	require.Contains(t, out, "seed: 44")
	require.Contains(t, out, "output: elsewhere.cs")
	require.Contains(t, out, "function: Cotan")
}

func TestCLIErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "poly", "--poly-out", filepath.Join(dir, "missing", "poly.cs"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeConfig(t, "polynomial:\n  blocks:\n    - {name: Bad, iterations: 3, degree: 0}\n")
	_, err = execute(t, "--config", bad, "--poly-out", filepath.Join(dir, "p.cs"), "--trig-out", filepath.Join(dir, "t.cs"))
	require.ErrorContains(t, err, "invalid degree")
	require.NoFileExists(t, filepath.Join(dir, "t.cs"), "validation must fail before anything is written")

	inject := writeConfig(t, "trig:\n  precision: '1e-8m); System.IO.File.Delete(\"x\"); (0'\n")
	_, err = execute(t, "trig", "--config", inject, "--trig-out", filepath.Join(dir, "t.cs"))
	require.ErrorContains(t, err, "invalid trig precision")
	require.NoFileExists(t, filepath.Join(dir, "t.cs"))

	typo := writeConfig(t, "polynomal:\n  seed: 7\n")
	_, err = execute(t, "poly", "--config", typo, "--poly-out", filepath.Join(dir, "p.cs"))
	require.ErrorContains(t, err, "field polynomal not found")
	require.NoFileExists(t, filepath.Join(dir, "p.cs"))

	_, err = execute(t, "unexpected")
	require.Error(t, err)
}
