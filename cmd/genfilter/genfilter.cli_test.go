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

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(""), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoArgsShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(t)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "frobnicate")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, CmdNameVersion)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, Version)
}

func TestRun_HelpForCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, CmdNameHelp, CmdNameGenerate)
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CmdNameGenerate)
}

func TestRunGenerate_NoTemplates(t *testing.T) {
	code, _, stderr := runCLI(t, CmdNameGenerate)
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgNoTemplates)
}

func TestRunGenerate_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "plugins.yaml")
	configYAML := `features:
  catalog.entries:
    - "<entry id=\"1\"/>"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))

	templatePath := filepath.Join(dir, "catalog_template.xml")
	doc := `<catalog xmlns:gen="https://github.com/itsatony/go-genfilter">` +
		`<gen:extension id="catalog.entries" behavior="genfilter.insert"/>` +
		`</catalog>`
	require.NoError(t, os.WriteFile(templatePath, []byte(doc), 0o644))

	code, stdout, stderr := runCLI(t, CmdNameGenerate, "-c", configPath, templatePath)
	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Contains(t, stdout, "catalog.xml")

	out, err := os.ReadFile(filepath.Join(dir, "catalog.xml"))
	require.NoError(t, err)
	assert.Equal(t, `<catalog><entry id="1"></entry></catalog>`, string(out))
}

func TestRunGenerate_MissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "doc_template.xml")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<doc/>`), 0o644))

	code, _, stderr := runCLI(t, CmdNameGenerate, "-c", filepath.Join(dir, "absent.yaml"), templatePath)
	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr, ErrMsgLoadConfigFailed)
}

func TestRunGenerate_BadTemplatePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nomarker.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<doc/>`), 0o644))

	code, _, stderr := runCLI(t, CmdNameGenerate, path)
	assert.Equal(t, ExitCodeError, code)
	assert.NotEmpty(t, stderr)
}

func TestRunOutput_PrintsDerivedPaths(t *testing.T) {
	code, stdout, _ := runCLI(t, CmdNameOutput, "/build/a_template.xml")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "/build/a.xml\n", stdout)
}

func TestRunOutput_CustomMarker(t *testing.T) {
	code, stdout, _ := runCLI(t, CmdNameOutput, "--marker", "_tmpl.", "/build/a_tmpl.xml")
	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "/build/a.xml\n", stdout)
}

func TestRunOutput_MissingMarker(t *testing.T) {
	code, _, stderr := runCLI(t, CmdNameOutput, "/build/a.xml")
	assert.Equal(t, ExitCodeInputError, code)
	assert.NotEmpty(t, stderr)
}
