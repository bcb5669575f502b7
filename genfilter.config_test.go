package genfilter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPluginConfigYAML = `namespace: urn:custom-ext
features:
  package.support.name:
    - "<name>DocBook</name>"
    - "<name>Markdown</name>"
plugins:
  com.example.docbook:
    version: "1.2.0"
    metadata:
      vendor: Example Corp
  com.example.markdown: {}
`

func TestParsePluginConfig(t *testing.T) {
	cfg, err := ParsePluginConfig([]byte(testPluginConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "urn:custom-ext", cfg.Namespace)

	features := cfg.FeatureTable()
	values, ok := features.Values("package.support.name")
	require.True(t, ok)
	assert.Equal(t, []string{"<name>DocBook</name>", "<name>Markdown</name>"}, values)

	plugins := cfg.PluginTable()
	docbook, ok := plugins.Get("com.example.docbook")
	require.True(t, ok)
	assert.Equal(t, "com.example.docbook", docbook.Name)
	assert.Equal(t, "1.2.0", docbook.Version)
	assert.Equal(t, "Example Corp", docbook.Metadata["vendor"])

	markdown, ok := plugins.Get("com.example.markdown")
	require.True(t, ok)
	assert.Equal(t, "", markdown.Version)
}

func TestParsePluginConfig_Invalid(t *testing.T) {
	_, err := ParsePluginConfig([]byte("features: [not, a, map]"))
	require.Error(t, err)
}

func TestLoadPluginConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plugins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPluginConfigYAML), 0o644))

	cfg, err := LoadPluginConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Features, 1)
	assert.Len(t, cfg.Plugins, 2)
}

func TestLoadPluginConfig_MissingFile(t *testing.T) {
	_, err := LoadPluginConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgConfigRead)
}

func TestLoadPluginConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plugins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o644))

	_, err := LoadPluginConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgConfigParse)
}
