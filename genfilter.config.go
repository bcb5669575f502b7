package genfilter

import (
	"os"

	"gopkg.in/yaml.v3"
)

// PluginConfig is the on-disk form of the plugin-contributed tables, used by
// tooling that drives the generator outside a host plugin system.
//
//	namespace: https://example.com/ext       # optional override
//	features:
//	  package.support.name:
//	    - "<name>DocBook</name>"
//	plugins:
//	  com.example.docbook:
//	    version: "1.2.0"
//	    metadata:
//	      vendor: Example Corp
type PluginConfig struct {
	Namespace string                       `yaml:"namespace,omitempty"`
	Features  map[string][]string          `yaml:"features,omitempty"`
	Plugins   map[string]PluginConfigEntry `yaml:"plugins,omitempty"`
}

// PluginConfigEntry is the metadata of one plugin in a configuration file.
type PluginConfigEntry struct {
	Version  string            `yaml:"version,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// LoadPluginConfig reads and parses a plugin configuration file.
func LoadPluginConfig(path string) (*PluginConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigReadError(path, err)
	}
	cfg, err := ParsePluginConfig(data)
	if err != nil {
		return nil, NewConfigParseError(path, err)
	}
	return cfg, nil
}

// ParsePluginConfig parses plugin configuration YAML.
func ParsePluginConfig(data []byte) (*PluginConfig, error) {
	var cfg PluginConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FeatureTable converts the configured features into a FeatureTable.
func (c *PluginConfig) FeatureTable() FeatureTable {
	table := make(FeatureTable, len(c.Features))
	for id, values := range c.Features {
		table[id] = values
	}
	return table
}

// PluginTable converts the configured plugins into a PluginTable.
func (c *PluginConfig) PluginTable() PluginTable {
	table := make(PluginTable, len(c.Plugins))
	for name, entry := range c.Plugins {
		table[name] = &Plugin{
			Name:     name,
			Version:  entry.Version,
			Metadata: entry.Metadata,
		}
	}
	return table
}
