package genfilter

// FeatureTable maps an extension point identifier to the ordered sequence of
// values contributed by installed plugins. The order reflects plugin
// composition order and is preserved verbatim when supplied to an action.
//
// The table is built by the surrounding plugin system and treated as read-only
// here; it is safe to share between concurrently running generators.
type FeatureTable map[string][]string

// Values returns the contributed values for an extension point identifier and
// whether the identifier is present.
func (t FeatureTable) Values(id string) ([]string, bool) {
	values, ok := t[id]
	return values, ok
}

// Plugin is the metadata of one installed plugin, passed through to actions
// unchanged.
type Plugin struct {
	Name     string
	Version  string
	Metadata map[string]string
}

// PluginTable maps a plugin name to its metadata. Like FeatureTable it is
// supplied by the plugin system and treated as read-only.
type PluginTable map[string]*Plugin

// Get returns the metadata of the named plugin and whether it is installed.
func (t PluginTable) Get(name string) (*Plugin, bool) {
	plugin, ok := t[name]
	return plugin, ok
}
