package genfilter

// DefaultExtensionNamespace is the reserved namespace URI marking extension
// constructs in template documents. It never appears in generated output.
const DefaultExtensionNamespace = "https://github.com/itsatony/go-genfilter"

// Well-known XML namespace handling constants
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	XMLPrefix      = "xml"
	XMLNSPrefix    = "xmlns"
)

// Reserved names within the extension namespace
const (
	// ExtensionElement is the localname of the element-extension marker.
	ExtensionElement = "extension"
	// ExtensionAttr is the localname of the attribute-extension declaration.
	ExtensionAttr = "extension"
	// ExtensionIDAttr carries the extension point identifier on an
	// element-extension marker.
	ExtensionIDAttr = "id"
	// BehaviorAttr carries the action identifier on an element-extension
	// marker.
	BehaviorAttr = "behavior"
)

// Action parameter names
const (
	// ParamTemplate is the parameter carrying the absolute path of the
	// template file currently being processed. Every action receives it.
	ParamTemplate = "template"
	// ParamSeparator configures the output separator of genfilter.join.
	ParamSeparator = "separator"
)

// Built-in action identifiers - all use the genfilter. namespace prefix
const (
	ActionNameInsert = "genfilter.insert"
	ActionNameText   = "genfilter.text"
	ActionNameJoin   = "genfilter.join"
)

// Defaults
const (
	// DefaultTemplateMarker is the literal path segment removed to derive an
	// output file's path from its template's path. The marker's final
	// character is the extension separator and is kept, so
	// "catalog_template.xml" becomes "catalog.xml".
	DefaultTemplateMarker = "_template."
	// DefaultFeatureValueSeparator splits an attribute-extension data value
	// into the action's ordered input.
	DefaultFeatureValueSeparator = ","
	// DefaultJoinSeparator is the output separator of genfilter.join.
	DefaultJoinSeparator = ","
)

// AttrTypeCData is the declared type reported for all attributes.
const AttrTypeCData = "CDATA"

// Output file handling
const (
	outputFilePermissions = 0o644
	tempFilePattern       = ".genfilter-*.tmp"
)

// Metadata keys attached to errors
const (
	MetaKeyAction      = "action"
	MetaKeyTemplate    = "template"
	MetaKeyElement     = "element"
	MetaKeyAttribute   = "attribute"
	MetaKeyDeclaration = "declaration"
	MetaKeyPath        = "path"
	MetaKeyMarker      = "marker"
	MetaKeyPrefix      = "prefix"
	MetaKeyExpected    = "expected"
	MetaKeyActual      = "actual"
)

// Log messages - ALL log messages must be constants (NO MAGIC STRINGS)
const (
	LogMsgRegistryCreated    = "action registry created"
	LogMsgActionRegistered   = "action registered"
	LogMsgActionCollision    = "action identifier collision, keeping existing registration"
	LogMsgElementDropped     = "action failed, dropping extension element"
	LogMsgAttributeDropped   = "action failed, dropping extension attribute"
	LogMsgUnknownPrefix      = "undeclared namespace prefix"
	LogMsgGenerationStarted  = "generation started"
	LogMsgGenerationComplete = "generation complete"
	LogMsgGenerationFailed   = "generation failed"
)

// Log field names
const (
	LogFieldAction    = "action"
	LogFieldTemplate  = "template"
	LogFieldElement   = "element"
	LogFieldAttribute = "attribute"
	LogFieldPrefix    = "prefix"
	LogFieldRunID     = "run_id"
	LogFieldOutput    = "output"
)
