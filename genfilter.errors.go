package genfilter

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Registry errors
	ErrMsgUnknownAction    = "no action registered for identifier"
	ErrMsgNilActionFactory = "action factory cannot be nil"
	ErrMsgNilAction        = "action factory produced a nil action"
	ErrMsgEmptyActionID    = "action identifier cannot be empty"
	ErrMsgActionExists     = "action already registered for identifier"

	// Configuration errors
	ErrMsgActionResolve          = "failed to resolve extension action"
	ErrMsgMalformedExtensionDecl = "extension declaration must contain localname and handler pairs"
	ErrMsgEmptyExtensionDecl     = "extension declaration cannot be empty"
	ErrMsgExtensionPairMissing   = "no extension pair declared for data attribute"
	ErrMsgExtensionDeclMissing   = "extension data attribute present without extension declaration"
	ErrMsgMissingBehavior        = "extension element is missing the behavior attribute"
	ErrMsgTemplateMarkerMissing  = "template path does not contain the template marker"

	// Action errors
	ErrMsgActionFailed          = "action invocation failed"
	ErrMsgValueFormUnsupported  = "action does not produce attribute values"
	ErrMsgStreamFormUnsupported = "action does not produce element content"

	// Parse and I/O errors
	ErrMsgParseFailed     = "failed to parse template document"
	ErrMsgMismatchedTag   = "mismatched closing tag"
	ErrMsgUnclosedElement = "unexpected end of document inside element"
	ErrMsgOpenInput       = "failed to open template file"
	ErrMsgCreateOutput    = "failed to create output file"
	ErrMsgWriteOutput     = "failed to write output document"
	ErrMsgCloseOutput     = "failed to finalize output file"
	ErrMsgRenameOutput    = "failed to move output file into place"
	ErrMsgResolvePath     = "failed to resolve template path"

	// Plugin configuration errors
	ErrMsgConfigRead  = "failed to read plugin configuration"
	ErrMsgConfigParse = "failed to parse plugin configuration"
)

// Error code constants for categorization
const (
	ErrCodeConfig   = "GENFILTER_CONFIG"
	ErrCodeAction   = "GENFILTER_ACTION"
	ErrCodeRegistry = "GENFILTER_REGISTRY"
	ErrCodeParse    = "GENFILTER_PARSE"
	ErrCodeIO       = "GENFILTER_IO"
)

// NewUnknownActionError creates an error for an unresolvable action identifier.
func NewUnknownActionError(id string) error {
	return cuserr.NewNotFoundError(MetaKeyAction, ErrMsgUnknownAction).
		WithMetadata(MetaKeyAction, id)
}

// NewRegistryError creates a registry misuse error.
func NewRegistryError(msg string, id string) error {
	err := cuserr.NewValidationError(ErrCodeRegistry, msg)
	if id != "" {
		err = err.WithMetadata(MetaKeyAction, id)
	}
	return err
}

// NewResolveError wraps a registry lookup failure with the location of the
// extension occurrence that triggered it.
func NewResolveError(cause error, template, element string) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgActionResolve).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeyElement, element)
}

// NewMissingBehaviorError creates an error for an extension element without a
// behavior attribute.
func NewMissingBehaviorError(template, element string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgMissingBehavior).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeyElement, element)
}

// NewMalformedDeclarationError creates an error for an extension declaration
// whose token list cannot be consumed as (localname, handler) pairs.
func NewMalformedDeclarationError(msg, decl, template, element string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyDeclaration, decl).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeyElement, element)
}

// NewExtensionPairMissingError creates an error for a data attribute whose
// localname has no matching pair in the extension declaration.
func NewExtensionPairMissingError(attr, decl, template, element string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgExtensionPairMissing).
		WithMetadata(MetaKeyAttribute, attr).
		WithMetadata(MetaKeyDeclaration, decl).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeyElement, element)
}

// NewExtensionDeclMissingError creates an error for a data attribute on an
// element that carries no extension declaration at all.
func NewExtensionDeclMissingError(attr, template, element string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgExtensionDeclMissing).
		WithMetadata(MetaKeyAttribute, attr).
		WithMetadata(MetaKeyTemplate, template).
		WithMetadata(MetaKeyElement, element)
}

// NewTemplateMarkerError creates an error for a template path that does not
// contain the template marker.
func NewTemplateMarkerError(path, marker string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgTemplateMarkerMissing).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyMarker, marker)
}

// NewActionError wraps a failure inside an action's result computation.
func NewActionError(id string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeAction, ErrMsgActionFailed).
		WithMetadata(MetaKeyAction, id)
}

// NewUnsupportedResultError creates an error for invoking an action in a
// result form it does not implement.
func NewUnsupportedResultError(msg string) error {
	return cuserr.NewValidationError(ErrCodeAction, msg)
}

// NewParseError wraps an upstream parser failure.
func NewParseError(cause error, template string) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgParseFailed).
		WithMetadata(MetaKeyTemplate, template)
}

// NewMismatchedTagError creates an error for a closing tag that does not
// match the open element.
func NewMismatchedTagError(expected, actual, template string) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgMismatchedTag).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, actual).
		WithMetadata(MetaKeyTemplate, template)
}

// NewUnclosedElementError creates an error for a document that ends while an
// element is still open.
func NewUnclosedElementError(element, template string) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgUnclosedElement).
		WithMetadata(MetaKeyElement, element).
		WithMetadata(MetaKeyTemplate, template)
}

// NewIOError wraps an input/output failure on the given path.
func NewIOError(msg, path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, msg).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigReadError wraps a failure to read a plugin configuration file.
func NewConfigReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigRead).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigParseError wraps a failure to decode a plugin configuration file.
func NewConfigParseError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigParse).
		WithMetadata(MetaKeyPath, path)
}
