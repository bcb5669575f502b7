package genfilter

import (
	"context"

	"go.uber.org/zap"
)

// Action is the interface that extension handlers must implement. The filter
// constructs a fresh action for every extension occurrence, configures it, and
// invokes exactly one of the two result forms: Result for attribute extensions
// and WriteResult for element extensions. Actions hold no state beyond one
// invocation and are discarded afterwards.
type Action interface {
	// SetLogger attaches the logging collaborator.
	SetLogger(logger *zap.Logger)

	// SetFeatures attaches the plugin table, passed through unchanged from
	// the surrounding plugin system.
	SetFeatures(plugins PluginTable)

	// AddParam supplies a named parameter. Every action receives at least
	// the "template" parameter; element extensions additionally receive
	// every attribute declared on the marker element.
	AddParam(name, value string)

	// SetInput supplies the ordered input sequence. The slice is never nil
	// and its order reflects plugin composition order.
	SetInput(values []string)

	// Result computes the single replacement value of an attribute
	// extension.
	Result(ctx context.Context) (string, error)

	// WriteResult streams the replacement content of an element extension
	// into the outgoing event stream.
	WriteResult(ctx context.Context, out ContentHandler) error
}

// ActionFactory produces a new, independent Action instance.
type ActionFactory func() Action

// BaseAction carries the configuration every action receives and provides
// default implementations of both result forms that reject the unsupported
// call. Concrete actions embed it and override the form they produce.
type BaseAction struct {
	logger  *zap.Logger
	plugins PluginTable
	params  map[string]string
	input   []string
}

// SetLogger attaches the logging collaborator.
func (a *BaseAction) SetLogger(logger *zap.Logger) {
	a.logger = logger
}

// Logger returns the attached logger, or a no-op logger if none was set.
func (a *BaseAction) Logger() *zap.Logger {
	if a.logger == nil {
		return zap.NewNop()
	}
	return a.logger
}

// SetFeatures attaches the plugin table.
func (a *BaseAction) SetFeatures(plugins PluginTable) {
	a.plugins = plugins
}

// Features returns the attached plugin table.
func (a *BaseAction) Features() PluginTable {
	return a.plugins
}

// AddParam stores a named parameter.
func (a *BaseAction) AddParam(name, value string) {
	if a.params == nil {
		a.params = make(map[string]string)
	}
	a.params[name] = value
}

// Param returns a parameter value and whether it was supplied.
func (a *BaseAction) Param(name string) (string, bool) {
	value, ok := a.params[name]
	return value, ok
}

// ParamDefault returns a parameter value, or defaultVal if it was not
// supplied.
func (a *BaseAction) ParamDefault(name, defaultVal string) string {
	if value, ok := a.params[name]; ok {
		return value
	}
	return defaultVal
}

// SetInput stores the ordered input sequence.
func (a *BaseAction) SetInput(values []string) {
	a.input = values
}

// Input returns the ordered input sequence, never nil.
func (a *BaseAction) Input() []string {
	if a.input == nil {
		return []string{}
	}
	return a.input
}

// Result rejects the attribute-value form. Actions that produce attribute
// values override it.
func (a *BaseAction) Result(ctx context.Context) (string, error) {
	return "", NewUnsupportedResultError(ErrMsgValueFormUnsupported)
}

// WriteResult rejects the element-stream form. Actions that produce element
// content override it.
func (a *BaseAction) WriteResult(ctx context.Context, out ContentHandler) error {
	return NewUnsupportedResultError(ErrMsgStreamFormUnsupported)
}
