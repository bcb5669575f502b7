package genfilter

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Filter is the document filter: a ContentHandler stage interposed between
// the upstream parser and the downstream serializer. It recognizes extension
// constructs in the reserved namespace, dispatches them to actions resolved
// through the registry, and re-emits a transformed event stream. Everything
// outside the reserved namespace passes through unchanged.
//
// A Filter is bound to one document and must not be reused across documents.
type Filter struct {
	next         ContentHandler
	registry     *Registry
	features     FeatureTable
	plugins      PluginTable
	logger       *zap.Logger
	namespace    string
	separator    string
	templateFile string
}

// NewFilter creates a document filter that emits into next. templateFile is
// the identity of the document being processed and is handed to every action
// as its "template" parameter.
func NewFilter(next ContentHandler, templateFile string, features FeatureTable, plugins PluginTable, opts ...Option) *Filter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return newFilter(next, templateFile, features, plugins, cfg)
}

func newFilter(next ContentHandler, templateFile string, features FeatureTable, plugins PluginTable, cfg *config) *Filter {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.registry
	if registry == nil {
		registry = NewRegistry(logger)
		RegisterBuiltinActions(registry)
	}
	if features == nil {
		features = FeatureTable{}
	}
	if plugins == nil {
		plugins = PluginTable{}
	}
	return &Filter{
		next:         next,
		registry:     registry,
		features:     features,
		plugins:      plugins,
		logger:       logger,
		namespace:    cfg.namespace,
		separator:    cfg.separator,
		templateFile: templateFile,
	}
}

// StartDocument passes the event through.
func (f *Filter) StartDocument(ctx context.Context) error {
	return f.next.StartDocument(ctx)
}

// EndDocument passes the event through.
func (f *Filter) EndDocument(ctx context.Context) error {
	return f.next.EndDocument(ctx)
}

// StartElement recognizes the two extension forms. An element-extension
// marker is replaced entirely by its action's sub-stream; any other element
// has its attribute set scanned for attribute extensions and is re-emitted
// with the assembled attributes.
func (f *Filter) StartElement(ctx context.Context, uri, local, qname string, attrs Attributes) error {
	if uri == f.namespace && local == ExtensionElement {
		return f.applyElementExtension(ctx, qname, attrs)
	}

	builder := NewAttributesBuilder()
	for _, attr := range attrs {
		switch {
		case attr.URI == f.namespace && attr.Local != ExtensionAttr:
			if err := f.applyAttributeExtension(ctx, qname, attrs, attr, builder); err != nil {
				return err
			}
		case attr.URI == f.namespace:
			// The extension declaration itself is metadata, consumed above.
		case f.isReservedNamespaceDecl(attr):
			// The reserved namespace declaration never reaches the output.
		default:
			builder.AddAttribute(attr)
		}
	}
	return f.next.StartElement(ctx, uri, local, qname, builder.Build())
}

// EndElement suppresses the end event of the element-extension marker; the
// start event already replaced the whole element.
func (f *Filter) EndElement(ctx context.Context, uri, local, qname string) error {
	if uri == f.namespace && local == ExtensionElement {
		return nil
	}
	return f.next.EndElement(ctx, uri, local, qname)
}

// Characters passes the event through.
func (f *Filter) Characters(ctx context.Context, data string) error {
	return f.next.Characters(ctx, data)
}

// Comment passes the event through.
func (f *Filter) Comment(ctx context.Context, data string) error {
	return f.next.Comment(ctx, data)
}

// ProcessingInstruction passes the event through.
func (f *Filter) ProcessingInstruction(ctx context.Context, target, data string) error {
	return f.next.ProcessingInstruction(ctx, target, data)
}

// Directive passes the event through.
func (f *Filter) Directive(ctx context.Context, data string) error {
	return f.next.Directive(ctx, data)
}

// applyElementExtension resolves the marker's behavior, configures a fresh
// action, and streams its result in place of the marker element. Resolution
// failures abort the document; a failure inside the action drops the element
// and processing continues.
func (f *Filter) applyElementExtension(ctx context.Context, qname string, attrs Attributes) error {
	behavior, ok := attrs.Value("", BehaviorAttr)
	if !ok || behavior == "" {
		return NewMissingBehaviorError(f.templateFile, qname)
	}

	action, err := f.registry.Resolve(behavior)
	if err != nil {
		return NewResolveError(err, f.templateFile, qname)
	}

	action.SetLogger(f.logger)
	action.AddParam(ParamTemplate, f.templateFile)
	for _, attr := range attrs {
		action.AddParam(attr.Local, attr.Value)
	}

	input := []string{}
	if id, ok := attrs.Value("", ExtensionIDAttr); ok {
		if values, ok := f.features.Values(id); ok {
			input = values
		}
	}
	action.SetInput(input)
	action.SetFeatures(f.plugins)

	// The sub-stream is recorded and replayed only on success, so a failing
	// action cannot leave half-written markup downstream.
	recorder := NewEventRecorder()
	if err := action.WriteResult(ctx, recorder); err != nil {
		f.logger.Warn(LogMsgElementDropped,
			zap.String(LogFieldTemplate, f.templateFile),
			zap.String(LogFieldElement, qname),
			zap.String(LogFieldAction, behavior),
			zap.Error(err),
		)
		return nil
	}
	return recorder.Replay(ctx, f.next)
}

// applyAttributeExtension computes the replacement value of one reserved
// namespace data attribute and adds the bare localname with that value to the
// outgoing attribute set. Declaration problems abort the document; a failure
// inside the action drops the attribute and processing continues.
func (f *Filter) applyAttributeExtension(ctx context.Context, qname string, attrs Attributes, data Attribute, builder *AttributesBuilder) error {
	decl, ok := attrs.Value(f.namespace, ExtensionAttr)
	if !ok {
		return NewExtensionDeclMissingError(data.Local, f.templateFile, qname)
	}

	pairs, err := parseExtensionPairs(decl, f.templateFile, qname)
	if err != nil {
		return err
	}

	pair, ok := findExtensionPair(pairs, data.Local)
	if !ok {
		return NewExtensionPairMissingError(data.Local, decl, f.templateFile, qname)
	}

	action, err := f.registry.Resolve(pair.handler)
	if err != nil {
		return NewResolveError(err, f.templateFile, qname)
	}

	action.SetLogger(f.logger)
	action.SetFeatures(f.plugins)
	action.AddParam(ParamTemplate, f.templateFile)
	action.SetInput(splitFeatureValues(data.Value, f.separator))

	value, err := action.Result(ctx)
	if err != nil {
		f.logger.Warn(LogMsgAttributeDropped,
			zap.String(LogFieldTemplate, f.templateFile),
			zap.String(LogFieldElement, qname),
			zap.String(LogFieldAttribute, data.Local),
			zap.String(LogFieldAction, pair.handler),
			zap.Error(err),
		)
		return nil
	}

	builder.Add("", data.Local, data.Local, AttrTypeCData, value)
	return nil
}

// isReservedNamespaceDecl reports whether the attribute declares the reserved
// namespace, either as a prefixed declaration or as the default namespace.
func (f *Filter) isReservedNamespaceDecl(attr Attribute) bool {
	if attr.Value != f.namespace {
		return false
	}
	return attr.QName == XMLNSPrefix || strings.HasPrefix(attr.QName, XMLNSPrefix+":")
}
