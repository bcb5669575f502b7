package genfilter

import (
	"context"
	"encoding/xml"
	"errors"
	"io"

	"go.uber.org/zap"
)

// Reader is the upstream event source. It tokenizes an XML byte stream and
// reports element-start, element-end, character, comment, processing
// instruction, and directive events to a ContentHandler, with resolved
// namespace URIs, localnames, and qualified names.
//
// Namespace prefixes are resolved against an explicit scope stack so that
// qualified names survive into the output document; namespace declaration
// attributes stay in the attribute list so that downstream stages can decide
// their fate.
type Reader struct {
	dec      *xml.Decoder
	handler  ContentHandler
	logger   *zap.Logger
	scopes   []map[string]string
	open     []string
	systemID string
}

// NewReader creates a reader that parses from r and reports events to handler.
func NewReader(r io.Reader, handler ContentHandler, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		dec:     xml.NewDecoder(r),
		handler: handler,
		logger:  logger,
	}
}

// SetSystemID records the identity of the document being parsed for error
// reporting.
func (r *Reader) SetSystemID(id string) {
	r.systemID = id
}

// Parse drives the event stream to completion. It returns the first error
// reported by the handler chain, or a parse error for malformed input.
func (r *Reader) Parse(ctx context.Context) error {
	if err := r.handler.StartDocument(ctx); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok, err := r.dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return NewParseError(err, r.systemID)
		}
		if err := r.dispatch(ctx, tok); err != nil {
			return err
		}
	}
	if len(r.open) > 0 {
		return NewUnclosedElementError(r.open[len(r.open)-1], r.systemID)
	}
	return r.handler.EndDocument(ctx)
}

func (r *Reader) dispatch(ctx context.Context, tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		return r.startElement(ctx, t)
	case xml.EndElement:
		return r.endElement(ctx, t)
	case xml.CharData:
		return r.handler.Characters(ctx, string(t))
	case xml.Comment:
		return r.handler.Comment(ctx, string(t))
	case xml.ProcInst:
		return r.handler.ProcessingInstruction(ctx, t.Target, string(t.Inst))
	case xml.Directive:
		return r.handler.Directive(ctx, string(t))
	default:
		return nil
	}
}

func (r *Reader) startElement(ctx context.Context, t xml.StartElement) error {
	// Namespace declarations on this element take effect for the element
	// itself, so the scope is pushed before resolving its name.
	scope := make(map[string]string)
	for _, attr := range t.Attr {
		switch {
		case attr.Name.Space == "" && attr.Name.Local == XMLNSPrefix:
			scope[""] = attr.Value
		case attr.Name.Space == XMLNSPrefix:
			scope[attr.Name.Local] = attr.Value
		}
	}
	r.scopes = append(r.scopes, scope)
	r.open = append(r.open, qualifiedName(t.Name))

	uri := r.resolvePrefix(t.Name.Space, true)
	attrs := make(Attributes, 0, len(t.Attr))
	for _, attr := range t.Attr {
		attrs = append(attrs, Attribute{
			URI:   r.attributeURI(attr.Name),
			Local: attr.Name.Local,
			QName: qualifiedName(attr.Name),
			Type:  AttrTypeCData,
			Value: attr.Value,
		})
	}
	return r.handler.StartElement(ctx, uri, t.Name.Local, qualifiedName(t.Name), attrs)
}

func (r *Reader) endElement(ctx context.Context, t xml.EndElement) error {
	// RawToken skips tag matching, so well-formedness is enforced here.
	qname := qualifiedName(t.Name)
	if len(r.open) == 0 {
		return NewMismatchedTagError("", qname, r.systemID)
	}
	if expected := r.open[len(r.open)-1]; expected != qname {
		return NewMismatchedTagError(expected, qname, r.systemID)
	}
	r.open = r.open[:len(r.open)-1]

	uri := r.resolvePrefix(t.Name.Space, true)
	err := r.handler.EndElement(ctx, uri, t.Name.Local, qname)
	if len(r.scopes) > 0 {
		r.scopes = r.scopes[:len(r.scopes)-1]
	}
	return err
}

// attributeURI resolves an attribute name to its namespace URI. Unprefixed
// attributes have no namespace; namespace declarations live in the xmlns
// namespace.
func (r *Reader) attributeURI(name xml.Name) string {
	switch {
	case name.Space == "" && name.Local == XMLNSPrefix:
		return XMLNSNamespace
	case name.Space == XMLNSPrefix:
		return XMLNSNamespace
	case name.Space == "":
		return ""
	default:
		return r.resolvePrefix(name.Space, false)
	}
}

// resolvePrefix walks the scope stack innermost-first. The default namespace
// applies only to elements. An undeclared prefix resolves to the empty URI
// and is logged once per occurrence.
func (r *Reader) resolvePrefix(prefix string, isElement bool) string {
	if prefix == XMLPrefix {
		return XMLNamespace
	}
	if prefix == "" && !isElement {
		return ""
	}
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if uri, ok := r.scopes[i][prefix]; ok {
			return uri
		}
	}
	if prefix != "" {
		r.logger.Warn(LogMsgUnknownPrefix, zap.String(LogFieldPrefix, prefix))
	}
	return ""
}

// qualifiedName renders an xml.Name as written in the source document.
func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
