package genfilter

import (
	"context"
	"strings"
)

// RegisterBuiltinActions registers the built-in actions on the given
// registry. A fresh default registry always holds them.
func RegisterBuiltinActions(r *Registry) {
	r.MustRegister(ActionNameInsert, func() Action { return &InsertAction{} })
	r.MustRegister(ActionNameText, func() Action { return &TextAction{} })
	r.MustRegister(ActionNameJoin, func() Action { return &JoinAction{} })
}

// InsertAction is an element-extension action that parses each input value as
// an XML fragment and streams it in place of the extension element. Plugins
// contribute fragments like "<import file=\"shared.xsl\"/>" to an extension
// point, and the template pulls them all in with one marker element.
type InsertAction struct {
	BaseAction
}

// WriteResult parses every input fragment and forwards its events.
func (a *InsertAction) WriteResult(ctx context.Context, out ContentHandler) error {
	for _, fragment := range a.Input() {
		reader := NewReader(strings.NewReader(fragment), &fragmentHandler{next: out}, a.Logger())
		if tmpl, ok := a.Param(ParamTemplate); ok {
			reader.SetSystemID(tmpl)
		}
		if err := reader.Parse(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TextAction is an element-extension action that emits the contributed values
// as character data, one value per line.
type TextAction struct {
	BaseAction
}

// WriteResult emits the input values joined by newlines.
func (a *TextAction) WriteResult(ctx context.Context, out ContentHandler) error {
	input := a.Input()
	if len(input) == 0 {
		return nil
	}
	return out.Characters(ctx, strings.Join(input, "\n"))
}

// JoinAction is an attribute-extension action that joins its input values
// with a separator. The separator defaults to "," and can be overridden with
// a "separator" parameter.
type JoinAction struct {
	BaseAction
}

// Result joins the input values.
func (a *JoinAction) Result(ctx context.Context) (string, error) {
	return strings.Join(a.Input(), a.ParamDefault(ParamSeparator, DefaultJoinSeparator)), nil
}

// fragmentHandler forwards fragment events into an enclosing stream,
// suppressing the fragment's own document boundaries.
type fragmentHandler struct {
	next ContentHandler
}

func (h *fragmentHandler) StartDocument(ctx context.Context) error {
	return nil
}

func (h *fragmentHandler) EndDocument(ctx context.Context) error {
	return nil
}

func (h *fragmentHandler) StartElement(ctx context.Context, uri, local, qname string, attrs Attributes) error {
	return h.next.StartElement(ctx, uri, local, qname, attrs)
}

func (h *fragmentHandler) EndElement(ctx context.Context, uri, local, qname string) error {
	return h.next.EndElement(ctx, uri, local, qname)
}

func (h *fragmentHandler) Characters(ctx context.Context, data string) error {
	return h.next.Characters(ctx, data)
}

func (h *fragmentHandler) Comment(ctx context.Context, data string) error {
	return h.next.Comment(ctx, data)
}

func (h *fragmentHandler) ProcessingInstruction(ctx context.Context, target, data string) error {
	return h.next.ProcessingInstruction(ctx, target, data)
}

func (h *fragmentHandler) Directive(ctx context.Context, data string) error {
	return h.next.Directive(ctx, data)
}
