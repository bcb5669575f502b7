package genfilter

import (
	"context"
)

// Attribute is a single attribute as reported by the upstream parser:
// resolved namespace URI, localname, qualified name, declared type, and value.
type Attribute struct {
	URI   string
	Local string
	QName string
	Type  string
	Value string
}

// Attributes is the ordered attribute list of one element. Order is
// significant and preserved through the filter.
type Attributes []Attribute

// Value returns the value of the attribute with the given namespace URI and
// localname, and whether it exists.
func (a Attributes) Value(uri, local string) (string, bool) {
	for _, attr := range a {
		if attr.URI == uri && attr.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}

// Get returns the attribute with the given namespace URI and localname.
func (a Attributes) Get(uri, local string) (Attribute, bool) {
	for _, attr := range a {
		if attr.URI == uri && attr.Local == local {
			return attr, true
		}
	}
	return Attribute{}, false
}

// ContentHandler is the event-stream contract shared by the upstream parser,
// the document filter, and the downstream serializer. A stage receives events
// through this interface and may emit zero or more events to the next stage.
// Returning an error aborts processing of the current document.
type ContentHandler interface {
	StartDocument(ctx context.Context) error
	EndDocument(ctx context.Context) error
	StartElement(ctx context.Context, uri, local, qname string, attrs Attributes) error
	EndElement(ctx context.Context, uri, local, qname string) error
	Characters(ctx context.Context, data string) error
	Comment(ctx context.Context, data string) error
	ProcessingInstruction(ctx context.Context, target, data string) error
	Directive(ctx context.Context, data string) error
}

// AttributesBuilder assembles the outgoing attribute set of one element.
type AttributesBuilder struct {
	attrs Attributes
}

// NewAttributesBuilder creates an empty attribute builder.
func NewAttributesBuilder() *AttributesBuilder {
	return &AttributesBuilder{}
}

// Add appends an attribute from its parts.
func (b *AttributesBuilder) Add(uri, local, qname, typ, value string) *AttributesBuilder {
	b.attrs = append(b.attrs, Attribute{URI: uri, Local: local, QName: qname, Type: typ, Value: value})
	return b
}

// AddAttribute appends an attribute unchanged.
func (b *AttributesBuilder) AddAttribute(attr Attribute) *AttributesBuilder {
	b.attrs = append(b.attrs, attr)
	return b
}

// Build returns the assembled attribute list.
func (b *AttributesBuilder) Build() Attributes {
	return b.attrs
}

type eventKind int

const (
	eventStartDocument eventKind = iota
	eventEndDocument
	eventStartElement
	eventEndElement
	eventCharacters
	eventComment
	eventProcessingInstruction
	eventDirective
)

type recordedEvent struct {
	kind   eventKind
	uri    string
	local  string
	qname  string
	data   string
	target string
	attrs  Attributes
}

// EventRecorder is a ContentHandler that records events in order so they can
// be replayed into another handler later. The filter uses it to hold an
// action's sub-stream until the action has succeeded; tests use it to inspect
// filter output.
type EventRecorder struct {
	events []recordedEvent
}

// NewEventRecorder creates an empty recorder.
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

// Len returns the number of recorded events.
func (r *EventRecorder) Len() int {
	return len(r.events)
}

// Replay feeds every recorded event into the given handler in order.
func (r *EventRecorder) Replay(ctx context.Context, h ContentHandler) error {
	for _, ev := range r.events {
		var err error
		switch ev.kind {
		case eventStartDocument:
			err = h.StartDocument(ctx)
		case eventEndDocument:
			err = h.EndDocument(ctx)
		case eventStartElement:
			err = h.StartElement(ctx, ev.uri, ev.local, ev.qname, ev.attrs)
		case eventEndElement:
			err = h.EndElement(ctx, ev.uri, ev.local, ev.qname)
		case eventCharacters:
			err = h.Characters(ctx, ev.data)
		case eventComment:
			err = h.Comment(ctx, ev.data)
		case eventProcessingInstruction:
			err = h.ProcessingInstruction(ctx, ev.target, ev.data)
		case eventDirective:
			err = h.Directive(ctx, ev.data)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// StartDocument records a start-document event.
func (r *EventRecorder) StartDocument(ctx context.Context) error {
	r.events = append(r.events, recordedEvent{kind: eventStartDocument})
	return nil
}

// EndDocument records an end-document event.
func (r *EventRecorder) EndDocument(ctx context.Context) error {
	r.events = append(r.events, recordedEvent{kind: eventEndDocument})
	return nil
}

// StartElement records an element-start event. The attribute list is copied
// so later mutation by the producer cannot change the recording.
func (r *EventRecorder) StartElement(ctx context.Context, uri, local, qname string, attrs Attributes) error {
	copied := make(Attributes, len(attrs))
	copy(copied, attrs)
	r.events = append(r.events, recordedEvent{
		kind:  eventStartElement,
		uri:   uri,
		local: local,
		qname: qname,
		attrs: copied,
	})
	return nil
}

// EndElement records an element-end event.
func (r *EventRecorder) EndElement(ctx context.Context, uri, local, qname string) error {
	r.events = append(r.events, recordedEvent{kind: eventEndElement, uri: uri, local: local, qname: qname})
	return nil
}

// Characters records a character-data event.
func (r *EventRecorder) Characters(ctx context.Context, data string) error {
	r.events = append(r.events, recordedEvent{kind: eventCharacters, data: data})
	return nil
}

// Comment records a comment event.
func (r *EventRecorder) Comment(ctx context.Context, data string) error {
	r.events = append(r.events, recordedEvent{kind: eventComment, data: data})
	return nil
}

// ProcessingInstruction records a processing-instruction event.
func (r *EventRecorder) ProcessingInstruction(ctx context.Context, target, data string) error {
	r.events = append(r.events, recordedEvent{kind: eventProcessingInstruction, target: target, data: data})
	return nil
}

// Directive records a directive event, such as a DOCTYPE declaration.
func (r *EventRecorder) Directive(ctx context.Context, data string) error {
	r.events = append(r.events, recordedEvent{kind: eventDirective, data: data})
	return nil
}
