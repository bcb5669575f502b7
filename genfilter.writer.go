package genfilter

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Writer is the downstream serializer: a ContentHandler that renders the
// filtered event stream back into an XML byte stream. Qualified names are
// written exactly as reported, so prefixes from the source document survive.
type Writer struct {
	w    *bufio.Writer
	path string
}

// NewWriter creates a serializer writing to w. path is used in error
// reports only.
func NewWriter(w io.Writer, path string) *Writer {
	return &Writer{
		w:    bufio.NewWriter(w),
		path: path,
	}
}

// StartDocument emits nothing; the XML declaration arrives as a processing
// instruction event when present in the source.
func (s *Writer) StartDocument(ctx context.Context) error {
	return nil
}

// EndDocument flushes buffered output.
func (s *Writer) EndDocument(ctx context.Context) error {
	if err := s.w.Flush(); err != nil {
		return NewIOError(ErrMsgWriteOutput, s.path, err)
	}
	return nil
}

// StartElement writes an element start tag with its attribute list in order.
func (s *Writer) StartElement(ctx context.Context, uri, local, qname string, attrs Attributes) error {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(qname)
	for _, attr := range attrs {
		b.WriteByte(' ')
		b.WriteString(attr.QName)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(attr.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return s.write(b.String())
}

// EndElement writes an element end tag.
func (s *Writer) EndElement(ctx context.Context, uri, local, qname string) error {
	return s.write("</" + qname + ">")
}

// Characters writes escaped character data.
func (s *Writer) Characters(ctx context.Context, data string) error {
	return s.write(escapeText(data))
}

// Comment writes a comment.
func (s *Writer) Comment(ctx context.Context, data string) error {
	return s.write("<!--" + data + "-->")
}

// ProcessingInstruction writes a processing instruction.
func (s *Writer) ProcessingInstruction(ctx context.Context, target, data string) error {
	if data == "" {
		return s.write("<?" + target + "?>")
	}
	return s.write("<?" + target + " " + data + "?>")
}

// Directive writes a directive such as a DOCTYPE declaration.
func (s *Writer) Directive(ctx context.Context, data string) error {
	return s.write("<!" + data + ">")
}

func (s *Writer) write(data string) error {
	if _, err := s.w.WriteString(data); err != nil {
		return NewIOError(ErrMsgWriteOutput, s.path, err)
	}
	return nil
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#xA;",
	"\t", "&#x9;",
)

// escapeText escapes character data.
func escapeText(data string) string {
	return textEscaper.Replace(data)
}

// escapeAttr escapes an attribute value for double-quoted output.
func escapeAttr(value string) string {
	return attrEscaper.Replace(value)
}
