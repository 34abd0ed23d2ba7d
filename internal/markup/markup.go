// Package markup drives a stack of element handlers over an XML event
// stream.
//
// The decoder is the only place the loader touches raw XML. Each open
// element asks the current handler for a child handler; a nil child skips
// the whole subtree. Close events deliver the element's accumulated text to
// the parent handler, and a handler is finalized exactly once when its own
// subtree closes. This mirrors the nesting of the document format: one
// handler per nesting depth, no lookahead, no backtracking.
package markup

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// ElementHandler processes the events of one nesting depth.
type ElementHandler interface {
	// OpenElement is called for each child element. It returns the
	// handler for the child's subtree, or nil to skip the subtree (the
	// handler is expected to have warned).
	OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (ElementHandler, error)

	// CloseElement is called when a direct child element closes, with
	// the text content accumulated inside it.
	CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error

	// EndHandler is called once when this handler's own element closes,
	// before the parent's CloseElement.
	EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error
}

// BaseHandler provides the default close behavior: leftover text or
// attributes in an element nothing consumed are warned about. Handlers
// embed it and override what they need; an override can delegate back for
// the leftover check.
type BaseHandler struct{}

// CloseElement warns about unconsumed content and attributes.
func (BaseHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	if strings.TrimSpace(content) != "" {
		warnings.Addf("Unknown text in element '%s', ignoring.", element)
	}
	if len(attrs) > 0 {
		warnings.Addf("Unknown attributes in element '%s', ignoring.", element)
	}
	return nil
}

// EndHandler does nothing by default.
func (BaseHandler) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	return nil
}

// PlainTextHandler accepts no child elements and simply lets its element's
// text accumulate for the parent's CloseElement.
type PlainTextHandler struct {
	BaseHandler
}

// PlainText is the shared instance; the handler is stateless.
var PlainText = &PlainTextHandler{}

// OpenElement rejects nested elements inside a text-only element.
func (*PlainTextHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (ElementHandler, error) {
	warnings.Addf("Unknown element '%s', ignoring.", element)
	return nil, nil
}

// CloseElement ignores everything; the text belongs to the parent.
func (*PlainTextHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	return nil
}

// SyntaxError is the fatal outcome of a load: the underlying markup could
// not be tokenized at all.
type SyntaxError struct {
	Line int64
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed XML on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("malformed XML: %v", e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// frame is one level of the handler stack. A nil handler marks a skipped
// subtree.
type frame struct {
	handler ElementHandler
	element string
	attrs   map[string]string
	content strings.Builder
}

// Run feeds the XML document from r through the handler stack rooted at
// root. Recoverable oddities go to warnings; only unparseable markup
// returns an error.
func Run(r io.Reader, root ElementHandler, warnings *warnset.Set) error {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	stack := []*frame{{handler: root}}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			se := &SyntaxError{Err: err}
			if xe, ok := err.(*xml.SyntaxError); ok {
				se.Line = int64(xe.Line)
			}
			return se
		}

		top := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			attrs := attrMap(t.Attr)

			if top.handler == nil {
				// Inside a skipped subtree.
				stack = append(stack, &frame{element: name})
				continue
			}

			child, err := top.handler.OpenElement(name, attrs, warnings)
			if err != nil {
				return err
			}
			stack = append(stack, &frame{handler: child, element: name, attrs: attrs})

		case xml.EndElement:
			if len(stack) < 2 {
				return &SyntaxError{Err: fmt.Errorf("unexpected end of element %q", t.Name.Local)}
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]

			if closed.handler == nil {
				continue
			}

			content := closed.content.String()
			if err := closed.handler.EndHandler(closed.element, closed.attrs, content, warnings); err != nil {
				return err
			}
			if parent.handler == nil {
				continue
			}
			if err := parent.handler.CloseElement(closed.element, closed.attrs, content, warnings); err != nil {
				return err
			}

		case xml.CharData:
			if top.handler != nil {
				top.content.Write(t)
			}

		case xml.ProcInst:
			// The <?xml?> declaration is expected; anything else is
			// surprising but harmless.
			if t.Target != "xml" {
				warnings.Addf("Unknown processing instruction '%s', ignoring.", t.Target)
			}

		case xml.Directive:
			warnings.Addf("Unknown document directive, ignoring.")

		case xml.Comment:
			// ignore
		}
	}

	if len(stack) != 1 {
		return &SyntaxError{Err: fmt.Errorf("unexpected end of document inside element %q",
			stack[len(stack)-1].element)}
	}
	return nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}
