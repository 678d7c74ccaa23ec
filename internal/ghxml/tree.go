package ghxml

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// element is a decoded XML element. Attribute keys are lowercased so the
// archive interpreter can match them case-insensitively; the raw name is
// kept verbatim for the compact interpreter.
type element struct {
	Name     string
	Attrs    map[string]string
	Children []*element
	Text     string
}

// attr returns the named attribute, matching the key case-insensitively.
func (e *element) attr(name string) (string, bool) {
	v, ok := e.Attrs[strings.ToLower(name)]
	return v, ok
}

// child returns the first direct child whose element name folds to name.
func (e *element) child(name string) *element {
	for _, c := range e.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

// children returns all direct children whose element name folds to name.
func (e *element) children(name string) []*element {
	var out []*element
	for _, c := range e.Children {
		if strings.EqualFold(c.Name, name) {
			out = append(out, c)
		}
	}
	return out
}

// decodeDocument strips the UTF-8 BOM and any prolog, then decodes the
// whole document into an element tree rooted at the first element.
func decodeDocument(text string) (*element, error) {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.TrimSpace(text)

	dec := xml.NewDecoder(bytes.NewReader([]byte(text)))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, &UnknownFormatError{}
		}
		if err != nil {
			return nil, &MalformedError{Err: err}
		}
		if start, ok := tok.(xml.StartElement); ok {
			root, err := decodeElement(dec, start)
			if err != nil {
				return nil, &MalformedError{Err: err}
			}
			return root, nil
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (*element, error) {
	el := &element{
		Name:  start.Name.Local,
		Attrs: make(map[string]string, len(start.Attr)),
	}
	for _, a := range start.Attr {
		el.Attrs[strings.ToLower(a.Name.Local)] = a.Value
	}
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			el.Text = text.String()
			return el, nil
		}
	}
}
