package offlinekyc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// Element is a single node of a loaded XML document. Names are the local
// part of the XML name; namespace prefixes are dropped.
type Element struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Element
}

// Attr returns the value of the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.Attrs[name]
	return v, ok
}

// Find returns the first descendant (depth-first, document order) with the
// given name, or nil. The element itself is not considered.
func (e *Element) Find(name string) *Element {
	if e == nil {
		return nil
	}
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Tree is a navigable document produced by a Loader.
type Tree struct {
	Root *Element
}

// Loader turns raw document bytes into a Tree.
type Loader func(raw []byte) (*Tree, error)

// ParseTree is the default Loader backed by encoding/xml. An input without
// any element yields a Tree with a nil Root; syntax errors are returned as
// *LoaderError. Non UTF-8 encodings declared in the prolog are transcoded.
func ParseTree(raw []byte) (*Tree, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	tree := &Tree{}
	var stack []*Element
	var text []bytes.Buffer

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &LoaderError{Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 && tree.Root != nil {
				return nil, &LoaderError{Err: fmt.Errorf("unexpected element %q after document root", t.Name.Local)}
			}
			el := &Element{Name: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				tree.Root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
			text = append(text, bytes.Buffer{})

		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1].Write(t)
			}

		case xml.EndElement:
			el := stack[len(stack)-1]
			el.Text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		}
	}

	return tree, nil
}
