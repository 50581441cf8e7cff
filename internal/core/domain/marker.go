package domain

import (
	"fmt"
	"strings"
)

// Colour attribute names on marker and link elements.
const (
	AttrRed   = "r"
	AttrGreen = "g"
	AttrBlue  = "b"
)

// Attr is one attribute of a marker line, kept with enough surrounding
// text to render it back byte for byte.
type Attr struct {
	// Lead is the whitespace before the name.
	Lead string

	// Name is the attribute name.
	Name string

	// Sep is the text between the name and the opening quote, normally "=".
	Sep string

	// Quote is the quote character, '"' or '\''.
	Quote byte

	// Value is the unquoted value, verbatim.
	Value string
}

func (a Attr) render(b *strings.Builder) {
	b.WriteString(a.Lead)
	b.WriteString(a.Name)
	b.WriteString(a.Sep)
	b.WriteByte(a.Quote)
	b.WriteString(a.Value)
	b.WriteByte(a.Quote)
}

// Marker is a typed marker line.
//
// Head + attributes + Tail always renders to Raw until an attribute is
// changed; after that the line is rebuilt from the parts.
type Marker struct {
	// ID is the value of the id attribute.
	ID int

	// Head is the text before the first attribute ("<marker").
	Head string

	// Attrs are the attributes in source order.
	Attrs []Attr

	// Tail is everything after the last attribute, line ending included.
	Tail string

	// Raw is the original line.
	Raw string

	modified bool
}

// Attr returns the value of the named attribute.
func (m *Marker) Attr(name string) (string, bool) {
	for _, a := range m.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the value of the named attribute in place. A missing
// attribute is appended after the last one.
func (m *Marker) SetAttr(name, value string) {
	m.modified = true
	for i := range m.Attrs {
		if m.Attrs[i].Name == name {
			m.Attrs[i].Value = value
			return
		}
	}
	m.Attrs = append(m.Attrs, Attr{Lead: " ", Name: name, Sep: "=", Quote: '"', Value: value})
}

// SetColor rewrites the r, g and b attributes with 6 decimals.
func (m *Marker) SetColor(c RGB) {
	m.SetAttr(AttrRed, fmt.Sprintf("%.6f", c.R))
	m.SetAttr(AttrGreen, fmt.Sprintf("%.6f", c.G))
	m.SetAttr(AttrBlue, fmt.Sprintf("%.6f", c.B))
}

// Modified reports whether any attribute was set since parsing.
func (m *Marker) Modified() bool {
	return m.modified
}

// String renders the marker line.
func (m *Marker) String() string {
	if !m.modified {
		return m.Raw
	}
	var b strings.Builder
	b.Grow(len(m.Raw) + 16)
	b.WriteString(m.Head)
	for _, a := range m.Attrs {
		a.render(&b)
	}
	b.WriteString(m.Tail)
	return b.String()
}
