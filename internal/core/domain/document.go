package domain

import (
	"fmt"
	"strings"
)

// LineKind classifies a line of a marker file.
type LineKind int

// Line kinds.
const (
	// LineOpaque is any line that is passed through untouched.
	LineOpaque LineKind = iota

	// LineMarkerSet is a <marker_set ...> header.
	LineMarkerSet

	// LineMarker is a <marker id="..." .../> line.
	LineMarker

	// LineClosing is the </marker_set> closing tag.
	LineClosing
)

// String returns the string representation.
func (k LineKind) String() string {
	switch k {
	case LineOpaque:
		return "opaque"
	case LineMarkerSet:
		return "marker_set"
	case LineMarker:
		return "marker"
	case LineClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Line is one line of a marker file, line ending included.
type Line struct {
	// Kind is the classification of the line.
	Kind LineKind

	// Raw is the line as read.
	Raw string

	// Marker is set for LineMarker lines.
	Marker *Marker
}

// Text renders the line, reflecting any marker edits.
func (l *Line) Text() string {
	if l.Marker != nil {
		return l.Marker.String()
	}
	return l.Raw
}

// Document is an ordered marker file with an index of its markers.
// Lines are never reordered; markers are never removed.
type Document struct {
	lines   []*Line
	index   map[int]int
	closing int
}

// NewDocument builds a document from classified lines.
// Marker ids must be unique.
func NewDocument(lines []*Line) (*Document, error) {
	d := &Document{lines: lines}
	if err := d.reindex(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) reindex() error {
	d.index = make(map[int]int)
	d.closing = -1
	for i, l := range d.lines {
		switch l.Kind {
		case LineMarker:
			if l.Marker == nil {
				return fmt.Errorf("%w: marker line %d has no marker", ErrInvalidInput, i+1)
			}
			if prev, ok := d.index[l.Marker.ID]; ok {
				return fmt.Errorf("%w: duplicate marker id %d on lines %d and %d",
					ErrInvalidInput, l.Marker.ID, prev+1, i+1)
			}
			d.index[l.Marker.ID] = i
		case LineClosing:
			d.closing = i
		}
	}
	return nil
}

// Lines returns the lines in document order.
func (d *Document) Lines() []*Line {
	return d.lines
}

// Markers returns every marker in document order.
func (d *Document) Markers() []*Marker {
	markers := make([]*Marker, 0, len(d.index))
	for _, l := range d.lines {
		if l.Kind == LineMarker {
			markers = append(markers, l.Marker)
		}
	}
	return markers
}

// Marker returns the marker with the given id.
func (d *Document) Marker(id int) (*Marker, bool) {
	i, ok := d.index[id]
	if !ok {
		return nil, false
	}
	return d.lines[i].Marker, true
}

// HasMarker reports whether a marker with the given id exists.
func (d *Document) HasMarker(id int) bool {
	_, ok := d.index[id]
	return ok
}

// MarkerCount returns the number of markers.
func (d *Document) MarkerCount() int {
	return len(d.index)
}

// ClosingIndex returns the position of the closing tag, or -1.
func (d *Document) ClosingIndex() int {
	return d.closing
}

// DropOpaque removes every opaque line, keeping headers, markers and the
// closing tag in their relative order.
func (d *Document) DropOpaque() {
	kept := d.lines[:0]
	for _, l := range d.lines {
		if l.Kind != LineOpaque {
			kept = append(kept, l)
		}
	}
	d.lines = kept
	// Removing lines cannot introduce duplicate ids.
	_ = d.reindex()
}

// Text concatenates the rendered lines.
func (d *Document) Text() string {
	var b strings.Builder
	for _, l := range d.lines {
		b.WriteString(l.Text())
	}
	return b.String()
}
