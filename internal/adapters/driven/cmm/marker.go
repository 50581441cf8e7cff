package cmm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

const markerHead = "<marker"

// parseMarker splits a marker line into attributes. The split is lossless:
// head, attributes and tail concatenate back to raw.
func parseMarker(raw string) (*domain.Marker, error) {
	m := &domain.Marker{Head: markerHead, Raw: raw}
	pos := len(markerHead)

	for {
		start := pos
		for pos < len(raw) && isSpace(raw[pos]) {
			pos++
		}
		if pos >= len(raw) || raw[pos] == '/' || raw[pos] == '>' {
			m.Tail = raw[start:]
			break
		}
		if pos == start {
			return nil, fmt.Errorf("%w: marker attributes must be separated by whitespace at column %d",
				domain.ErrInvalidInput, pos+1)
		}

		attr, next, err := parseAttr(raw, start, pos)
		if err != nil {
			return nil, err
		}
		m.Attrs = append(m.Attrs, attr)
		pos = next
	}

	idValue, ok := m.Attr("id")
	if !ok {
		return nil, fmt.Errorf("%w: marker without id", domain.ErrInvalidInput)
	}
	id, err := strconv.Atoi(idValue)
	if err != nil {
		return nil, fmt.Errorf("%w: marker id %q is not an integer", domain.ErrInvalidInput, idValue)
	}
	m.ID = id
	return m, nil
}

// scanMarker reads only the id that follows the marker prefix and keeps the
// line as is.
func scanMarker(raw string) (*domain.Marker, error) {
	rest := raw[len(prefixMarker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return nil, fmt.Errorf("%w: marker id is not terminated", domain.ErrInvalidInput)
	}
	id, err := strconv.Atoi(rest[:end])
	if err != nil {
		return nil, fmt.Errorf("%w: marker id %q is not an integer", domain.ErrInvalidInput, rest[:end])
	}
	return &domain.Marker{ID: id, Raw: raw}, nil
}

// parseAttr reads name, separator and quoted value starting at nameStart.
// lead runs from leadStart to nameStart.
func parseAttr(raw string, leadStart, nameStart int) (domain.Attr, int, error) {
	pos := nameStart
	for pos < len(raw) && raw[pos] != '=' && !isSpace(raw[pos]) && raw[pos] != '/' && raw[pos] != '>' {
		pos++
	}
	name := raw[nameStart:pos]
	if name == "" {
		return domain.Attr{}, 0, fmt.Errorf("%w: empty attribute name at column %d", domain.ErrInvalidInput, nameStart+1)
	}

	sepStart := pos
	for pos < len(raw) && isSpace(raw[pos]) {
		pos++
	}
	if pos >= len(raw) || raw[pos] != '=' {
		return domain.Attr{}, 0, fmt.Errorf("%w: attribute %q has no value", domain.ErrInvalidInput, name)
	}
	pos++
	for pos < len(raw) && isSpace(raw[pos]) {
		pos++
	}
	if pos >= len(raw) || (raw[pos] != '"' && raw[pos] != '\'') {
		return domain.Attr{}, 0, fmt.Errorf("%w: attribute %q value is not quoted", domain.ErrInvalidInput, name)
	}
	sep := raw[sepStart:pos]
	quote := raw[pos]
	pos++

	end := strings.IndexByte(raw[pos:], quote)
	if end < 0 {
		return domain.Attr{}, 0, fmt.Errorf("%w: attribute %q value is not terminated", domain.ErrInvalidInput, name)
	}

	attr := domain.Attr{
		Lead:  raw[leadStart:nameStart],
		Name:  name,
		Sep:   sep,
		Quote: quote,
		Value: raw[pos : pos+end],
	}
	return attr, pos + end + 1, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
