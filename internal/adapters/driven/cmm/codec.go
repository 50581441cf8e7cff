// Package cmm reads and writes Chimera marker files.
//
// A marker file is treated as a sequence of lines rather than a tree: marker
// set headers and marker lines are recognised by prefix, everything else is
// carried through verbatim. Unmodified lines serialise back byte for byte.
package cmm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
	"github.com/custodia-labs/chromcmm/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.DocumentCodec = (*Codec)(nil)

// Line prefixes and the closing tag.
const (
	prefixMarkerSet = "<marker_set"
	prefixMarker    = `<marker id="`
	closingTag      = "</marker_set>"
)

// Codec converts marker files to and from domain.Document.
type Codec struct{}

// NewCodec creates a new marker file codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Decode reads every line of r, keeping line endings. Marker lines are
// tokenised into attributes so their colours can be rewritten.
func (c *Codec) Decode(r io.Reader) (*domain.Document, error) {
	return readDocument(r, parseMarker)
}

// Scan reads every line of r like Decode but only extracts marker ids.
// Marker lines keep their raw text and are never re-rendered, so attributes
// the tokenizer would reject pass through untouched.
func (c *Codec) Scan(r io.Reader) (*domain.Document, error) {
	return readDocument(r, scanMarker)
}

func readDocument(r io.Reader, marker func(string) (*domain.Marker, error)) (*domain.Document, error) {
	raws, err := readLines(r)
	if err != nil {
		return nil, err
	}

	lines := make([]*domain.Line, 0, len(raws))
	for i, raw := range splitClosing(raws) {
		line, err := classify(raw, marker)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}

	return domain.NewDocument(markClosing(lines))
}

func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var raws []string
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			raws = append(raws, raw)
		}
		if errors.Is(err, io.EOF) {
			return raws, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func classify(raw string, marker func(string) (*domain.Marker, error)) (*domain.Line, error) {
	switch {
	case strings.HasPrefix(raw, prefixMarkerSet):
		return &domain.Line{Kind: domain.LineMarkerSet, Raw: raw}, nil
	case strings.HasPrefix(raw, prefixMarker):
		m, err := marker(raw)
		if err != nil {
			return nil, err
		}
		return &domain.Line{Kind: domain.LineMarker, Raw: raw, Marker: m}, nil
	default:
		return &domain.Line{Kind: domain.LineOpaque, Raw: raw}, nil
	}
}

// splitClosing moves the last closing tag that ends a line after other
// content onto a line of its own. The pieces concatenate back to the
// original text.
func splitClosing(raws []string) []string {
	for _, raw := range raws {
		if strings.TrimSpace(raw) == closingTag {
			return raws
		}
	}
	for i := len(raws) - 1; i >= 0; i-- {
		if !strings.HasSuffix(strings.TrimSpace(raws[i]), closingTag) {
			continue
		}
		cut := strings.LastIndex(raws[i], closingTag)
		split := make([]string, 0, len(raws)+1)
		split = append(split, raws[:i]...)
		split = append(split, raws[i][:cut], raws[i][cut:])
		return append(split, raws[i+1:]...)
	}
	return raws
}

// markClosing tags the last line consisting of the closing tag.
func markClosing(lines []*domain.Line) []*domain.Line {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i].Kind == domain.LineOpaque && strings.TrimSpace(lines[i].Raw) == closingTag {
			lines[i].Kind = domain.LineClosing
			break
		}
	}
	return lines
}

// Encode writes doc followed by links. Links go immediately before the
// closing tag; a document without one gets a closing tag after the links.
func (c *Codec) Encode(w io.Writer, doc *domain.Document, links []domain.Link) error {
	bw := bufio.NewWriter(w)
	closing := doc.ClosingIndex()
	endsWithNewline := true

	for i, l := range doc.Lines() {
		if i == closing && len(links) > 0 {
			if !endsWithNewline {
				bw.WriteString("\n")
			}
			writeLinks(bw, links)
		}
		text := l.Text()
		bw.WriteString(text)
		endsWithNewline = strings.HasSuffix(text, "\n")
	}

	if closing < 0 && len(links) > 0 {
		if !endsWithNewline {
			bw.WriteString("\n")
		}
		writeLinks(bw, links)
		bw.WriteString(closingTag + "\n")
	}

	return bw.Flush()
}

func writeLinks(w *bufio.Writer, links []domain.Link) {
	for _, l := range links {
		w.WriteString(FormatLink(l))
	}
}

// FormatLink renders a link element line.
func FormatLink(l domain.Link) string {
	return fmt.Sprintf(`<link id1="%d" id2="%d" r="%s" g="%s" b="%s" radius="%s"/>`+"\n",
		l.ID1, l.ID2,
		domain.FormatDecimal(l.Color.R),
		domain.FormatDecimal(l.Color.G),
		domain.FormatDecimal(l.Color.B),
		domain.FormatDecimal(l.Radius))
}
