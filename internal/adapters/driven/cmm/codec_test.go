package cmm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

const sampleCMM = `<?xml version="1.0"?>
<marker_set name="chromflock">
<marker id="0" x="0.1" y="0.2" z="0.3" r="1" g="1" b="0" radius="0.05"/>
<marker id="1" x="0.4" y="0.5" z="0.6"  r="0.5" g='0.5' b="0.5" radius="0.05" note="a b"/>
<marker id="2" x="0.7" y="0.8" z="0.9" r="0" g="0" b="1" radius="0.05"/>
<link id1="0" id2="1" r="1" g="1" b="1" radius="0.01"/>
</marker_set>
`

func decode(t *testing.T, text string) *domain.Document {
	t.Helper()
	doc, err := NewCodec().Decode(strings.NewReader(text))
	require.NoError(t, err)
	return doc
}

func encode(t *testing.T, doc *domain.Document, links []domain.Link) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewCodec().Encode(&buf, doc, links))
	return buf.String()
}

func TestDecode_Classifies(t *testing.T) {
	doc := decode(t, sampleCMM)

	kinds := make([]domain.LineKind, 0)
	for _, l := range doc.Lines() {
		kinds = append(kinds, l.Kind)
	}
	assert.Equal(t, []domain.LineKind{
		domain.LineOpaque,
		domain.LineMarkerSet,
		domain.LineMarker,
		domain.LineMarker,
		domain.LineMarker,
		domain.LineOpaque,
		domain.LineClosing,
	}, kinds)
	assert.Equal(t, 3, doc.MarkerCount())
	assert.Equal(t, 6, doc.ClosingIndex())
}

func TestDecode_MarkerAttributes(t *testing.T) {
	doc := decode(t, sampleCMM)

	m, ok := doc.Marker(1)
	require.True(t, ok)

	names := make([]string, 0, len(m.Attrs))
	for _, a := range m.Attrs {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"id", "x", "y", "z", "r", "g", "b", "radius", "note"}, names)

	note, _ := m.Attr("note")
	assert.Equal(t, "a b", note)
	assert.Equal(t, "/>\n", m.Tail)
}

func TestRoundTrip_ByteIdentical(t *testing.T) {
	inputs := map[string]string{
		"sample":              sampleCMM,
		"no trailing newline": strings.TrimSuffix(sampleCMM, "\n"),
		"crlf":                strings.ReplaceAll(sampleCMM, "\n", "\r\n"),
		"indented opaque":     "<marker_set>\n  <marker id=\"9\"/>\n</marker_set>\n",
		"empty":               "",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			doc := decode(t, in)
			assert.Equal(t, in, encode(t, doc, nil))
		})
	}
}

func TestDecode_IndentedMarkerIsOpaque(t *testing.T) {
	doc := decode(t, "<marker_set>\n  <marker id=\"9\"/>\n</marker_set>\n")

	assert.Equal(t, 0, doc.MarkerCount())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non integer id", `<marker id="a" r="1"/>` + "\n"},
		{"duplicate id", `<marker id="1"/>` + "\n" + `<marker id="1"/>` + "\n"},
		{"unterminated value", `<marker id="1" r="1/>` + "\n"},
		{"unquoted value", `<marker id="1" r=1/>` + "\n"},
		{"attribute without value", `<marker id="1" r />` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec().Decode(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestScan_KeepsMarkerLinesVerbatim(t *testing.T) {
	in := "<marker_set>\n<marker id=\"0\" note=x r=\"1\"/>\n<marker id=\"1\" r=1 />\n</marker_set>\n"

	doc, err := NewCodec().Scan(strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, 2, doc.MarkerCount())
	assert.True(t, doc.HasMarker(1))
	assert.Equal(t, 3, doc.ClosingIndex())
	assert.Equal(t, in, encode(t, doc, nil))
}

func TestScan_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non integer id", `<marker id="a" r="1"/>` + "\n"},
		{"unterminated id", `<marker id="1 r="1"/>` + "\n"},
		{"duplicate id", `<marker id="1"/>` + "\n" + `<marker id="1"/>` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec().Scan(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestDecode_ClosingTagSharingLastLine(t *testing.T) {
	in := "<marker_set>\n<marker id=\"0\" r=\"1\"/>\n<marker id=\"1\" r=\"1\"/></marker_set>\n"

	doc := decode(t, in)

	assert.Equal(t, 2, doc.MarkerCount())
	assert.Equal(t, 3, doc.ClosingIndex())
	assert.Equal(t, in, encode(t, doc, nil))
}

func TestEncode_LinksBeforeClosingTagSharingLastLine(t *testing.T) {
	doc := decode(t, "<marker_set>\n<marker id=\"0\" r=\"1\"/>\n<marker id=\"1\" r=\"1\"/></marker_set>\n")
	links := []domain.Link{{ID1: 0, ID2: 1, Color: domain.RGB{}, Radius: 0.5}}

	out := encode(t, doc, links)

	assert.Equal(t,
		"<marker_set>\n<marker id=\"0\" r=\"1\"/>\n<marker id=\"1\" r=\"1\"/>\n"+
			`<link id1="0" id2="1" r="0.0" g="0.0" b="0.0" radius="0.5"/>`+"\n"+
			"</marker_set>\n",
		out)
	assert.Equal(t, 1, strings.Count(out, closingTag))
}

func TestEncode_SharedClosingTagBeforeTrailer(t *testing.T) {
	doc := decode(t, "<marker_set>\n<marker id=\"0\"/><marker id=\"1\"/></marker_set>\n<!-- trailer -->\n")
	links := []domain.Link{{ID1: 0, ID2: 1, Color: domain.RGB{}, Radius: 0.5}}

	assert.Equal(t, 2, doc.ClosingIndex())
	assert.Equal(t,
		"<marker_set>\n<marker id=\"0\"/><marker id=\"1\"/>\n"+
			`<link id1="0" id2="1" r="0.0" g="0.0" b="0.0" radius="0.5"/>`+"\n"+
			"</marker_set>\n<!-- trailer -->\n",
		encode(t, doc, links))
}

func TestEncode_ColorRewritePreservesOtherAttributes(t *testing.T) {
	doc := decode(t, sampleCMM)
	m, _ := doc.Marker(1)

	m.SetColor(domain.RGB{R: 0.1, G: 0.2, B: 0.3})

	out := encode(t, doc, nil)
	assert.Contains(t, out,
		`<marker id="1" x="0.4" y="0.5" z="0.6"  r="0.100000" g='0.200000' b="0.300000" radius="0.05" note="a b"/>`+"\n")
	assert.Contains(t, out, `<marker id="0" x="0.1" y="0.2" z="0.3" r="1" g="1" b="0" radius="0.05"/>`+"\n")
}

func TestEncode_LinksBeforeClosingTag(t *testing.T) {
	doc := decode(t, sampleCMM)
	links := []domain.Link{
		{ID1: 0, ID2: 1, Color: domain.RGB{R: 0.9412, G: 0.6392, B: 1}, Radius: domain.DefaultLinkRadius},
	}

	out := encode(t, doc, links)

	assert.True(t, strings.HasSuffix(out,
		`<link id1="0" id2="1" r="1" g="1" b="1" radius="0.01"/>`+"\n"+
			`<link id1="0" id2="1" r="0.9412" g="0.6392" b="1.0" radius="0.006251"/>`+"\n"+
			"</marker_set>\n"))
	assert.Equal(t, 1, strings.Count(out, "</marker_set>"))
}

func TestEncode_LinksWithoutClosingTag(t *testing.T) {
	doc := decode(t, "<marker_set>\n<marker id=\"0\"/>\n<marker id=\"1\"/>")
	links := []domain.Link{{ID1: 0, ID2: 1, Color: domain.RGB{}, Radius: 0.5}}

	out := encode(t, doc, links)

	assert.Equal(t,
		"<marker_set>\n<marker id=\"0\"/>\n<marker id=\"1\"/>\n"+
			`<link id1="0" id2="1" r="0.0" g="0.0" b="0.0" radius="0.5"/>`+"\n"+
			"</marker_set>\n",
		out)
}

func TestFormatLink(t *testing.T) {
	l := domain.Link{ID1: 2, ID2: 3, Color: domain.RGB{R: 0, G: 0.4588, B: 0.8627}, Radius: 0.006251}

	assert.Equal(t,
		`<link id1="2" id2="3" r="0.0" g="0.4588" b="0.8627" radius="0.006251"/>`+"\n",
		FormatLink(l))
}

func TestCheckWellFormed(t *testing.T) {
	codec := NewCodec()

	require.NoError(t, codec.CheckWellFormed(decode(t, sampleCMM)))

	bad := map[string]string{
		"unclosed root": "<marker_set>\n<marker id=\"0\"/>\n",
		"mismatched":    "<marker_set>\n<marker id=\"0\">\n</marker_set>\n",
		"two roots":     "<marker_set>\n</marker_set>\n<marker_set>\n</marker_set>\n",
		"empty":         "",
		"stray text":    "<marker_set>\n</marker_set>\ntrailing\n",
	}
	for name, in := range bad {
		t.Run(name, func(t *testing.T) {
			err := codec.CheckWellFormed(decode(t, in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrNotWellFormed))
		})
	}
}
