package cmm

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// CheckWellFormed runs the concatenated document through an XML tokenizer.
// The document must hold exactly one root element with properly nested tags.
func (c *Codec) CheckWellFormed(doc *domain.Document) error {
	dec := xml.NewDecoder(strings.NewReader(doc.Text()))
	dec.Strict = true

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrNotWellFormed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return fmt.Errorf("%w: junk after document element <%s>", domain.ErrNotWellFormed, t.Name.Local)
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return fmt.Errorf("%w: text outside the root element", domain.ErrNotWellFormed)
			}
		}
	}

	if roots == 0 {
		return fmt.Errorf("%w: no element found", domain.ErrNotWellFormed)
	}
	if depth != 0 {
		return fmt.Errorf("%w: unclosed element", domain.ErrNotWellFormed)
	}
	return nil
}
