package driven

import (
	"io"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// DocumentCodec converts marker files to and from the document model.
type DocumentCodec interface {
	// Decode reads and classifies every line of a marker file.
	Decode(r io.Reader) (*domain.Document, error)

	// Scan reads a marker file for link generation. Only marker ids are
	// extracted; marker lines are carried through byte for byte and must
	// not be recoloured.
	Scan(r io.Reader) (*domain.Document, error)

	// Encode writes the document. Links are written after all existing
	// content and before the closing tag.
	Encode(w io.Writer, doc *domain.Document, links []domain.Link) error

	// CheckWellFormed verifies the document parses as nested-tag markup.
	// Returns an error wrapping domain.ErrNotWellFormed on failure.
	CheckWellFormed(doc *domain.Document) error
}
