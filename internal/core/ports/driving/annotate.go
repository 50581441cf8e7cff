package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/chromcmm/internal/core/domain"
)

// AnnotateService runs the marker file pipeline: parse, colour, link, write.
type AnnotateService interface {
	// Annotate runs one pipeline invocation. Nothing is written unless the
	// whole run succeeds.
	Annotate(ctx context.Context, req AnnotateRequest) (*domain.AnnotateResult, error)
}

// AnnotateRequest describes one pipeline invocation.
type AnnotateRequest struct {
	// InputPath is the marker file to read.
	InputPath string

	// OutputPath is where the result goes. Empty means Stdout.
	OutputPath string

	// Stdout receives the document when OutputPath is empty.
	Stdout io.Writer

	// Colors selects a colour source. Nil skips recolouring.
	Colors *ColorSource

	// LabelsPath is a chromosome label vector. Empty skips link generation.
	LabelsPath string

	// PalettePath overrides the chromosome palette for links.
	PalettePath string

	// MarkersOnly drops opaque lines from the output.
	MarkersOnly bool
}

// WantsLinks reports whether the request generates chromosome links.
func (r AnnotateRequest) WantsLinks() bool {
	return r.LabelsPath != ""
}
