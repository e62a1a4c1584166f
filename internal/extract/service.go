package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
	pkgLog "github.com/g3lasio/Andy-AI-by-Claude/pkg/log"
)

// Service dispatches attachments to the extractor registered for their kind
// and assembles a combined prompt summary. Extraction is a collaborator
// concern; pdf and image extraction are injected (OCR or a document
// service), while generic text handling ships in-process.
type Service struct {
	l       pkgLog.Logger
	pdf     Extractor
	image   Extractor
	generic Extractor
}

// New creates the extraction service. Nil pdf/image extractors degrade those
// kinds to the placeholder instead of failing requests.
func New(l pkgLog.Logger, pdf, image Extractor) *Service {
	return &Service{
		l:       l,
		pdf:     pdf,
		image:   image,
		generic: &genericExtractor{},
	}
}

// Summarize extracts every attachment into one combined text block. A single
// attachment's failure degrades to the placeholder; it never aborts the
// request.
func (s *Service) Summarize(ctx context.Context, attachments []model.Attachment) string {
	if len(attachments) == 0 {
		return ""
	}

	parts := make([]string, 0, len(attachments))
	for _, att := range attachments {
		text, err := s.extractOne(ctx, att)
		if err != nil {
			s.l.Warnf(ctx, "%s: %s %q failed: %v", LogPrefixSummarize, att.Kind, att.Name, err)
			text = PlaceholderText
		}
		parts = append(parts, fmt.Sprintf("--- %s (%s) ---\n%s", att.Name, att.Kind, text))
	}

	return strings.Join(parts, "\n\n")
}

// extractOne dispatches on the attachment kind. The switch is exhaustive
// over model.AttachmentKind; an unrecognized kind is an error, not a silent
// fallthrough.
func (s *Service) extractOne(ctx context.Context, att model.Attachment) (string, error) {
	switch att.Kind {
	case model.AttachmentPDF:
		if s.pdf == nil {
			return "", fmt.Errorf("no pdf extractor configured")
		}
		return s.pdf.ExtractText(ctx, att)
	case model.AttachmentImage:
		if s.image == nil {
			return "", fmt.Errorf("no image extractor configured")
		}
		return s.image.ExtractText(ctx, att)
	case model.AttachmentGeneric:
		return s.generic.ExtractText(ctx, att)
	default:
		return "", fmt.Errorf("unsupported attachment kind %q", att.Kind)
	}
}
