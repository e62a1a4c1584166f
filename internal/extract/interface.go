package extract

import (
	"context"

	"github.com/g3lasio/Andy-AI-by-Claude/internal/model"
)

// Extractor turns one attachment into text.
type Extractor interface {
	ExtractText(ctx context.Context, att model.Attachment) (string, error)
}
