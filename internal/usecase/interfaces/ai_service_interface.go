package interfaces

import (
	"context"

	"nct_portal/internal/domain/entities"
)

// IAIService abstracts the generative-AI collaborator (Gemini). Its output
// only ever populates order notes and attachments; pricing and lifecycle
// decisions never depend on it.
type IAIService interface {
	ExtractText(ctx context.Context, image []byte, mimeType, documentTypeHint string) (entities.Extraction, error)
	TranslateText(ctx context.Context, text, fromLang, toLang string) (string, error)
}
