package response

import "nct_portal/internal/domain/entities"

type DocumentListResponse struct {
	OrderID   string               `json:"orderId"`
	Documents []AttachmentResponse `json:"documents"`
}

type ExtractionResponse struct {
	Text       string            `json:"text"`
	Language   string            `json:"language,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"`
	Confidence float64           `json:"confidence,omitempty"`
}

func FromExtraction(e entities.Extraction) ExtractionResponse {
	return ExtractionResponse{
		Text:       e.RawText,
		Language:   e.Language,
		Fields:     e.Fields,
		Confidence: e.Confidence,
	}
}

type TranslationResponse struct {
	Translated string `json:"translated"`
	From       string `json:"from"`
	To         string `json:"to"`
}
