package request

import "strings"

// TranslateRequest asks the AI collaborator for a text translation. The
// portal's default direction is English to Arabic.
type TranslateRequest struct {
	Text string `json:"text" binding:"required"`
	From string `json:"from"`
	To   string `json:"to"`
}

func (r TranslateRequest) ResolveFrom() string {
	if v := strings.TrimSpace(r.From); v != "" {
		return v
	}
	return "en"
}

func (r TranslateRequest) ResolveTo() string {
	if v := strings.TrimSpace(r.To); v != "" {
		return v
	}
	return "ar"
}
