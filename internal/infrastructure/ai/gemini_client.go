package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nct_portal/internal/config"
	"nct_portal/internal/domain/entities"
	"nct_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingGeminiAPIKey = errors.New("missing GEMINI_API_KEY")
	ErrEmptyModelResponse  = errors.New("empty model response")
)

// Client calls the Gemini generateContent REST endpoint. Mock mode returns
// canned output so local runs need no API key.
type Client struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	model    string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IAIService = (*Client)(nil)

func NewClient(cfg config.Gemini, logger *zap.Logger) (*Client, error) {
	c := &Client{
		http:     &http.Client{Timeout: 60 * time.Second},
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		mockMode: cfg.Mock,
		logger:   logger.With(zap.String("collaborator", "gemini")),
	}
	if c.mockMode {
		c.logger.Info("mock mode enabled")
		return c, nil
	}
	if c.apiKey == "" {
		return nil, ErrMissingGeminiAPIKey
	}
	return c, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// extractionPayload is the JSON shape the extraction prompt asks the model
// to answer with. Parsing is best-effort; a non-JSON answer becomes raw text.
type extractionPayload struct {
	Text     string            `json:"text"`
	Language string            `json:"language"`
	Fields   map[string]string `json:"fields"`
}

func (c *Client) ExtractText(ctx context.Context, image []byte, mimeType, documentTypeHint string) (entities.Extraction, error) {
	if c.mockMode {
		return entities.Extraction{
			RawText:    "mock extracted text",
			Language:   "en",
			Confidence: 1,
		}, nil
	}

	prompt := `Extract all text from this document image. Answer with JSON only: {"text": "...", "language": "ISO 639-1 code", "fields": {}}.`
	if documentTypeHint != "" {
		prompt += fmt.Sprintf(" The document is of type %q; fill \"fields\" with its key fields.", documentTypeHint)
	}

	answer, err := c.generate(ctx, []part{
		{Text: prompt},
		{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
	})
	if err != nil {
		return entities.Extraction{}, err
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(answer)), &payload); err != nil {
		return entities.Extraction{RawText: answer}, nil
	}
	return entities.Extraction{
		RawText:  payload.Text,
		Language: payload.Language,
		Fields:   payload.Fields,
	}, nil
}

func (c *Client) TranslateText(ctx context.Context, text, fromLang, toLang string) (string, error) {
	if c.mockMode {
		return "mock translation: " + text, nil
	}

	prompt := fmt.Sprintf("Translate the following text from %s to %s. Answer with the translation only, no commentary.\n\n%s",
		fromLang, toLang, text)
	return c.generate(ctx, []part{{Text: prompt}})
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	body, err := json.Marshal(generateRequest{Contents: []content{{Parts: parts}}})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("gemini api error",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", payload))
		return "", fmt.Errorf("gemini api: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyModelResponse
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// stripCodeFence removes a ```json fence the model sometimes wraps around
// structured answers.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
