package phoneauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"nct_portal/internal/config"
	"nct_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMissingPhoneAuthAPIKey = errors.New("missing PHONE_AUTH_API_KEY")
	ErrTokenRejected          = errors.New("id token rejected")
	ErrNoPhoneNumber          = errors.New("token carries no phone number")
)

// Verifier validates id tokens from the external phone-auth provider via its
// accounts:lookup endpoint. Mock mode treats the token itself as the phone
// number, which keeps local flows testable without a provider project.
type Verifier struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.ITokenVerifier = (*Verifier)(nil)

func NewVerifier(cfg config.PhoneAuth, logger *zap.Logger) (*Verifier, error) {
	v := &Verifier{
		http:     &http.Client{Timeout: 15 * time.Second},
		baseURL:  strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:   cfg.APIKey,
		mockMode: cfg.Mock,
		logger:   logger.With(zap.String("collaborator", "phoneauth")),
	}
	if v.mockMode {
		v.logger.Info("mock mode enabled")
		return v, nil
	}
	if v.apiKey == "" {
		return nil, ErrMissingPhoneAuthAPIKey
	}
	return v, nil
}

type lookupResponse struct {
	Users []struct {
		PhoneNumber string `json:"phoneNumber"`
	} `json:"users"`
}

func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	if v.mockMode {
		phone := strings.TrimSpace(idToken)
		if phone == "" {
			return "", ErrTokenRejected
		}
		return phone, nil
	}

	body, err := json.Marshal(map[string]string{"idToken": idToken})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/accounts:lookup?key=%s", v.baseURL, url.QueryEscape(v.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		v.logger.Warn("phone auth lookup failed",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", payload))
		return "", ErrTokenRejected
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Users) == 0 {
		return "", ErrTokenRejected
	}
	if out.Users[0].PhoneNumber == "" {
		return "", ErrNoPhoneNumber
	}
	return out.Users[0].PhoneNumber, nil
}
