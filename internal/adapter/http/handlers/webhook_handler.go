package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	request "nct_portal/internal/adapter/http/dto/request"
	"nct_portal/internal/usecase"
	"nct_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	providerZainCash = "zaincash"
	providerQiCard   = "qicard"

	zainCashSignatureHeader = "X-Signature"
	qiCardSignatureHeader   = "X-QiCard-Signature"
)

var (
	errInvalidSignature = pkg.NewDomainErrorSimple("WEBHOOK_INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized).
				WithArabic("فشل التحقق من توقيع الإشعار")
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("WEBHOOK_INVALID_PAYLOAD", "Webhook payload could not be parsed", http.StatusBadRequest).
					WithArabic("تعذر قراءة محتوى الإشعار")
)

// WebhookHandler receives payment-provider callbacks. Each provider signs
// the raw body with its shared secret; an unverifiable signature gets a 401
// and the payload is never parsed.
type WebhookHandler struct {
	orders         usecase.IOrderUseCase
	zainCashSecret string
	qiCardSecret   string
	logger         *zap.Logger
}

func NewWebhookHandler(orders usecase.IOrderUseCase, zainCashSecret, qiCardSecret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		orders:         orders,
		zainCashSecret: zainCashSecret,
		qiCardSecret:   qiCardSecret,
		logger:         logger,
	}
}

// ZainCash godoc
// @Summary      ZainCash payment callback
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Signature  header    string                         true  "Hex HMAC-SHA256 of the body"
// @Param        event        body      request.ZainCashWebhookRequest true  "Payment event"
// @Success      200          {object}  map[string]bool
// @Failure      401          {object}  pkg.ErrorBody
// @Router       /webhooks/zaincash [post]
func (h *WebhookHandler) ZainCash(c *gin.Context) {
	body, ok := h.verifiedBody(c, h.zainCashSecret, zainCashSignatureHeader)
	if !ok {
		return
	}

	var payload request.ZainCashWebhookRequest
	if err := json.Unmarshal(body, &payload); err != nil || payload.OrderID == "" {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	h.settle(c, providerZainCash, payload.OrderID, payload.TransactionID, payload.Amount, payload.Status)
}

// QiCard godoc
// @Summary      Qi Card payment callback
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-QiCard-Signature  header    string                       true  "Hex HMAC-SHA256 of the body"
// @Param        event               body      request.QiCardWebhookRequest true  "Payment event"
// @Success      200                 {object}  map[string]bool
// @Failure      401                 {object}  pkg.ErrorBody
// @Router       /webhooks/qicard [post]
func (h *WebhookHandler) QiCard(c *gin.Context) {
	body, ok := h.verifiedBody(c, h.qiCardSecret, qiCardSignatureHeader)
	if !ok {
		return
	}

	var payload request.QiCardWebhookRequest
	if err := json.Unmarshal(body, &payload); err != nil || payload.OrderID == "" {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	h.settle(c, providerQiCard, payload.OrderID, payload.TransactionID, payload.Amount, payload.Status)
}

// settle marks the order paid for success events and acknowledges everything
// else, so providers stop retrying events we have already seen or ignore.
func (h *WebhookHandler) settle(c *gin.Context, provider, orderID, transactionID string, amount int64, status string) {
	if !successStatus(status) {
		h.logger.Info("ignoring non-success payment event",
			zap.String("provider", provider),
			zap.String("order_id", orderID),
			zap.String("status", status))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	// Settlement failures are logged but still acknowledged, otherwise the
	// provider retries a callback we can never process.
	if _, err := h.orders.MarkPaidFromProvider(c.Request.Context(), orderID, provider, transactionID, amount); err != nil {
		h.logger.Error("failed to settle payment callback",
			zap.String("provider", provider),
			zap.String("order_id", orderID),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// verifiedBody reads the raw body and checks the provider signature against
// it. On failure it writes the error response and returns ok=false.
func (h *WebhookHandler) verifiedBody(c *gin.Context, secret, header string) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return nil, false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if !verifySignature(body, secret, c.GetHeader(header)) {
		h.logger.Warn("webhook signature mismatch", zap.String("header", header))
		c.JSON(errInvalidSignature.HTTPStatus, errInvalidSignature.ToHTTPError())
		return nil, false
	}
	return body, true
}

func verifySignature(body []byte, secret, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}

// Only explicit success events settle; anything else, a missing status
// included, is acknowledged without touching payment state.
func successStatus(status string) bool {
	switch strings.ToLower(status) {
	case "success", "completed":
		return true
	}
	return false
}
