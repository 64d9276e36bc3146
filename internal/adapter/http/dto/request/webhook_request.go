package request

// ZainCashWebhookRequest is the payment confirmation callback from ZainCash.
// The raw body is HMAC-signed; the handler verifies the signature before
// this payload is trusted.
type ZainCashWebhookRequest struct {
	OrderID       string `json:"orderId" binding:"required"`
	TransactionID string `json:"id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}

// QiCardWebhookRequest is the payment confirmation callback from Qi Card.
type QiCardWebhookRequest struct {
	OrderID       string `json:"orderId" binding:"required"`
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
}
