// Package pkg holds small cross-layer helpers: the application error type
// returned by every HTTP handler.
package pkg

// ErrorBody is the wire shape of an error response. Every error carries a
// stable machine-readable code plus human-readable messages in English and
// Arabic; localization never changes the code.
type ErrorBody struct {
	Code      string `json:"code"`
	Error     string `json:"error"`
	ErrorAr   string `json:"error_ar,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// AppError is a categorized error with an HTTP mapping.
type AppError struct {
	Code       string
	Message    string
	MessageAr  string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError renders the response body. The wrapped cause is deliberately
// not exposed to callers.
func (e *AppError) ToHTTPError() ErrorBody {
	return ErrorBody{
		Code:    e.Code,
		Error:   e.Message,
		ErrorAr: e.MessageAr,
	}
}

// NewDomainErrorSimple builds an AppError without a wrapped cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// NewDomainError builds an AppError wrapping an underlying cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// WithArabic attaches the localized message and returns the same error for
// chaining.
func (e *AppError) WithArabic(messageAr string) *AppError {
	e.MessageAr = messageAr
	return e
}
