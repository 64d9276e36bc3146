package entities

import "time"

// OrderStatus is the workflow stage of a ticket.
//
// The backing document store models these as free-form status options; we keep
// them as a closed enum internally and only convert to the store's string
// representation at the repository boundary.

type OrderStatus string

const (
	StatusNewTicket          OrderStatus = "New Ticket"
	StatusTranslation        OrderStatus = "Translation"
	StatusDeliveryAndPayment OrderStatus = "Delivery and Payment"
	StatusAfterSaleService   OrderStatus = "After Sale Service"
	StatusArchive            OrderStatus = "Archive"
	StatusLost               OrderStatus = "Lost"
)

// StatusOrder is the fixed pipeline a ticket moves through. Lost sits outside
// the pipeline and is reachable sideways from any non-terminal stage.
var StatusOrder = []OrderStatus{
	StatusNewTicket,
	StatusTranslation,
	StatusDeliveryAndPayment,
	StatusAfterSaleService,
	StatusArchive,
}

// ParseOrderStatus resolves a raw status string to the closed enum.
// Unknown values are rejected, never coerced.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusNewTicket, StatusTranslation, StatusDeliveryAndPayment,
		StatusAfterSaleService, StatusArchive, StatusLost:
		return OrderStatus(s), true
	}
	return "", false
}

// Index returns the position of the status in the pipeline, or -1 for Lost
// and unknown values.
func (s OrderStatus) Index() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Terminal reports whether the status has no outgoing transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusArchive || s == StatusLost
}

type PaymentStatus string

const (
	PaymentNotPaid       PaymentStatus = "Not Paid"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentFullyPaid     PaymentStatus = "Fully Paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentNotPaid, PaymentPartiallyPaid, PaymentFullyPaid:
		return PaymentStatus(s), true
	}
	return "", false
}

// Attachment is a reference to a file owned by the drive collaborator.
// The order only holds (name, url) pairs; the list is append-only from the
// portal's perspective.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Order is one translation job ("ticket") persisted in the document store.
//
// Storage model (DynamoDB):
//   - PK: id
//   - queried by phone, status, payment status and created_at range
//
// Monetary representation: FinalQuotation is in IQD, which has no fractional
// subunit, so plain integers are exact.
type Order struct {
	ID         string `json:"id"`
	CustomerID int64  `json:"customer_id,omitempty"`

	CustomerName   string `json:"customer_name"`
	Phone          string `json:"phone"`
	CustomerStatus string `json:"customer_status,omitempty"`
	ProfileID      string `json:"profile_id,omitempty"`

	Services         []string `json:"services"`
	ServiceType      string   `json:"service_type"`
	DocumentTypes    []string `json:"document_types"`
	Languages        []string `json:"languages"`
	Pages            int      `json:"pages"`
	Words            int      `json:"words"`
	Certification    bool     `json:"certification"`
	NumDocs          int      `json:"num_docs"`
	Insurance        []string `json:"insurance"`
	InsuranceCount   int      `json:"insurance_count"`
	AdditionalCopies int      `json:"additional_copies"`
	DeliveryMethod   string   `json:"delivery_method"`
	RushTranslation  bool     `json:"rush_translation"`

	Status         OrderStatus   `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	PaymentMethod  string        `json:"payment_method,omitempty"`
	FinalQuotation int64         `json:"final_quotation"`

	Notes     string       `json:"notes"`
	Documents []Attachment `json:"documents"`
	Channel   string       `json:"channel,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderFilter narrows admin order queries.
type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	DateFrom      time.Time
	DateTo        time.Time
}

// OrderPage is one page of an order query.
type OrderPage struct {
	Orders     []Order
	HasMore    bool
	NextCursor string
}
