package request

import (
	"strings"

	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/usecase"
)

// PricingFields carries the pricing-relevant attributes of an order request.
// Pointer fields distinguish "absent" (apply the documented default) from an
// explicit zero, which the engine treats as a real value.
type PricingFields struct {
	ServiceType      string `json:"serviceType"`
	Pages            *int   `json:"pages"`
	Words            *int   `json:"words"`
	Certification    *bool  `json:"certification"`
	NumDocs          *int   `json:"numDocs"`
	Insurance        string `json:"insurance"`
	InsuranceCount   *int   `json:"insuranceCount"`
	AdditionalCopies *int   `json:"additionalCopies"`
	DeliveryMethod   string `json:"deliveryMethod"`
	RushTranslation  *bool  `json:"rushTranslation"`
}

// ResolvePricingInput applies the documented defaults: pages 1, words 0,
// certification false, numDocs 1, copies 0, delivery pickup, no rush.
// The service type is passed through as-is; requiredness is the caller's rule.
func (f PricingFields) ResolvePricingInput() pricing.Input {
	in := pricing.Input{
		ServiceType:      pricing.ServiceType(strings.TrimSpace(f.ServiceType)),
		Pages:            1,
		NumDocs:          1,
		Insurance:        pricing.InsuranceTier(strings.TrimSpace(f.Insurance)),
		DeliveryMethod:   pricing.DeliveryPickup,
		AdditionalCopies: 0,
	}
	if f.Pages != nil {
		in.Pages = *f.Pages
	}
	if f.Words != nil {
		in.Words = *f.Words
	}
	if f.Certification != nil {
		in.Certification = *f.Certification
	}
	if f.NumDocs != nil {
		in.NumDocs = *f.NumDocs
	}
	if in.Insurance != "" && in.Insurance != "none" {
		in.InsuranceCount = 1
		if f.InsuranceCount != nil {
			in.InsuranceCount = *f.InsuranceCount
		}
	} else {
		in.Insurance = ""
	}
	if f.AdditionalCopies != nil {
		in.AdditionalCopies = *f.AdditionalCopies
	}
	if dm := strings.TrimSpace(f.DeliveryMethod); dm != "" {
		in.DeliveryMethod = pricing.DeliveryMethod(dm)
	}
	if f.RushTranslation != nil {
		in.RushTranslation = *f.RushTranslation
	}
	return in
}

// CreateOrderRequest is the customer-facing order creation payload.
type CreateOrderRequest struct {
	PricingFields

	CustomerName  string   `json:"customerName"`
	DocumentTypes []string `json:"documentTypes"`
	Languages     []string `json:"languages"`
	Notes         string   `json:"notes"`
	PaymentMethod string   `json:"paymentMethod"`
}

// ResolveCommand builds the fully-defaulted usecase command.
func (r CreateOrderRequest) ResolveCommand() usecase.CreateOrderCommand {
	in := r.ResolvePricingInput()
	return usecase.CreateOrderCommand{
		CustomerName:     strings.TrimSpace(r.CustomerName),
		ServiceType:      string(in.ServiceType),
		DocumentTypes:    r.DocumentTypes,
		Languages:        r.Languages,
		Pages:            in.Pages,
		Words:            in.Words,
		Certification:    in.Certification,
		NumDocs:          in.NumDocs,
		Insurance:        string(in.Insurance),
		InsuranceCount:   in.InsuranceCount,
		AdditionalCopies: in.AdditionalCopies,
		DeliveryMethod:   string(in.DeliveryMethod),
		Notes:            r.Notes,
		PaymentMethod:    strings.TrimSpace(r.PaymentMethod),
		RushTranslation:  in.RushTranslation,
	}
}

// UpdateOrderRequest is a partial order mutation. Absent fields stay untouched.
type UpdateOrderRequest struct {
	Status         *string `json:"status"`
	PaymentStatus  *string `json:"paymentStatus"`
	PaymentMethod  *string `json:"paymentMethod"`
	FinalQuotation *int64  `json:"finalQuotation"`
	Notes          *string `json:"notes"`
}

func (r UpdateOrderRequest) ToCommand() usecase.UpdateOrderCommand {
	return usecase.UpdateOrderCommand{
		Status:         r.Status,
		PaymentStatus:  r.PaymentStatus,
		PaymentMethod:  r.PaymentMethod,
		FinalQuotation: r.FinalQuotation,
		Notes:          r.Notes,
	}
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetPaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
}
