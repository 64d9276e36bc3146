package pricing

import (
	"errors"
	"fmt"
	"math"
)

type ServiceType string

const (
	FullService     ServiceType = "full-service"
	SelfTranslation ServiceType = "self-translation"
	AITranslation   ServiceType = "ai-translation"
)

type InsuranceTier string

const (
	InsuranceNone   InsuranceTier = ""
	Insurance31Days InsuranceTier = "31days"
	Insurance45Days InsuranceTier = "45days"
	Insurance90Days InsuranceTier = "90days"
	Insurance1Year  InsuranceTier = "1year"
)

type DeliveryMethod string

const (
	DeliveryDigital DeliveryMethod = "digital"
	DeliveryPickup  DeliveryMethod = "pickup"
	DeliveryCourier DeliveryMethod = "delivery"
)

const (
	Currency   = "IQD"
	CurrencyAr = "دينار عراقي"
)

var (
	ErrUnknownServiceType   = errors.New("unknown service type")
	ErrUnknownInsuranceTier = errors.New("unknown insurance tier")
)

// Input carries the pricing-relevant attributes of an order. Defaults for
// absent fields are resolved by the caller (the HTTP layer uses pointer
// fields for that); the engine takes every value literally, so an explicit
// Pages=0 yields a zero service line rather than an error.
type Input struct {
	ServiceType      ServiceType
	Pages            int
	Words            int
	Certification    bool
	NumDocs          int
	Insurance        InsuranceTier
	InsuranceCount   int
	AdditionalCopies int
	DeliveryMethod   DeliveryMethod
	RushTranslation  bool
}

// LineItem is one priced component of a quote.
type LineItem struct {
	Kind          string `json:"kind"`
	Description   string `json:"description"`
	DescriptionAr string `json:"description_ar"`
	Amount        int64  `json:"amount"`
}

// Summary echoes the inputs a quote was computed from.
type Summary struct {
	ServiceType      ServiceType    `json:"serviceType"`
	ServiceTypeAr    string         `json:"serviceTypeAr"`
	Pages            int            `json:"pages"`
	Words            int            `json:"words,omitempty"`
	Certification    bool           `json:"certification"`
	Insurance        InsuranceTier  `json:"insurance,omitempty"`
	AdditionalCopies int            `json:"additionalCopies"`
	DeliveryMethod   DeliveryMethod `json:"deliveryMethod"`
	RushTranslation  bool           `json:"rushTranslation"`
}

// Quote is the itemized result. Breakdown holds only lines with a non-zero
// amount; Subtotal and Total always account for every line.
type Quote struct {
	Subtotal   int64      `json:"subtotal"`
	Total      int64      `json:"total"`
	Currency   string     `json:"currency"`
	CurrencyAr string     `json:"currencyAr"`
	Breakdown  []LineItem `json:"breakdown"`
	Summary    Summary    `json:"summary"`
}

var serviceNamesAr = map[ServiceType]string{
	FullService:     "ترجمة كاملة الخدمات",
	SelfTranslation: "مراجعة الترجمة الذاتية",
	AITranslation:   "ترجمة بالذكاء الاصطناعي",
}

var insuranceNames = map[InsuranceTier]struct{ en, ar string }{
	Insurance31Days: {"31 days assurance", "ضمان 31 يوم"},
	Insurance45Days: {"45 days assurance", "ضمان 45 يوم"},
	Insurance90Days: {"90 days assurance", "ضمان 90 يوم"},
	Insurance1Year:  {"1 year assurance", "ضمان سنة"},
}

// Engine is the deterministic price calculator. It holds only the rate table
// and is safe for unlimited concurrent use.
type Engine struct {
	rates Rates
}

func NewEngine(rates Rates) *Engine {
	return &Engine{rates: rates}
}

func (e *Engine) Rates() Rates { return e.rates }

// CheckVocabulary rejects unknown service types and insurance tiers. It is a
// separate call so Calculate can stay a never-failing calculator: deployments
// that want strictness run this first, everyone else gets the documented
// lenient fallbacks.
func (e *Engine) CheckVocabulary(in Input) error {
	switch in.ServiceType {
	case FullService, SelfTranslation, AITranslation:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownServiceType, in.ServiceType)
	}
	if in.Insurance != InsuranceNone {
		if _, ok := e.rates.Insurance[in.Insurance]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownInsuranceTier, in.Insurance)
		}
	}
	return nil
}

// Calculate computes the itemized quote. Pure and idempotent: identical input
// always yields an identical quote.
//
// Line order matters for the rush computation: rush is +50% of the service
// line only, added after the subtotal of the five base lines.
func (e *Engine) Calculate(in Input) Quote {
	service := e.serviceLine(in)
	certification := e.certificationLine(in)
	insurance := e.insuranceLine(in)
	copies := e.copiesLine(in)
	delivery := e.deliveryLine(in)

	subtotal := service.Amount + certification.Amount + insurance.Amount + copies.Amount + delivery.Amount

	var rush LineItem
	if in.RushTranslation {
		rush = LineItem{
			Kind:          "rush",
			Description:   "Rush translation fee (+50%)",
			DescriptionAr: "رسوم الترجمة العاجلة (+50%)",
			Amount:        roundHalfUp(float64(service.Amount) * (e.rates.RushMultiplier - 1)),
		}
	}

	breakdown := make([]LineItem, 0, 6)
	for _, item := range []LineItem{service, certification, insurance, copies, delivery, rush} {
		if item.Amount != 0 {
			breakdown = append(breakdown, item)
		}
	}

	serviceTypeAr, ok := serviceNamesAr[in.ServiceType]
	if !ok {
		serviceTypeAr = "خدمة الترجمة"
	}

	return Quote{
		Subtotal:   subtotal,
		Total:      subtotal + rush.Amount,
		Currency:   Currency,
		CurrencyAr: CurrencyAr,
		Breakdown:  breakdown,
		Summary: Summary{
			ServiceType:      in.ServiceType,
			ServiceTypeAr:    serviceTypeAr,
			Pages:            in.Pages,
			Words:            in.Words,
			Certification:    in.Certification,
			Insurance:        in.Insurance,
			AdditionalCopies: in.AdditionalCopies,
			DeliveryMethod:   in.DeliveryMethod,
			RushTranslation:  in.RushTranslation,
		},
	}
}

func (e *Engine) serviceLine(in Input) LineItem {
	// Word-based pricing applies to full service only; other service types
	// ignore the word count even when it is set.
	if in.ServiceType == FullService && in.Words > 0 {
		return LineItem{
			Kind:          "service",
			Description:   fmt.Sprintf("Full service translation (%d words × %d IQD)", in.Words, e.rates.PerWord),
			DescriptionAr: fmt.Sprintf("ترجمة كاملة الخدمات (%d كلمة × %d د.ع)", in.Words, e.rates.PerWord),
			Amount:        int64(in.Words) * e.rates.PerWord,
		}
	}

	var rate int64
	var en, ar string
	switch in.ServiceType {
	case FullService:
		rate, en, ar = e.rates.FullServicePerPage, "Full service translation", serviceNamesAr[FullService]
	case SelfTranslation:
		rate, en, ar = e.rates.SelfTranslationPerPage, "Self translation review", serviceNamesAr[SelfTranslation]
	case AITranslation:
		rate, en, ar = e.rates.AITranslationPerPage, "AI-powered translation", serviceNamesAr[AITranslation]
	default:
		// Unrecognized service types silently fall back to the full-service
		// rate; strict deployments catch this in CheckVocabulary.
		rate, en, ar = e.rates.FullServicePerPage, "Translation service", "خدمة الترجمة"
	}

	return LineItem{
		Kind:          "service",
		Description:   fmt.Sprintf("%s (%d pages × %d IQD)", en, in.Pages, rate),
		DescriptionAr: fmt.Sprintf("%s (%d صفحة × %d د.ع)", ar, in.Pages, rate),
		Amount:        int64(in.Pages) * rate,
	}
}

func (e *Engine) certificationLine(in Input) LineItem {
	if !in.Certification {
		return LineItem{Kind: "certification"}
	}
	return LineItem{
		Kind:          "certification",
		Description:   fmt.Sprintf("Official certification (%d docs × %d IQD)", in.NumDocs, e.rates.CertificationPerDoc),
		DescriptionAr: fmt.Sprintf("مصادقة رسمية (%d وثيقة × %d د.ع)", in.NumDocs, e.rates.CertificationPerDoc),
		Amount:        int64(in.NumDocs) * e.rates.CertificationPerDoc,
	}
}

func (e *Engine) insuranceLine(in Input) LineItem {
	if in.Insurance == InsuranceNone {
		return LineItem{Kind: "insurance"}
	}
	rate, ok := e.rates.Insurance[in.Insurance]
	if !ok {
		// Unknown tiers contribute nothing; see CheckVocabulary.
		return LineItem{Kind: "insurance"}
	}
	names := insuranceNames[in.Insurance]
	return LineItem{
		Kind:          "insurance",
		Description:   fmt.Sprintf("%s (%d × %d IQD)", names.en, in.InsuranceCount, rate),
		DescriptionAr: fmt.Sprintf("%s (%d × %d د.ع)", names.ar, in.InsuranceCount, rate),
		Amount:        int64(in.InsuranceCount) * rate,
	}
}

func (e *Engine) copiesLine(in Input) LineItem {
	if in.AdditionalCopies <= 0 {
		return LineItem{Kind: "copies"}
	}
	return LineItem{
		Kind:          "copies",
		Description:   fmt.Sprintf("Additional copies (%d copies × %d pages × %d IQD)", in.AdditionalCopies, in.Pages, e.rates.AdditionalCopy),
		DescriptionAr: fmt.Sprintf("نسخ إضافية (%d نسخة × %d صفحة × %d د.ع)", in.AdditionalCopies, in.Pages, e.rates.AdditionalCopy),
		Amount:        int64(in.AdditionalCopies) * int64(in.Pages) * e.rates.AdditionalCopy,
	}
}

func (e *Engine) deliveryLine(in Input) LineItem {
	if in.DeliveryMethod != DeliveryCourier {
		return LineItem{Kind: "delivery"}
	}
	return LineItem{
		Kind:          "delivery",
		Description:   fmt.Sprintf("Delivery (%d IQD)", e.rates.Delivery),
		DescriptionAr: fmt.Sprintf("توصيل (%d د.ع)", e.rates.Delivery),
		Amount:        e.rates.Delivery,
	}
}

// roundHalfUp rounds to the nearest dinar; amounts are never negative here so
// math.Round's half-away-from-zero is exactly half-up.
func roundHalfUp(v float64) int64 {
	return int64(math.Round(v))
}
