package response

import (
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/usecase"
)

type AttachmentResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type OrderResponse struct {
	ID             string `json:"id"`
	CustomerName   string `json:"customerName"`
	Phone          string `json:"phone"`
	ProfileID      string `json:"profileId,omitempty"`
	CustomerStatus string `json:"customerStatus,omitempty"`

	Services         []string `json:"services"`
	ServiceType      string   `json:"serviceType,omitempty"`
	DocumentTypes    []string `json:"documentTypes"`
	Languages        []string `json:"languages"`
	Pages            int      `json:"pages"`
	Words            int      `json:"words"`
	Certification    bool     `json:"certification"`
	NumDocs          int      `json:"numDocs"`
	Insurance        []string `json:"insurance,omitempty"`
	InsuranceCount   int      `json:"insuranceCount,omitempty"`
	AdditionalCopies int      `json:"additionalCopies,omitempty"`
	DeliveryMethod   string   `json:"deliveryMethod"`
	RushTranslation  bool     `json:"rushTranslation"`

	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
	PaymentMethod  string `json:"paymentMethod,omitempty"`
	FinalQuotation int64  `json:"finalQuotation"`
	Currency       string `json:"currency"`

	Notes     string               `json:"notes,omitempty"`
	Documents []AttachmentResponse `json:"documents"`
	Channel   string               `json:"channel,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	docs := make([]AttachmentResponse, 0, len(o.Documents))
	for _, d := range o.Documents {
		docs = append(docs, AttachmentResponse{Name: d.Name, URL: d.URL})
	}
	return OrderResponse{
		ID:             o.ID,
		CustomerName:   o.CustomerName,
		Phone:          o.Phone,
		ProfileID:      o.ProfileID,
		CustomerStatus: o.CustomerStatus,

		Services:         o.Services,
		ServiceType:      o.ServiceType,
		DocumentTypes:    o.DocumentTypes,
		Languages:        o.Languages,
		Pages:            o.Pages,
		Words:            o.Words,
		Certification:    o.Certification,
		NumDocs:          o.NumDocs,
		Insurance:        o.Insurance,
		InsuranceCount:   o.InsuranceCount,
		AdditionalCopies: o.AdditionalCopies,
		DeliveryMethod:   o.DeliveryMethod,
		RushTranslation:  o.RushTranslation,

		Status:         string(o.Status),
		PaymentStatus:  string(o.PaymentStatus),
		PaymentMethod:  o.PaymentMethod,
		FinalQuotation: o.FinalQuotation,
		Currency:       pricing.Currency,

		Notes:     o.Notes,
		Documents: docs,
		Channel:   o.Channel,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type OrderPageResponse struct {
	Orders     []OrderResponse `json:"orders"`
	HasMore    bool            `json:"hasMore"`
	NextCursor string          `json:"nextCursor,omitempty"`
}

func FromOrderPage(p entities.OrderPage) OrderPageResponse {
	return OrderPageResponse{
		Orders:     FromOrders(p.Orders),
		HasMore:    p.HasMore,
		NextCursor: p.NextCursor,
	}
}

type QuoteLineResponse struct {
	Kind          string `json:"kind"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Amount        int64  `json:"amount"`
}

type QuoteResponse struct {
	Subtotal   int64               `json:"subtotal"`
	Total      int64               `json:"total"`
	Currency   string              `json:"currency"`
	CurrencyAr string              `json:"currencyAr"`
	Breakdown  []QuoteLineResponse `json:"breakdown"`
	Summary    pricing.Summary     `json:"summary"`
}

func FromQuote(q pricing.Quote) QuoteResponse {
	lines := make([]QuoteLineResponse, 0, len(q.Breakdown))
	for _, l := range q.Breakdown {
		lines = append(lines, QuoteLineResponse{
			Kind:          l.Kind,
			Description:   l.Description,
			DescriptionAr: l.DescriptionAr,
			Amount:        l.Amount,
		})
	}
	return QuoteResponse{
		Subtotal:   q.Subtotal,
		Total:      q.Total,
		Currency:   q.Currency,
		CurrencyAr: q.CurrencyAr,
		Breakdown:  lines,
		Summary:    q.Summary,
	}
}

type CreateOrderResponse struct {
	Order OrderResponse `json:"order"`
	Quote QuoteResponse `json:"quote"`
}

type TimelineStepResponse struct {
	Status    string `json:"status"`
	StatusAr  string `json:"statusAr"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
	Pending   bool   `json:"pending"`
}

type TimelineResponse struct {
	CurrentStatus string                 `json:"currentStatus"`
	PaymentStatus string                 `json:"paymentStatus"`
	Lost          bool                   `json:"lost"`
	Timeline      []TimelineStepResponse `json:"timeline"`
}

func FromTimeline(v usecase.TimelineView) TimelineResponse {
	steps := make([]TimelineStepResponse, 0, len(v.Timeline))
	for _, s := range v.Timeline {
		steps = append(steps, fromTimelineStep(s))
	}
	return TimelineResponse{
		CurrentStatus: string(v.CurrentStatus),
		PaymentStatus: string(v.PaymentStatus),
		Lost:          v.Lost,
		Timeline:      steps,
	}
}

func fromTimelineStep(s lifecycle.Step) TimelineStepResponse {
	return TimelineStepResponse{
		Status:    string(s.Status),
		StatusAr:  s.StatusAr,
		Completed: s.Completed,
		Current:   s.Current,
		Pending:   s.Pending,
	}
}
