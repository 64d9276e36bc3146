package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/domain/pricing"
	"nct_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrServiceTypeRequired  = errors.New("service type required")
	ErrInvalidStatusValue   = errors.New("invalid status value")
	ErrInvalidPaymentStatus = errors.New("invalid payment status value")
	ErrInvalidPricingInput  = errors.New("invalid pricing input")
	ErrNothingToUpdate      = errors.New("nothing to update")
)

// CreateOrderCommand carries a fully-defaulted order creation request. The
// HTTP layer resolves absent fields (pointer DTO fields) before building the
// command, so an explicit zero here is meaningful.
type CreateOrderCommand struct {
	CustomerName     string
	ServiceType      string
	DocumentTypes    []string
	Languages        []string
	Pages            int
	Words            int
	Certification    bool
	NumDocs          int
	Insurance        string
	InsuranceCount   int
	AdditionalCopies int
	DeliveryMethod   string
	Notes            string
	PaymentMethod    string
	RushTranslation  bool
}

// UpdateOrderCommand is a partial order mutation request. Nil means "leave
// unchanged". Which fields survive depends on the caller's role.
type UpdateOrderCommand struct {
	Status         *string
	PaymentStatus  *string
	PaymentMethod  *string
	FinalQuotation *int64
	Notes          *string
}

// TimelineView is the externally callable form of the lifecycle timeline.
type TimelineView struct {
	CurrentStatus entities.OrderStatus   `json:"currentStatus"`
	PaymentStatus entities.PaymentStatus `json:"paymentStatus"`
	Lost          bool                   `json:"lost"`
	Timeline      []lifecycle.Step       `json:"timeline"`
}

// IOrderUseCase composes the price engine and lifecycle policy into the
// portal's order operations.
type IOrderUseCase interface {
	Create(ctx context.Context, actor lifecycle.Actor, cmd CreateOrderCommand) (entities.Order, pricing.Quote, error)
	GetByID(ctx context.Context, actor lifecycle.Actor, id string) (entities.Order, error)
	ListByActor(ctx context.Context, actor lifecycle.Actor, status string, page, limit int) ([]entities.Order, int, error)
	AdminList(ctx context.Context, actor lifecycle.Actor, filter entities.OrderFilter, pageSize int, cursor string) (entities.OrderPage, error)
	Update(ctx context.Context, actor lifecycle.Actor, id string, cmd UpdateOrderCommand) (entities.Order, error)
	SetStatus(ctx context.Context, actor lifecycle.Actor, id, status string) (entities.Order, error)
	SetPayment(ctx context.Context, actor lifecycle.Actor, id, paymentStatus, paymentMethod string) (entities.Order, error)
	Cancel(ctx context.Context, actor lifecycle.Actor, id, reason string) (entities.Order, error)
	Timeline(ctx context.Context, actor lifecycle.Actor, id string) (TimelineView, error)
	PriceCheck(in pricing.Input) (pricing.Quote, error)
	Requote(ctx context.Context, actor lifecycle.Actor, id string) (entities.Order, pricing.Quote, error)
	MarkPaidFromProvider(ctx context.Context, id, provider, transactionID string, amount int64) (entities.Order, error)
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	drive  interfaces.IDriveService
	engine *pricing.Engine
	strict bool
	logger *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, drive interfaces.IDriveService, engine *pricing.Engine, strictVocabulary bool, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{
		repo:   repo,
		drive:  drive,
		engine: engine,
		strict: strictVocabulary,
		logger: logger.With(zap.String("usecase", "order")),
	}
}

func (u *OrderUseCase) pricingInput(cmd CreateOrderCommand) pricing.Input {
	return pricing.Input{
		ServiceType:      pricing.ServiceType(cmd.ServiceType),
		Pages:            cmd.Pages,
		Words:            cmd.Words,
		Certification:    cmd.Certification,
		NumDocs:          cmd.NumDocs,
		Insurance:        pricing.InsuranceTier(cmd.Insurance),
		InsuranceCount:   cmd.InsuranceCount,
		AdditionalCopies: cmd.AdditionalCopies,
		DeliveryMethod:   pricing.DeliveryMethod(cmd.DeliveryMethod),
		RushTranslation:  cmd.RushTranslation,
	}
}

// Create computes the quotation, assembles the canonical order document and
// persists it. The quotation is always computed before the store write; the
// drive folder side effect runs only after the write succeeds, so a store
// failure cannot orphan a folder.
func (u *OrderUseCase) Create(ctx context.Context, actor lifecycle.Actor, cmd CreateOrderCommand) (entities.Order, pricing.Quote, error) {
	if strings.TrimSpace(cmd.ServiceType) == "" {
		return entities.Order{}, pricing.Quote{}, ErrServiceTypeRequired
	}

	in := u.pricingInput(cmd)
	if u.strict {
		if err := u.engine.CheckVocabulary(in); err != nil {
			return entities.Order{}, pricing.Quote{}, fmt.Errorf("%w: %v", ErrInvalidPricingInput, err)
		}
	}
	quote := u.engine.Calculate(in)

	customerName := strings.TrimSpace(cmd.CustomerName)
	if customerName == "" {
		customerName = actor.Phone
	}
	languages := cmd.Languages
	if len(languages) == 0 {
		languages = []string{entities.DefaultLanguagePair}
	}

	var insurance []string
	insuranceCount := 0
	if cmd.Insurance != "" {
		insurance = []string{entities.MapInsuranceTier(cmd.Insurance)}
		insuranceCount = cmd.InsuranceCount
	}

	now := time.Now().UTC()
	order := entities.Order{
		ID:               uuid.NewString(),
		CustomerName:     customerName,
		Phone:            actor.Phone,
		CustomerStatus:   "First Time - Reg",
		Services:         []string{"Translation"},
		ServiceType:      cmd.ServiceType,
		DocumentTypes:    entities.MapDocumentTypes(cmd.DocumentTypes),
		Languages:        languages,
		Pages:            cmd.Pages,
		Words:            cmd.Words,
		Certification:    cmd.Certification,
		NumDocs:          cmd.NumDocs,
		Insurance:        insurance,
		InsuranceCount:   insuranceCount,
		AdditionalCopies: cmd.AdditionalCopies,
		DeliveryMethod:   entities.MapDeliveryMethod(cmd.DeliveryMethod),
		RushTranslation:  cmd.RushTranslation,
		Status:           entities.StatusNewTicket,
		PaymentStatus:    entities.PaymentNotPaid,
		PaymentMethod:    cmd.PaymentMethod,
		FinalQuotation:   quote.Total,
		Notes:            cmd.Notes,
		Channel:          "App",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		return entities.Order{}, pricing.Quote{}, err
	}

	u.createFoldersBestEffort(ctx, created)

	return created, quote, nil
}

// createFoldersBestEffort provisions the customer's drive folders and records
// the folder link on the order. Failures are logged and never fail creation.
func (u *OrderUseCase) createFoldersBestEffort(ctx context.Context, order entities.Order) {
	folders, err := u.drive.CreateCustomerFolders(ctx, order.CustomerName, order.ID)
	if err != nil {
		u.logger.Warn("drive folder creation failed",
			zap.String("order_id", order.ID), zap.Error(err))
		return
	}

	notes := fmt.Sprintf("%s\n\nFolder: %s", order.Notes, folders.Order.URL)
	if _, err := u.repo.Update(ctx, order.ID, interfaces.OrderUpdate{Notes: &notes}); err != nil {
		u.logger.Warn("recording drive folder link failed",
			zap.String("order_id", order.ID), zap.Error(err))
	}
}

func (u *OrderUseCase) load(ctx context.Context, actor lifecycle.Actor, id string) (entities.Order, error) {
	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !actor.IsAdmin && order.Phone != actor.Phone {
		return entities.Order{}, ErrAccessDenied
	}
	return order, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, actor lifecycle.Actor, id string) (entities.Order, error) {
	return u.load(ctx, actor, id)
}

// ListByActor returns the caller's own orders, newest first, optionally
// filtered by raw status value, paginated in memory.
func (u *OrderUseCase) ListByActor(ctx context.Context, actor lifecycle.Actor, status string, page, limit int) ([]entities.Order, int, error) {
	orders, err := u.repo.GetByPhone(ctx, actor.Phone)
	if err != nil {
		return nil, 0, err
	}

	if status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	total := len(orders)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= total {
		return []entities.Order{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return orders[start:end], total, nil
}

func (u *OrderUseCase) AdminList(ctx context.Context, actor lifecycle.Actor, filter entities.OrderFilter, pageSize int, cursor string) (entities.OrderPage, error) {
	if !actor.IsAdmin {
		return entities.OrderPage{}, ErrAccessDenied
	}
	if pageSize < 1 {
		pageSize = 50
	}
	return u.repo.Query(ctx, filter, pageSize, cursor)
}

// Update applies a partial mutation. Customers may only touch notes and the
// payment method; everything else in their payload is silently dropped.
// Admin status changes go through the lifecycle policy like any other.
func (u *OrderUseCase) Update(ctx context.Context, actor lifecycle.Actor, id string, cmd UpdateOrderCommand) (entities.Order, error) {
	order, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Order{}, err
	}

	if !actor.IsAdmin {
		cmd = UpdateOrderCommand{Notes: cmd.Notes, PaymentMethod: cmd.PaymentMethod}
	}

	upd := interfaces.OrderUpdate{
		PaymentMethod:  cmd.PaymentMethod,
		FinalQuotation: cmd.FinalQuotation,
		Notes:          cmd.Notes,
	}

	if cmd.Status != nil {
		status, ok := entities.ParseOrderStatus(*cmd.Status)
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatusValue, *cmd.Status)
		}
		if err := lifecycle.Authorize(order.Status, status, actor); err != nil {
			return entities.Order{}, err
		}
		upd.Status = &status
	}

	if cmd.PaymentStatus != nil {
		ps, ok := entities.ParsePaymentStatus(*cmd.PaymentStatus)
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, *cmd.PaymentStatus)
		}
		upd.PaymentStatus = &ps
	}

	if upd == (interfaces.OrderUpdate{}) {
		return order, nil
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// SetStatus performs an explicit status-set. Unknown values are rejected
// outright; the workflow side is strict even though pricing is lenient.
func (u *OrderUseCase) SetStatus(ctx context.Context, actor lifecycle.Actor, id, status string) (entities.Order, error) {
	target, ok := entities.ParseOrderStatus(status)
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatusValue, status)
	}

	order, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Order{}, err
	}

	if err := lifecycle.Authorize(order.Status, target, actor); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.repo.Update(ctx, id, interfaces.OrderUpdate{Status: &target})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

// SetPayment updates the payment axis. Payment status and workflow status are
// independent: neither forces the other.
func (u *OrderUseCase) SetPayment(ctx context.Context, actor lifecycle.Actor, id, paymentStatus, paymentMethod string) (entities.Order, error) {
	if !actor.IsAdmin {
		return entities.Order{}, ErrAccessDenied
	}

	upd := interfaces.OrderUpdate{}
	if paymentStatus != "" {
		ps, ok := entities.ParsePaymentStatus(paymentStatus)
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, paymentStatus)
		}
		upd.PaymentStatus = &ps
	}
	if paymentMethod != "" {
		upd.PaymentMethod = &paymentMethod
	}
	if upd == (interfaces.OrderUpdate{}) {
		return entities.Order{}, ErrNothingToUpdate
	}

	updated, err := u.repo.Update(ctx, id, upd)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// Cancel moves an order sideways into Lost, appending an audit note.
func (u *OrderUseCase) Cancel(ctx context.Context, actor lifecycle.Actor, id, reason string) (entities.Order, error) {
	order, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Order{}, err
	}

	if err := lifecycle.AuthorizeCancel(order.Status, actor); err != nil {
		return entities.Order{}, err
	}

	if strings.TrimSpace(reason) == "" {
		reason = "No reason provided"
	}
	lost := entities.StatusLost
	notes := fmt.Sprintf("%s\n\nCancelled: %s", order.Notes, reason)

	updated, err := u.repo.Update(ctx, id, interfaces.OrderUpdate{Status: &lost, Notes: &notes})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}

func (u *OrderUseCase) Timeline(ctx context.Context, actor lifecycle.Actor, id string) (TimelineView, error) {
	order, err := u.load(ctx, actor, id)
	if err != nil {
		return TimelineView{}, err
	}
	return TimelineView{
		CurrentStatus: order.Status,
		PaymentStatus: order.PaymentStatus,
		Lost:          order.Status == entities.StatusLost,
		Timeline:      lifecycle.Timeline(order.Status),
	}, nil
}

// PriceCheck is the dry-run quote: nothing is persisted.
func (u *OrderUseCase) PriceCheck(in pricing.Input) (pricing.Quote, error) {
	if u.strict {
		if err := u.engine.CheckVocabulary(in); err != nil {
			return pricing.Quote{}, fmt.Errorf("%w: %v", ErrInvalidPricingInput, err)
		}
	}
	return u.engine.Calculate(in), nil
}

// Requote recomputes the quotation from the stored pricing attributes and
// overwrites finalQuotation. This is the only way a quotation changes after
// creation: field edits never recompute implicitly.
func (u *OrderUseCase) Requote(ctx context.Context, actor lifecycle.Actor, id string) (entities.Order, pricing.Quote, error) {
	if !actor.IsAdmin {
		return entities.Order{}, pricing.Quote{}, ErrAccessDenied
	}

	order, err := u.load(ctx, actor, id)
	if err != nil {
		return entities.Order{}, pricing.Quote{}, err
	}

	in := pricing.Input{
		ServiceType:      pricing.ServiceType(order.ServiceType),
		Pages:            order.Pages,
		Words:            order.Words,
		Certification:    order.Certification,
		NumDocs:          order.NumDocs,
		InsuranceCount:   order.InsuranceCount,
		AdditionalCopies: order.AdditionalCopies,
		DeliveryMethod:   pricing.DeliveryMethod(entities.UnmapDeliveryMethod(order.DeliveryMethod)),
		RushTranslation:  order.RushTranslation,
	}
	if len(order.Insurance) > 0 {
		in.Insurance = pricing.InsuranceTier(entities.UnmapInsuranceTier(order.Insurance[0]))
	}

	quote := u.engine.Calculate(in)
	total := quote.Total

	updated, err := u.repo.Update(ctx, id, interfaces.OrderUpdate{FinalQuotation: &total})
	if err != nil {
		return entities.Order{}, pricing.Quote{}, err
	}
	return updated, quote, nil
}

// MarkPaidFromProvider records a confirmed payment-provider callback:
// payment goes to Fully Paid with the provider as method, plus an audit note.
func (u *OrderUseCase) MarkPaidFromProvider(ctx context.Context, id, provider, transactionID string, amount int64) (entities.Order, error) {
	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	paid := entities.PaymentFullyPaid
	notes := fmt.Sprintf("%s\n\nPayment received via %s\nTransaction: %s\nAmount: %d",
		order.Notes, provider, transactionID, amount)

	updated, err := u.repo.Update(ctx, id, interfaces.OrderUpdate{
		PaymentStatus: &paid,
		PaymentMethod: &provider,
		Notes:         &notes,
	})
	if err != nil {
		return entities.Order{}, err
	}
	return updated, nil
}
