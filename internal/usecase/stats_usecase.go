package usecase

import (
	"context"
	"sort"
	"time"

	"nct_portal/internal/domain/entities"
	"nct_portal/internal/domain/lifecycle"
	"nct_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DashboardView is the admin landing-page summary.
type DashboardView struct {
	OrdersToday     int   `json:"ordersToday"`
	OrdersThisMonth int   `json:"ordersThisMonth"`
	RevenueToday    int64 `json:"revenueToday"`
	RevenueMonth    int64 `json:"revenueMonth"`

	PendingPayments  int `json:"pendingPayments"`
	InProgress       int `json:"inProgress"`
	AwaitingDelivery int `json:"awaitingDelivery"`
}

// StatisticsView aggregates orders over a date range.
type StatisticsView struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	TotalOrders  int   `json:"totalOrders"`
	TotalRevenue int64 `json:"totalRevenue"`

	ByStatus        map[string]int `json:"byStatus"`
	ByPaymentStatus map[string]int `json:"byPaymentStatus"`
	ByService       map[string]int `json:"byService"`
	ByChannel       map[string]int `json:"byChannel"`
}

// CustomerSummary is one row of the admin customers list, grouped by phone.
type CustomerSummary struct {
	Phone       string    `json:"phone"`
	Name        string    `json:"name"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  int64     `json:"totalSpent"`
	LastOrderAt time.Time `json:"lastOrderAt"`
}

// CustomerDetailView is one customer with their full order history.
type CustomerDetailView struct {
	Summary CustomerSummary  `json:"summary"`
	Orders  []entities.Order `json:"orders"`
}

// IStatsUseCase serves the admin dashboard and reporting screens. All
// operations are admin-only and read-only.
type IStatsUseCase interface {
	Dashboard(ctx context.Context, actor lifecycle.Actor) (DashboardView, error)
	Statistics(ctx context.Context, actor lifecycle.Actor, from, to time.Time) (StatisticsView, error)
	Customers(ctx context.Context, actor lifecycle.Actor) ([]CustomerSummary, error)
	CustomerDetail(ctx context.Context, actor lifecycle.Actor, phone string) (CustomerDetailView, error)
}

type StatsUseCase struct {
	orders interfaces.IOrderRepository
	logger *zap.Logger
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(orders interfaces.IOrderRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		orders: orders,
		logger: logger.With(zap.String("usecase", "stats")),
	}
}

const statsPageSize = 500

// collect drains the order query page by page. The portal's order volume is
// modest; aggregation in memory beats maintaining counter documents.
func (u *StatsUseCase) collect(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	var all []entities.Order
	cursor := ""
	for {
		page, err := u.orders.Query(ctx, filter, statsPageSize, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Orders...)
		if !page.HasMore || page.NextCursor == "" {
			return all, nil
		}
		cursor = page.NextCursor
	}
}

func (u *StatsUseCase) Dashboard(ctx context.Context, actor lifecycle.Actor) (DashboardView, error) {
	if !actor.IsAdmin {
		return DashboardView{}, ErrAccessDenied
	}

	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	orders, err := u.collect(ctx, entities.OrderFilter{})
	if err != nil {
		return DashboardView{}, err
	}

	var view DashboardView
	for _, o := range orders {
		if !o.CreatedAt.Before(startOfMonth) {
			view.OrdersThisMonth++
			view.RevenueMonth += o.FinalQuotation
		}
		if !o.CreatedAt.Before(startOfDay) {
			view.OrdersToday++
			view.RevenueToday += o.FinalQuotation
		}

		if o.Status == entities.StatusLost {
			continue
		}
		if o.PaymentStatus != entities.PaymentFullyPaid && o.Status != entities.StatusArchive {
			view.PendingPayments++
		}
		switch o.Status {
		case entities.StatusNewTicket, entities.StatusTranslation:
			view.InProgress++
		case entities.StatusDeliveryAndPayment:
			view.AwaitingDelivery++
		}
	}
	return view, nil
}

func (u *StatsUseCase) Statistics(ctx context.Context, actor lifecycle.Actor, from, to time.Time) (StatisticsView, error) {
	if !actor.IsAdmin {
		return StatisticsView{}, ErrAccessDenied
	}

	orders, err := u.collect(ctx, entities.OrderFilter{DateFrom: from, DateTo: to})
	if err != nil {
		return StatisticsView{}, err
	}

	view := StatisticsView{
		From:            from,
		To:              to,
		ByStatus:        map[string]int{},
		ByPaymentStatus: map[string]int{},
		ByService:       map[string]int{},
		ByChannel:       map[string]int{},
	}
	for _, o := range orders {
		view.TotalOrders++
		view.TotalRevenue += o.FinalQuotation
		view.ByStatus[string(o.Status)]++
		view.ByPaymentStatus[string(o.PaymentStatus)]++
		if o.ServiceType != "" {
			view.ByService[o.ServiceType]++
		}
		if o.Channel != "" {
			view.ByChannel[o.Channel]++
		}
	}
	return view, nil
}

// Customers groups all orders by phone number, most orders first.
func (u *StatsUseCase) Customers(ctx context.Context, actor lifecycle.Actor) ([]CustomerSummary, error) {
	if !actor.IsAdmin {
		return nil, ErrAccessDenied
	}

	orders, err := u.collect(ctx, entities.OrderFilter{})
	if err != nil {
		return nil, err
	}

	byPhone := map[string]*CustomerSummary{}
	for _, o := range orders {
		s, ok := byPhone[o.Phone]
		if !ok {
			s = &CustomerSummary{Phone: o.Phone, Name: o.CustomerName}
			byPhone[o.Phone] = s
		}
		s.TotalOrders++
		s.TotalSpent += o.FinalQuotation
		if o.CreatedAt.After(s.LastOrderAt) {
			s.LastOrderAt = o.CreatedAt
			s.Name = o.CustomerName
		}
	}

	out := make([]CustomerSummary, 0, len(byPhone))
	for _, s := range byPhone {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalOrders != out[j].TotalOrders {
			return out[i].TotalOrders > out[j].TotalOrders
		}
		return out[i].Phone < out[j].Phone
	})
	return out, nil
}

func (u *StatsUseCase) CustomerDetail(ctx context.Context, actor lifecycle.Actor, phone string) (CustomerDetailView, error) {
	if !actor.IsAdmin {
		return CustomerDetailView{}, ErrAccessDenied
	}

	orders, err := u.orders.GetByPhone(ctx, phone)
	if err != nil {
		return CustomerDetailView{}, err
	}
	if len(orders) == 0 {
		return CustomerDetailView{}, ErrOrderNotFound
	}

	summary := CustomerSummary{Phone: phone}
	for _, o := range orders {
		summary.TotalOrders++
		summary.TotalSpent += o.FinalQuotation
		if o.CreatedAt.After(summary.LastOrderAt) {
			summary.LastOrderAt = o.CreatedAt
			summary.Name = o.CustomerName
		}
	}
	return CustomerDetailView{Summary: summary, Orders: orders}, nil
}
