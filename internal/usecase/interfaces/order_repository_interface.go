package interfaces

import (
	"context"

	"nct_portal/internal/domain/entities"
)

// OrderUpdate is a partial order mutation. Nil fields are left untouched;
// the repository translates the rest into a single update expression.
type OrderUpdate struct {
	Status         *entities.OrderStatus
	PaymentStatus  *entities.PaymentStatus
	PaymentMethod  *string
	FinalQuotation *int64
	Notes          *string
}

// IOrderRepository abstracts the document store holding orders.
//
// Not-found convention: Get/Update return a zero Order with a nil error; the
// usecase layer maps that to its own not-found sentinel. Repository errors
// are reserved for actual store failures.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByPhone(ctx context.Context, phone string) ([]entities.Order, error)
	Query(ctx context.Context, filter entities.OrderFilter, pageSize int, cursor string) (entities.OrderPage, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (entities.Order, error)
	AppendDocuments(ctx context.Context, id string, docs []entities.Attachment) (entities.Order, error)
}
