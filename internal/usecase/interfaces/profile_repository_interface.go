package interfaces

import (
	"context"

	"nct_portal/internal/domain/entities"
)

// IProfileRepository abstracts the VIP profiles database.
//
// Same not-found convention as IOrderRepository: zero profile, nil error.
type IProfileRepository interface {
	GetByProfileNumber(ctx context.Context, number int64) (entities.VIPProfile, error)
	GetByPhone(ctx context.Context, phone string) (entities.VIPProfile, error)
	Create(ctx context.Context, p entities.VIPProfile) (entities.VIPProfile, error)
}
