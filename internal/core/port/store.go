package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

type UserStore interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// UserTxStore adds transactional execution so a lookup and a write can be
// grouped atomically. fn runs against a transaction-scoped store.
type UserTxStore interface {
	UserStore
	WithinTx(ctx context.Context, fn func(UserStore) error) error
}

type HistoryStore interface {
	AppendEstimate(ctx context.Context, estimate domain.TripEstimate) (domain.TripEstimate, error)
	ListEstimatesByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripEstimate, error)
}
