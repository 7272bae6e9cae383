package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/alizaidi-dev/tripbudget/internal/core/domain"
)

type Querier interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	AppendEstimate(ctx context.Context, estimate domain.TripEstimate) (domain.TripEstimate, error)
	ListEstimatesByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripEstimate, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func NewWithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const createUser = `
INSERT INTO users (id, email, name, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id, email, name, password_hash, created_at
`

func (q *Queries) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	row := q.db.QueryRow(ctx, createUser, user.ID, user.Email, user.Name, user.PasswordHash)

	var out domain.User
	err := row.Scan(&out.ID, &out.Email, &out.Name, &out.PasswordHash, &out.CreatedAt)

	// A concurrent insert can slip past the pre-insert lookup; the unique
	// index on users.email is the authority.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.User{}, domain.ErrEmailTaken
	}
	return out, err
}

const getUserByEmail = `
SELECT id, email, name, password_hash, created_at
FROM users
WHERE email = $1
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := q.db.QueryRow(ctx, getUserByEmail, email)

	var out domain.User
	err := row.Scan(&out.ID, &out.Email, &out.Name, &out.PasswordHash, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	return out, err
}

const appendEstimate = `
INSERT INTO trip_estimates (id, user_id, destination, style, travelers, days, currency, total_cost, tier)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at
`

func (q *Queries) AppendEstimate(ctx context.Context, estimate domain.TripEstimate) (domain.TripEstimate, error) {
	if estimate.ID == uuid.Nil {
		estimate.ID = uuid.New()
	}

	// user_id is nullable so records survive account deletion.
	userID := pgtype.UUID{Bytes: estimate.UserID, Valid: estimate.UserID != uuid.Nil}

	row := q.db.QueryRow(ctx, appendEstimate,
		estimate.ID,
		userID,
		estimate.Destination,
		string(estimate.Style),
		estimate.Travelers,
		estimate.Days,
		estimate.Currency,
		estimate.TotalCost,
		string(estimate.Tier),
	)

	err := row.Scan(&estimate.ID, &estimate.CreatedAt)
	return estimate, err
}

const listEstimatesByUser = `
SELECT id, user_id, destination, style, travelers, days, currency, total_cost, tier, created_at
FROM trip_estimates
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListEstimatesByUser(ctx context.Context, userID uuid.UUID) ([]domain.TripEstimate, error) {
	rows, err := q.db.Query(ctx, listEstimatesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TripEstimate
	for rows.Next() {
		var e domain.TripEstimate
		var uid pgtype.UUID
		var style, tier string
		if err := rows.Scan(&e.ID, &uid, &e.Destination, &style, &e.Travelers, &e.Days,
			&e.Currency, &e.TotalCost, &tier, &e.CreatedAt); err != nil {
			return nil, err
		}
		if uid.Valid {
			e.UserID = uuid.UUID(uid.Bytes)
		}
		e.Style = domain.TravelStyle(style)
		e.Tier = domain.CostTier(tier)
		out = append(out, e)
	}

	return out, rows.Err()
}
