package readstore

import (
	"context"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserPlan(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (string, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

// PlanByID reads the subscription plan. Unknown plan values fall back to free.
func (r *UserReadStore) PlanByID(ctx context.Context, id uuid.UUID) (user.Plan, error) {
	raw, err := r.queries.GetUserPlan(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to get user plan", err)
	}
	plan, err := user.NewPlan(raw)
	if err != nil {
		return user.PlanFree, nil
	}
	return plan, nil
}
