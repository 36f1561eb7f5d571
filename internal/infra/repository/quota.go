package repository

import (
	"context"

	"stay-booking/internal/domain/quota"
	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QuotaQueries interface {
	InitQuotaCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.InitQuotaCounterParams) error
	GetQuotaCounter(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.QuotaCounters, error)
	CompareAndSwapQuotaUsed(ctx context.Context, db sqlc.DBTX, arg sqlc.CompareAndSwapQuotaUsedParams) (int64, error)
}

// QuotaRepository runs every statement on its own against the pool.
// Counters are shared across requests, so no caller transaction is involved.
type QuotaRepository struct {
	queries QuotaQueries
	db      sqlc.DBTX
}

func NewQuotaRepository(queries QuotaQueries, db sqlc.DBTX) *QuotaRepository {
	return &QuotaRepository{
		queries: queries,
		db:      db,
	}
}

// Ensure creates the counter at used=0. An existing counter keeps its values.
func (r *QuotaRepository) Ensure(ctx context.Context, userID uuid.UUID, limit int) error {
	params := sqlc.InitQuotaCounterParams{
		UserID:     userID,
		QuotaLimit: pgconv.IntToInt32(limit),
	}
	if err := r.queries.InitQuotaCounter(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to initialize quota counter", err)
	}
	return nil
}

func (r *QuotaRepository) Get(ctx context.Context, userID uuid.UUID) (quota.Counter, error) {
	row, err := r.queries.GetQuotaCounter(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return quota.Counter{}, infra.WrapRepoErr("quota counter not found", err, infra.KindNotFound)
		}
		return quota.Counter{}, infra.WrapRepoErr("failed to get quota counter", err)
	}

	counter, err := quota.NewCounter(row.UserID, int(row.Used), int(row.QuotaLimit))
	if err != nil {
		return quota.Counter{}, errs.Wrapf(err, "quota counter for %s is corrupt", userID)
	}
	return counter, nil
}

// CompareAndSwap increments used by one if it still equals expectedUsed and is below the limit.
func (r *QuotaRepository) CompareAndSwap(ctx context.Context, userID uuid.UUID, expectedUsed int) (bool, error) {
	params := sqlc.CompareAndSwapQuotaUsedParams{
		UserID:       userID,
		ExpectedUsed: pgconv.IntToInt32(expectedUsed),
	}
	n, err := r.queries.CompareAndSwapQuotaUsed(ctx, r.db, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to swap quota counter", err)
	}
	return n == 1, nil
}
