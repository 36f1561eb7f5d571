package queries

import (
	"context"

	"stay-booking/internal/domain/quota"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"

	"github.com/google/uuid"
)

type QuotaReadStore interface {
	Get(ctx context.Context, userID uuid.UUID) (quota.Counter, error)
}

type PlanLookup interface {
	PlanByID(ctx context.Context, id uuid.UUID) (user.Plan, error)
}

type QuotaQueries interface {
	// Get reports the caller's own counter. A user who never reserved sees used=0 and the plan limit.
	Get(ctx context.Context, userID uuid.UUID) (*QuotaView, error)
}

type quotaQueriesImpl struct {
	store  QuotaReadStore
	plans  PlanLookup
	limits quota.PlanLimits
}

func NewQuotaQueries(store QuotaReadStore, plans PlanLookup, limits quota.PlanLimits) QuotaQueries {
	return &quotaQueriesImpl{store: store, plans: plans, limits: limits}
}

func (q *quotaQueriesImpl) Get(ctx context.Context, userID uuid.UUID) (*QuotaView, error) {
	counter, err := q.store.Get(ctx, userID)
	if err == nil {
		return &QuotaView{UserID: userID, Used: counter.Used(), Limit: counter.Limit()}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	plan, err := q.plans.PlanByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &QuotaView{UserID: userID, Used: 0, Limit: q.limits.LimitFor(plan)}, nil
}
