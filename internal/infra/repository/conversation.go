package repository

import (
	"context"

	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ConversationQueries interface {
	FindOrCreateConversation(ctx context.Context, db sqlc.DBTX, arg sqlc.FindOrCreateConversationParams) (uuid.UUID, error)
}

type ConversationRepository struct {
	queries ConversationQueries
	db      sqlc.DBTX
}

func NewConversationRepository(queries ConversationQueries, db sqlc.DBTX) *ConversationRepository {
	return &ConversationRepository{
		queries: queries,
		db:      db,
	}
}

// FindOrCreate returns the single thread for (listing, guest), creating it on first use.
func (r *ConversationRepository) FindOrCreate(ctx context.Context, listingID, guestID, hostID uuid.UUID) (uuid.UUID, error) {
	params := sqlc.FindOrCreateConversationParams{
		ListingID: listingID,
		GuestID:   guestID,
		HostID:    hostID,
	}
	id, err := r.queries.FindOrCreateConversation(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to find or create conversation", err)
	}
	return id, nil
}
