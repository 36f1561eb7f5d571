//go:build unit

package readstore

import (
	"context"
	"testing"

	"stay-booking/internal/domain/listing"
	"stay-booking/internal/infra"
	sqlc "stay-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockListingReadQueries struct {
	mock.Mock
}

func (m *MockListingReadQueries) GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Listings), args.Error(1)
}

func (m *MockListingReadQueries) LockListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Listings), args.Error(1)
}

func TestListingReadStore(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()
	row := sqlc.Listings{
		ID:             id,
		OwnerID:        ownerID,
		Title:          "Harbour flat",
		Status:         "PUBLISHED",
		BasePrice:      4200,
		Currency:       "EUR",
		CapacityGuests: 3,
	}

	t.Run("FindByID decodes the row", func(t *testing.T) {
		q := new(MockListingReadQueries)
		q.On("GetListingByID", mock.Anything, mock.Anything, id).Return(row, nil)

		l, err := NewListingReadStore(q, nil).FindByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, ownerID, l.OwnerID())
		assert.Equal(t, listing.StatusPublished, l.Status())
		assert.Equal(t, int64(4200), l.BasePrice())
		assert.Equal(t, 3, l.CapacityGuests())
		q.AssertExpectations(t)
	})

	t.Run("LockByID reports missing listings as not found", func(t *testing.T) {
		q := new(MockListingReadQueries)
		q.On("LockListingByID", mock.Anything, mock.Anything, id).Return(sqlc.Listings{}, pgx.ErrNoRows)

		_, err := NewListingReadStore(q, nil).LockByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		q.AssertExpectations(t)
	})

	t.Run("FindByID database failure", func(t *testing.T) {
		q := new(MockListingReadQueries)
		q.On("GetListingByID", mock.Anything, mock.Anything, id).Return(sqlc.Listings{}, assert.AnError)

		_, err := NewListingReadStore(q, nil).FindByID(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
