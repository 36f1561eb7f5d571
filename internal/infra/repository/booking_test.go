//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stay-booking/internal/domain/booking"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"
	"stay-booking/tests/common/builder"
	repositorymock "stay-booking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()
	stamp := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: booking stored with server version",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{
					Version:   1,
					CreatedAt: pgconv.TimeToPgtype(stamp),
					UpdatedAt: pgconv.TimeToPgtype(stamp),
				}, nil)
			},
		},
		{
			name: "error: exclusion constraint rejects overlap",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, overlap)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: listing foreign key missing",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, fk)
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.CreateBookingRow{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			b := builder.NewBookingBuilder().WithVersion(0).BuildDomain()

			tc.setupMock(mockQueries, mockDB)

			got, err := repo.Create(ctx, mockDB, b)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), got.ID())
			assert.Equal(t, int32(1), got.Version())
			assert.True(t, stamp.Equal(got.CreatedAt()))
			assert.Equal(t, b.Breakdown(), got.Breakdown())
		})
	}
}

func TestBookingRepository_CreateEncodesParams(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	b := builder.NewBookingBuilder().WithStay("2026-03-10", "2026-03-12").BuildDomain()

	mockQueries.EXPECT().CreateBooking(ctx, mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.CreateBookingRow, error) {
			assert.Equal(t, b.ID(), arg.ID)
			assert.Equal(t, b.HostID(), arg.HostID)
			assert.Equal(t, "PENDING", arg.Status)
			assert.Equal(t, builder.Date("2026-03-10"), pgconv.DateFromPgtype(arg.CheckIn))
			assert.Equal(t, builder.Date("2026-03-12"), pgconv.DateFromPgtype(arg.CheckOut))
			assert.JSONEq(t, `{"nightly":[{"date":"2026-03-10","price":3000},{"date":"2026-03-11","price":3000}],"subtotal":6000}`, string(arg.PriceBreakdown))
			return sqlc.CreateBookingRow{Version: 1}, nil
		})

	_, err := repository.NewBookingRepository(mockQueries, mockDB).Create(ctx, mockDB, b)
	require.NoError(t, err)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*testing.T, *repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: status swapped and version bumped",
			setupMock: func(t *testing.T, mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (sqlc.UpdateBookingStatusRow, error) {
						assert.Equal(t, "CONFIRMED", arg.NextStatus)
						assert.Equal(t, "PENDING", arg.CurrentStatus)
						assert.Equal(t, int32(3), arg.Version)
						return sqlc.UpdateBookingStatusRow{Version: 4}, nil
					})
			},
		},
		{
			name: "error: row moved on concurrently",
			setupMock: func(t *testing.T, mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(sqlc.UpdateBookingStatusRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: database failure",
			setupMock: func(t *testing.T, mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(sqlc.UpdateBookingStatusRow{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).WithVersion(3).BuildDomain()

			tc.setupMock(t, mockQueries, mockDB)

			got, err := repo.UpdateStatus(ctx, mockDB, b, booking.StatusPending)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(4), got.Version())
			assert.Equal(t, booking.StatusConfirmed, got.Status())
		})
	}
}
