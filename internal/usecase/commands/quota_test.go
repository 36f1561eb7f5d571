//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stay-booking/internal/domain/quota"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testLimits = quota.PlanLimits{Free: 1, Plus: 5, Pro: 50}

func counter(t *testing.T, userID uuid.UUID, used, limit int) quota.Counter {
	t.Helper()
	c, err := quota.NewCounter(userID, used, limit)
	require.NoError(t, err)
	return c
}

func TestQuotaUseCase_Reserve(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name          string
		setup         func(t *testing.T, f *uowFixture)
		expectGranted bool
		expectBefore  int
		expectIs      error
	}{
		{
			name: "success: first reservation initializes counter with plan limit",
			setup: func(t *testing.T, f *uowFixture) {
				f.reads.EXPECT().UserPlan(gomock.Any(), userID).Return(user.PlanPlus, nil)
				f.quota.EXPECT().Ensure(gomock.Any(), userID, 5).Return(nil)
				f.quota.EXPECT().Get(gomock.Any(), userID).Return(counter(t, userID, 0, 5), nil)
				f.quota.EXPECT().CompareAndSwap(gomock.Any(), userID, 0).Return(true, nil)
			},
			expectGranted: true,
			expectBefore:  0,
		},
		{
			name: "success: lost compare-and-swap is retried",
			setup: func(t *testing.T, f *uowFixture) {
				f.reads.EXPECT().UserPlan(gomock.Any(), userID).Return(user.PlanPro, nil)
				f.quota.EXPECT().Ensure(gomock.Any(), userID, 50).Return(nil)
				gomock.InOrder(
					f.quota.EXPECT().Get(gomock.Any(), userID).Return(counter(t, userID, 3, 50), nil),
					f.quota.EXPECT().CompareAndSwap(gomock.Any(), userID, 3).Return(false, nil),
					f.quota.EXPECT().Get(gomock.Any(), userID).Return(counter(t, userID, 4, 50), nil),
					f.quota.EXPECT().CompareAndSwap(gomock.Any(), userID, 4).Return(true, nil),
				)
			},
			expectGranted: true,
			expectBefore:  4,
		},
		{
			name: "success: exhausted counter is denied without writing",
			setup: func(t *testing.T, f *uowFixture) {
				f.reads.EXPECT().UserPlan(gomock.Any(), userID).Return(user.PlanFree, nil)
				f.quota.EXPECT().Ensure(gomock.Any(), userID, 1).Return(nil)
				f.quota.EXPECT().Get(gomock.Any(), userID).Return(counter(t, userID, 1, 1), nil)
			},
			expectGranted: false,
			expectBefore:  1,
		},
		{
			name: "error: every compare-and-swap attempt lost",
			setup: func(t *testing.T, f *uowFixture) {
				f.reads.EXPECT().UserPlan(gomock.Any(), userID).Return(user.PlanPlus, nil)
				f.quota.EXPECT().Ensure(gomock.Any(), userID, 5).Return(nil)
				f.quota.EXPECT().Get(gomock.Any(), userID).Return(counter(t, userID, 2, 5), nil).Times(quota.MaxReserveAttempts)
				f.quota.EXPECT().CompareAndSwap(gomock.Any(), userID, 2).Return(false, nil).Times(quota.MaxReserveAttempts)
			},
			expectIs: errs.ErrTransientConflict,
		},
		{
			name: "error: unknown user",
			setup: func(_ *testing.T, f *uowFixture) {
				f.reads.EXPECT().UserPlan(gomock.Any(), userID).Return(user.Plan(""), notFound())
			},
			expectIs: commands.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newUoWFixture(ctrl)
			tc.setup(t, f)

			res, err := commands.NewQuotaUseCase(f.uow, testLimits).Reserve(ctx, userID)

			if tc.expectIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectIs), "expected %v in %v", tc.expectIs, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectGranted, res.Granted())
			assert.Equal(t, tc.expectBefore, res.UsedBefore)
			if !tc.expectGranted {
				assert.Equal(t, res.UsedBefore, res.UsedAfter)
			}
		})
	}
}
