//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/handler/api"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/httptest"
	commandsmock "stay-booking/tests/mock/commands"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAvailabilityCommands
	mockQueries  *queriesmock.MockAvailabilityQueries
	listing      *builder.ListingBuilder
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAvailabilityCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.listing = builder.NewListingBuilder()
	handler := api.NewAvailabilityHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/listings/:id/availability", fakeAuth(s.listing.OwnerID), handler.List)
	s.router.PUT("/listings/:id/availability", fakeAuth(s.listing.OwnerID), handler.Upsert)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) url() string {
	return "/listings/" + s.listing.ID.String() + "/availability"
}

func (s *AvailabilityHandlerTestSuite) TestList() {
	from, to := builder.Date("2026-02-01"), builder.Date("2026-02-03")

	s.Run("success: bounded window", func() {
		views := queries.ToDayViews(s.listing.BuildCalendar(from, 3))
		s.mockQueries.EXPECT().List(gomock.Any(), s.listing.ID, s.listing.OwnerID, &from, &to).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?from=2026-02-01&to=2026-02-03", nil, "bearer-token")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(s.listing.ID, resp.ListingID)
		s.Require().Len(resp.Days, 3)
		s.Equal("2026-02-01", resp.Days[0].Date)
		s.Equal("2026-02-03", resp.Days[2].Date)
	})

	s.Run("success: open window", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.listing.ID, s.listing.OwnerID, nil, nil).Return([]queries.AvailabilityDayView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(), nil, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on bad date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url()+"?from=yesterday", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for non owner", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.listing.ID, s.listing.OwnerID, nil, nil).Return(nil, queries.ErrListingAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "listing not owned by user")
	})
}

func (s *AvailabilityHandlerTestSuite) TestUpsert() {
	override := int64(4500)

	s.Run("success: patches forwarded and written days returned", func() {
		want := []availability.Patch{
			{Date: builder.Date("2026-02-01"), IsAvailable: false},
			{Date: builder.Date("2026-02-02"), IsAvailable: true, PriceOverride: &override},
		}
		written := []availability.Day{
			availability.ReconstructDay(s.listing.ID, builder.Date("2026-02-01"), false, nil, time.Time{}),
			availability.ReconstructDay(s.listing.ID, builder.Date("2026-02-02"), true, &override, time.Time{}),
		}
		s.mockCommands.EXPECT().Upsert(gomock.Any(), s.listing.ID, s.listing.OwnerID, want).Return(written, nil)

		body := map[string]any{"items": []map[string]any{
			{"date": "2026-02-01", "isAvailable": false},
			{"date": "2026-02-02", "isAvailable": true, "priceOverride": 4500},
		}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url(), body, "bearer-token")

		var resp resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp.Days, 2)
		s.False(resp.Days[0].IsAvailable)
		s.Require().NotNil(resp.Days[1].PriceOverride)
		s.Equal(int64(4500), *resp.Days[1].PriceOverride)
	})

	s.Run("error: 400 when isAvailable missing", func() {
		body := map[string]any{"items": []map[string]any{{"date": "2026-02-01"}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url(), body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase failures", func() {
		testCases := []struct {
			name         string
			err          error
			expectStatus int
		}{
			{name: "non positive override", err: errs.Mark(availability.ErrInvalidPriceOverride, errs.ErrValidation), expectStatus: http.StatusBadRequest},
			{name: "not owner", err: commands.ErrListingAccess, expectStatus: http.StatusForbidden},
			{name: "missing listing", err: commands.ErrListingNotFound, expectStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Upsert(gomock.Any(), s.listing.ID, s.listing.OwnerID, gomock.Any()).Return(nil, tc.err)
				body := map[string]any{"items": []map[string]any{{"date": "2026-02-01", "isAvailable": true}}}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url(), body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, "")
			})
		}
	})

	s.Run("error: 400 on malformed listing id", func() {
		body := map[string]any{"items": []map[string]any{{"date": "2026-02-01", "isAvailable": true}}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/listings/"+uuid.NewString()[:8]+"/availability", body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
