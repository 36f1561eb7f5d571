//go:build e2e

package booking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/dto/response"
	"stay-booking/tests/common/dbtest"
	"stay-booking/tests/common/httptest"
	"stay-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	listingsURL     = "/api/listings"
	availabilityURL = "/api/listings/%s/availability"
	bookingsURL     = "/api/bookings"
	quotaURL        = "/api/quota"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(time.DateOnly)
}

// createListing publishes a listing through the API and returns its id.
func (s *BookingSuite) createListing(t *testing.T, token string, basePrice int64, capacity int) uuid.UUID {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, map[string]any{
		"title":          "Harbour flat",
		"basePrice":      basePrice,
		"currency":       "EUR",
		"capacityGuests": capacity,
		"publish":        true,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreateListingResponse
	httptest.DecodeResponseBody(t, w.Body, &created)
	return created.Listing.ID
}

func (s *BookingSuite) book(t *testing.T, token string, listingID uuid.UUID, checkIn, checkOut string, guests int) (int, []byte) {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
		"listingId":   listingID.String(),
		"checkIn":     checkIn,
		"checkOut":    checkOut,
		"guestsCount": guests,
	}, token)
	return w.Code, w.Body.Bytes()
}

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("host confirms and guest cancels, freeing the nights", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.PlanPlus)
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", user.PlanFree)
		hostToken := s.Tokens.GenerateToken(t, hostID)
		guestToken := s.Tokens.GenerateToken(t, guestID)

		listingID := s.createListing(t, hostToken, 4000, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, map[string]any{
			"listingId":   listingID.String(),
			"checkIn":     day(10),
			"checkOut":    day(13),
			"guestsCount": 2,
		}, guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.CreateBookingResponse
		httptest.DecodeResponseBody(t, w.Body, &created)
		require.NotNil(t, created.ConversationID)
		b := created.Booking
		require.Equal(t, "PENDING", b.Status)
		require.Equal(t, hostID, b.HostID)
		require.Equal(t, int64(12000), b.TotalPrice)
		require.Len(t, b.PriceBreakdown.Nightly, 3)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM outbox_events WHERE aggregate_id = $1", b.ID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?as=host", nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page response.BookingListResponse
		httptest.DecodeResponseBody(t, w.Body, &page)
		require.Len(t, page.Items, 1)
		require.Nil(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/confirm", nil, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, "only the host may confirm")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/confirm", nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var confirmed response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &confirmed)
		require.Equal(t, "CONFIRMED", confirmed.Status)
		require.Equal(t, b.Version+1, confirmed.Version)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/confirm", nil, hostToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
		var invalid errorResponse
		httptest.DecodeResponseBody(t, w.Body, &invalid)
		require.Equal(t, "invalid transition", invalid.Detail["reason"])

		code, body := s.book(t, guestToken, listingID, day(12), day(14), 1)
		require.Equal(t, http.StatusBadRequest, code, string(body))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL+"/"+b.ID.String()+"/cancel", nil, guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		code, body = s.book(t, guestToken, listingID, day(12), day(14), 1)
		require.Equal(t, http.StatusCreated, code, string(body))
		require.Equal(t, 3, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM outbox_events WHERE aggregate_id = $1", b.ID))
	})

	s.Run("strangers cannot read a booking", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.PlanPlus)
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", user.PlanFree)
		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger@example.com", user.PlanFree)

		listingID := s.createListing(t, s.Tokens.GenerateToken(t, hostID), 3000, 2)
		code, body := s.book(t, s.Tokens.GenerateToken(t, guestID), listingID, day(5), day(6), 1)
		require.Equal(t, http.StatusCreated, code, string(body))

		var created response.CreateBookingResponse
		require.NoError(t, json.Unmarshal(body, &created))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.Booking.ID.String(), nil, s.Tokens.GenerateToken(t, strangerID))
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+uuid.NewString(), nil, s.Tokens.GenerateToken(t, guestID))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *BookingSuite) TestBookingRules() {
	s.Run("calendar gaps, prices and capacity are enforced", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.PlanPlus)
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", user.PlanFree)
		hostToken := s.Tokens.GenerateToken(t, hostID)
		guestToken := s.Tokens.GenerateToken(t, guestID)
		listingID := s.createListing(t, hostToken, 5000, 2)

		override := int64(8000)
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(availabilityURL, listingID), map[string]any{
			"items": []map[string]any{
				{"date": day(20), "isAvailable": true, "priceOverride": override},
				{"date": day(22), "isAvailable": false},
			},
		}, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		code, body := s.book(t, guestToken, listingID, day(20), day(22), 2)
		require.Equal(t, http.StatusCreated, code, string(body))
		var priced response.CreateBookingResponse
		require.NoError(t, json.Unmarshal(body, &priced))
		want := []response.NightlyPriceResponse{{Date: day(20), Price: 8000}, {Date: day(21), Price: 5000}}
		if diff := cmp.Diff(want, priced.Booking.PriceBreakdown.Nightly); diff != "" {
			t.Errorf("nightly prices mismatch (-want +got):\n%s", diff)
		}

		code, body = s.book(t, guestToken, listingID, day(22), day(24), 1)
		require.Equal(t, http.StatusBadRequest, code)
		var gap errorResponse
		require.NoError(t, json.Unmarshal(body, &gap))
		require.Equal(t, "calendar", gap.Detail["reason"])
		require.Equal(t, []any{day(22)}, gap.Detail["nights"])

		code, body = s.book(t, guestToken, listingID, day(30), day(31), 3)
		require.Equal(t, http.StatusBadRequest, code)
		var capacity errorResponse
		require.NoError(t, json.Unmarshal(body, &capacity))
		require.Equal(t, "capacity", capacity.Detail["reason"])

		code, _ = s.book(t, guestToken, listingID, day(31), day(30), 1)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

// TestConcurrentBookings races guests for the same nights; exactly one
// gets through and every other racer sees an overlap.
func (s *BookingSuite) TestConcurrentBookings() {
	s.Run("one winner for overlapping requests", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.PlanPlus)
		listingID := s.createListing(t, s.Tokens.GenerateToken(t, hostID), 3000, 2)

		const racers = 8
		tokens := make([]string, racers)
		for i := range racers {
			guestID := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("guest%d@example.com", i), user.PlanFree)
			tokens[i] = s.Tokens.GenerateToken(t, guestID)
		}

		codes := make([]int, racers)
		bodies := make([][]byte, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range racers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				codes[i], bodies[i] = s.book(t, tokens[i], listingID, day(40), day(43), 1)
			}(i)
		}
		close(start)
		wg.Wait()

		created := 0
		for i, code := range codes {
			if code == http.StatusCreated {
				created++
				continue
			}
			require.Equal(t, http.StatusBadRequest, code, string(bodies[i]))
			var lost errorResponse
			require.NoError(t, json.Unmarshal(bodies[i], &lost))
			require.Equal(t, "overlap", lost.Detail["reason"])
		}
		require.Equal(t, 1, created)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM bookings WHERE listing_id = $1", listingID))
	})
}

func (s *BookingSuite) TestBookingPriceIsFrozen() {
	s.Run("later price overrides do not touch an existing booking", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.PlanPlus)
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", user.PlanFree)
		hostToken := s.Tokens.GenerateToken(t, hostID)
		guestToken := s.Tokens.GenerateToken(t, guestID)
		listingID := s.createListing(t, hostToken, 4000, 2)

		code, body := s.book(t, guestToken, listingID, day(50), day(52), 1)
		require.Equal(t, http.StatusCreated, code, string(body))
		var created response.CreateBookingResponse
		require.NoError(t, json.Unmarshal(body, &created))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(availabilityURL, listingID), map[string]any{
			"items": []map[string]any{
				{"date": day(50), "isAvailable": true, "priceOverride": 9900},
				{"date": day(51), "isAvailable": true, "priceOverride": 9900},
			},
		}, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.Booking.ID.String(), nil, guestToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var reread response.BookingResponse
		httptest.DecodeResponseBody(t, w.Body, &reread)

		require.Equal(t, int64(8000), reread.TotalPrice)
		if diff := cmp.Diff(created.Booking.PriceBreakdown, reread.PriceBreakdown); diff != "" {
			t.Errorf("price breakdown changed (-created +reread):\n%s", diff)
		}
	})
}

type storedDay struct {
	Day           time.Time
	IsAvailable   bool
	PriceOverride *int64
}

func (s *BookingSuite) storedDays(t *testing.T, listingID uuid.UUID, dates ...string) []storedDay {
	t.Helper()

	parsed := make([]time.Time, len(dates))
	for i, d := range dates {
		var err error
		parsed[i], err = time.Parse(time.DateOnly, d)
		require.NoError(t, err)
	}
	rows, err := s.DB.Query(context.Background(),
		"SELECT day, is_available, price_override FROM availability_days WHERE listing_id = $1 AND day = ANY($2) ORDER BY day",
		listingID, parsed)
	require.NoError(t, err)
	days, err := pgx.CollectRows(rows, pgx.RowToStructByPos[storedDay])
	require.NoError(t, err)
	return days
}

func (s *BookingSuite) TestAvailabilityUpsertIsIdempotent() {
	s.Run("repeating a patch leaves the stored calendar unchanged", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.PlanPlus)
		hostToken := s.Tokens.GenerateToken(t, hostID)
		listingID := s.createListing(t, hostToken, 4000, 2)

		patch := map[string]any{
			"items": []map[string]any{
				{"date": day(60), "isAvailable": false},
				{"date": day(61), "isAvailable": true, "priceOverride": 7000},
				{"date": day(200), "isAvailable": true},
			},
		}
		put := func() {
			w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(availabilityURL, listingID), patch, hostToken)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}

		patched := []string{day(60), day(61), day(200)}
		put()
		first := s.storedDays(t, listingID, patched...)
		put()
		second := s.storedDays(t, listingID, patched...)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("stored days changed on repeat (-first +second):\n%s", diff)
		}
		require.Len(t, first, 3)
		require.False(t, first[0].IsAvailable)
		require.NotNil(t, first[1].PriceOverride)
		require.Equal(t, int64(7000), *first[1].PriceOverride)
		require.True(t, first[2].IsAvailable)
	})
}

// TestConcurrentQuotaReservations checks the counter never passes the plan limit
// when reservations race.
func (s *BookingSuite) TestConcurrentQuotaReservations() {
	s.Run("racing reservations never exceed the limit", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", user.PlanPlus)
		token := s.Tokens.GenerateToken(t, ownerID)
		limit := s.Config.Quota.PlusLimit

		racers := limit * 3
		results := make([]response.QuotaReservationResponse, racers)
		codes := make([]int, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range racers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotaURL+"/reserve", nil, token)
				codes[i] = w.Code
				if w.Code == http.StatusOK {
					_ = json.Unmarshal(w.Body.Bytes(), &results[i])
				}
			}(i)
		}
		close(start)
		wg.Wait()

		granted := 0
		for i, code := range codes {
			switch code {
			case http.StatusOK:
				if results[i].Granted {
					granted++
					require.Equal(t, results[i].UsedBefore+1, results[i].UsedAfter)
				} else {
					require.Equal(t, results[i].UsedBefore, results[i].UsedAfter)
				}
			case http.StatusConflict:
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.GreaterOrEqual(t, granted, 1)
		require.LessOrEqual(t, granted, limit)

		used := dbtest.CountRows(t, s.DB, "SELECT used FROM quota_counters WHERE user_id = $1", ownerID)
		require.Equal(t, granted, used)

		// Sequential reservations drain whatever the race left and then stop at the limit.
		for used < limit {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotaURL+"/reserve", nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var r response.QuotaReservationResponse
			httptest.DecodeResponseBody(t, w.Body, &r)
			require.True(t, r.Granted)
			used = r.UsedAfter
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quotaURL+"/reserve", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var denied response.QuotaReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &denied)
		require.False(t, denied.Granted)
		require.Equal(t, limit, denied.UsedAfter)
		require.Equal(t, limit, dbtest.CountRows(t, s.DB, "SELECT used FROM quota_counters WHERE user_id = $1", ownerID))
	})
}

func (s *BookingSuite) TestListingQuota() {
	s.Run("free plan allows a single listing", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", user.PlanFree)
		token := s.Tokens.GenerateToken(t, ownerID)

		s.createListing(t, token, 2500, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, map[string]any{
			"title":          "Second flat",
			"basePrice":      2500,
			"currency":       "EUR",
			"capacityGuests": 2,
		}, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, quotaURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var q response.QuotaResponse
		httptest.DecodeResponseBody(t, w.Body, &q)
		require.Equal(t, response.QuotaResponse{UserID: ownerID, Used: 1, Limit: 1}, q)
	})

	s.Run("expired tokens are rejected", func() {
		t := s.T()

		ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", user.PlanFree)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, quotaURL, nil, s.Tokens.CreateExpiredToken(t, ownerID))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
