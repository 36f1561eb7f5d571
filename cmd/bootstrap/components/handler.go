package components

import (
	"stay-booking/internal/handler"
	"stay-booking/internal/handler/api"
	"stay-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewListingHandler,
		api.NewQuotaHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	bookings *api.BookingHandler,
	availability *api.AvailabilityHandler,
	listings *api.ListingHandler,
	quota *api.QuotaHandler,
) handler.Handlers {
	return handler.Handlers{
		Bookings:     bookings,
		Availability: availability,
		Listings:     listings,
		Quota:        quota,
	}
}
