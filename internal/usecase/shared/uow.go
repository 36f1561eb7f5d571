package shared

import (
	"context"
	"time"

	"stay-booking/internal/domain/availability"
	"stay-booking/internal/domain/booking"
	"stay-booking/internal/domain/listing"
	"stay-booking/internal/domain/quota"
	"stay-booking/internal/domain/user"
	sqlc "stay-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
	// Quota: pool-bound counter store; each statement commits on its own
	Quota() QuotaStore
	// Conversations: pool-bound messaging collaborator, called after commit
	Conversations() ConversationRepository
}

type Tx interface {
	Listings() ListingRepository
	Availability() AvailabilityRepository
	Bookings() BookingRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	// LockListing takes a row lock that is held until the surrounding transaction ends.
	LockListing(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	HasOverlappingBooking(ctx context.Context, listingID uuid.UUID, stay booking.Stay) (bool, error)
	CalendarForStay(ctx context.Context, listingID uuid.UUID, stay booking.Stay) ([]availability.Day, error)
	CalendarWindow(ctx context.Context, listingID uuid.UUID, window availability.Window) ([]availability.Day, error)
	UserPlan(ctx context.Context, userID uuid.UUID) (user.Plan, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (*listing.Listing, error)
}

type AvailabilityRepository interface {
	Seed(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, start time.Time, days int) (int64, error)
	Upsert(ctx context.Context, tx sqlc.DBTX, days []availability.Day) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (*booking.Booking, error)
	// UpdateStatus writes b's status only if the row still has status from and b's version.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) (*booking.Booking, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, tx sqlc.DBTX, event OutboxEvent) error
}

type QuotaStore interface {
	Ensure(ctx context.Context, userID uuid.UUID, limit int) error
	Get(ctx context.Context, userID uuid.UUID) (quota.Counter, error)
	CompareAndSwap(ctx context.Context, userID uuid.UUID, expectedUsed int) (bool, error)
}

type ConversationRepository interface {
	FindOrCreate(ctx context.Context, listingID, guestID, hostID uuid.UUID) (uuid.UUID, error)
}
