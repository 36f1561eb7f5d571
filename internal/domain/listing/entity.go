package listing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("listing title cannot be empty")
	ErrTitleTooLong     = errors.New("listing title is too long (max 200 characters)")
	ErrInvalidBasePrice = errors.New("base price must be positive")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO code")
	ErrInvalidCapacity  = errors.New("guest capacity must be positive")
	ErrInvalidStatus    = errors.New("invalid listing status")
)

const MaxTitleLength = 200

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusArchived  Status = "ARCHIVED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

type Listing struct {
	id             uuid.UUID
	ownerID        uuid.UUID
	title          string
	status         Status
	basePrice      int64
	currency       string
	capacityGuests int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewListing(ownerID uuid.UUID, title string, basePrice int64, currency string, capacityGuests int, publish bool) (*Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if basePrice <= 0 {
		return nil, ErrInvalidBasePrice
	}
	cur, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}
	if capacityGuests <= 0 {
		return nil, ErrInvalidCapacity
	}

	status := StatusDraft
	if publish {
		status = StatusPublished
	}

	return &Listing{
		id:             uuid.New(),
		ownerID:        ownerID,
		title:          title,
		status:         status,
		basePrice:      basePrice,
		currency:       cur,
		capacityGuests: capacityGuests,
	}, nil
}

func ReconstructListing(
	id, ownerID uuid.UUID,
	title string,
	status Status,
	basePrice int64,
	currency string,
	capacityGuests int,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:             id,
		ownerID:        ownerID,
		title:          title,
		status:         status,
		basePrice:      basePrice,
		currency:       currency,
		capacityGuests: capacityGuests,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (l *Listing) IsBookable() bool {
	return l.status == StatusPublished
}

func (l *Listing) IsOwnedBy(userID uuid.UUID) bool {
	return l.ownerID == userID
}

func (l *Listing) Accommodates(guests int) bool {
	return guests > 0 && guests <= l.capacityGuests
}

func normalizeCurrency(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return c, nil
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) OwnerID() uuid.UUID   { return l.ownerID }
func (l *Listing) Title() string        { return l.title }
func (l *Listing) Status() Status       { return l.status }
func (l *Listing) BasePrice() int64     { return l.basePrice }
func (l *Listing) Currency() string     { return l.currency }
func (l *Listing) CapacityGuests() int  { return l.capacityGuests }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time { return l.updatedAt }
