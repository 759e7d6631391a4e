package item

import (
	"net/http"
	"time"

	"github.com/gandistip/renting-things/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "item not found")
	// Editing someone else's item is reported as not-found rather than
	// forbidden, matching the rest of the access-denial surface.
	ErrNotOwner          = apperror.New(http.StatusNotFound, "item does not belong to user")
	ErrNoFinishedRenting = apperror.New(http.StatusBadRequest, "user has not rented this item")
)

// Item is a thing offered for rent. Available is the only gate checked when
// a booking is created; bookings never flip it.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64
}

// BookingInfo is the short booking stub attached to an item for its owner.
type BookingInfo struct {
	ID       int64
	BookerID int64
}

// Comment is free-text feedback left by a user who finished renting the item.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}

// Details is an item with its display enrichment: the most recent started
// approved booking, the nearest upcoming one, and all comments. The booking
// stubs are only populated for the item's owner.
type Details struct {
	Item
	LastBooking *BookingInfo
	NextBooking *BookingInfo
	Comments    []Comment
}
