package booking

import (
	"net/http"
	"time"

	"github.com/gandistip/renting-things/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "booking not found")

	// Access denials are reported as not-found, deliberately hiding the
	// existence of bookings from users with no claim on them.
	ErrOwnItem       = apperror.New(http.StatusNotFound, "cannot book own item")
	ErrNotOwner      = apperror.New(http.StatusNotFound, "only the item owner may approve or reject")
	ErrViewForbidden = apperror.New(http.StatusNotFound, "booking can be viewed only by the owner or the booker")

	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrNegativeDuration = apperror.New(http.StatusBadRequest, "booking duration is negative")
	ErrZeroDuration     = apperror.New(http.StatusBadRequest, "booking duration is zero")
	ErrStartInPast      = apperror.New(http.StatusBadRequest, "start must not be in the past")
	ErrEndNotFuture     = apperror.New(http.StatusBadRequest, "end must be in the future")
	ErrAlreadyApproved  = apperror.New(http.StatusBadRequest, "booking is already approved")
	ErrNotAnOwner       = apperror.New(http.StatusBadRequest, "user owns no items")

	ErrConcurrentUpdate = apperror.New(http.StatusConflict, "booking was modified concurrently")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// State is a query bucket over a user's bookings: either a temporal slice
// relative to now (CURRENT, PAST, FUTURE), a status filter (WAITING,
// REJECTED), or everything (ALL).
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState validates a state keyword from the query string.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(s), nil
	default:
		return "", apperror.New(http.StatusBadRequest, "Unknown state: "+s)
	}
}

// Scope selects whose bookings a list query covers: the ones a user placed,
// or the ones placed on the user's items.
type Scope int

const (
	ScopeBooker Scope = iota
	ScopeOwner
)

// Booking binds a booker, an item and a time range under an approval status.
// Item and booker snapshots are denormalized for hydrated responses.
type Booking struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
}
