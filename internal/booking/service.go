package booking

import (
	"context"
	"time"

	"github.com/gandistip/renting-things/internal/item"
	"github.com/gandistip/renting-things/internal/pkg/request"
	"github.com/gandistip/renting-things/internal/user"
)

type CreateRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

// ItemSource is the slice of the item module the booking core consumes.
type ItemSource interface {
	Get(ctx context.Context, itemID int64) (*item.Item, error)
	HasItems(ctx context.Context, ownerID int64) (bool, error)
}

// UserSource resolves booker and viewer accounts.
type UserSource interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type Service interface {
	// Create validates and persists a new booking in WAITING status.
	Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error)
	// Decide lets the item owner approve or reject a booking.
	Decide(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error)
	// GetByID returns a booking to its booker or the item owner.
	GetByID(ctx context.Context, viewerID, bookingID int64) (*Booking, error)
	ListByBooker(ctx context.Context, userID int64, state string, page request.PageParams) ([]*Booking, error)
	ListByOwner(ctx context.Context, userID int64, state string, page request.PageParams) ([]*Booking, error)
}

type service struct {
	repo        Repository
	itemService ItemSource
	userService UserSource
	now         func() time.Time
}

// NewService wires the booking core. The now func is the time source for
// every temporal check; pass nil for the wall clock.
func NewService(repo Repository, itemService ItemSource, userService UserSource, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:        repo,
		itemService: itemService,
		userService: userService,
		now:         now,
	}
}

func (s *service) Create(ctx context.Context, bookerID int64, req CreateRequest) (*Booking, error) {
	// Existence checks come first so their errors win deterministically.
	it, err := s.itemService.Get(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	booker, err := s.userService.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID == booker.ID {
		return nil, ErrOwnItem
	}
	if !it.Available {
		return nil, ErrItemUnavailable
	}
	if req.Start.After(req.End) {
		return nil, ErrNegativeDuration
	}
	if req.Start.Equal(req.End) {
		return nil, ErrZeroDuration
	}

	// Schema-level constraints re-checked here: inputs may carry any time.
	now := s.now()
	if req.Start.Before(now) {
		return nil, ErrStartInPast
	}
	if !req.End.After(now) {
		return nil, ErrEndNotFuture
	}

	b := &Booking{
		StartDate:   req.Start,
		EndDate:     req.End,
		Status:      StatusWaiting,
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    booker.ID,
		BookerName:  booker.Name,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Decide(ctx context.Context, actorID, bookingID int64, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ItemOwnerID != actorID {
		return nil, ErrNotOwner
	}

	// Re-approving is the only rejected self-transition; re-rejecting and
	// flipping a rejected booking to approved both go through.
	if approved && b.Status == StatusApproved {
		return nil, ErrAlreadyApproved
	}

	target := StatusRejected
	if approved {
		target = StatusApproved
	}

	ok, err := s.repo.UpdateStatus(ctx, bookingID, b.Status, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		// The status moved between our read and the conditional write.
		return nil, ErrConcurrentUpdate
	}

	b.Status = target
	return b, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, bookingID int64) (*Booking, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != viewerID && b.ItemOwnerID != viewerID {
		return nil, ErrViewForbidden
	}
	return b, nil
}

func (s *service) ListByBooker(ctx context.Context, userID int64, state string, page request.PageParams) ([]*Booking, error) {
	return s.list(ctx, ScopeBooker, userID, state, page)
}

func (s *service) ListByOwner(ctx context.Context, userID int64, state string, page request.PageParams) ([]*Booking, error) {
	return s.list(ctx, ScopeOwner, userID, state, page)
}

func (s *service) list(ctx context.Context, scope Scope, userID int64, state string, page request.PageParams) ([]*Booking, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	st, err := ParseState(state)
	if err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if scope == ScopeOwner {
		owns, err := s.itemService.HasItems(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, ErrNotAnOwner
		}
	}

	return s.repo.List(ctx, scope, userID, st, s.now(), page.Size, page.From)
}
