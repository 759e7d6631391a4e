package item

import (
	"context"
	"strings"
	"time"

	"github.com/gandistip/renting-things/internal/itemrequest"
	"github.com/gandistip/renting-things/internal/pkg/request"
	"github.com/gandistip/renting-things/internal/user"
)

type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error)
	Update(ctx context.Context, itemID, actorID int64, req UpdateRequest) (*Item, error)
	// Get fetches the bare item record; used by the booking flow.
	Get(ctx context.Context, itemID int64) (*Item, error)
	// GetByID returns the item enriched for display. Last/next booking stubs
	// are only attached when the viewer owns the item.
	GetByID(ctx context.Context, itemID, viewerID int64) (*Details, error)
	ListByOwner(ctx context.Context, ownerID int64, page request.PageParams) ([]*Details, error)
	Search(ctx context.Context, text string, page request.PageParams) ([]*Item, error)
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*Comment, error)
	// HasItems reports whether the user owns at least one item.
	HasItems(ctx context.Context, ownerID int64) (bool, error)
}

// UserSource resolves accounts for ownership and authorship checks.
type UserSource interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// RequestSource verifies the request an item claims to answer.
type RequestSource interface {
	GetByID(ctx context.Context, viewerID, requestID int64) (*itemrequest.Details, error)
}

type service struct {
	repo           Repository
	userService    UserSource
	requestService RequestSource
	now            func() time.Time
}

func NewService(repo Repository, userService UserSource, requestService RequestSource, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:           repo,
		userService:    userService,
		requestService: requestService,
		now:            now,
	}
}

func (s *service) Create(ctx context.Context, ownerID int64, req CreateRequest) (*Item, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requestService.GetByID(ctx, ownerID, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, itemID, actorID int64, req UpdateRequest) (*Item, error) {
	if _, err := s.userService.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != actorID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Get(ctx context.Context, itemID int64) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *service) GetByID(ctx context.Context, itemID, viewerID int64) (*Details, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	d := &Details{Item: *it, Comments: []Comment{}}

	if it.OwnerID == viewerID {
		now := s.now()
		last, err := s.repo.LastApproved(ctx, []int64{itemID}, now)
		if err != nil {
			return nil, err
		}
		next, err := s.repo.NextApproved(ctx, []int64{itemID}, now)
		if err != nil {
			return nil, err
		}
		if info, ok := last[itemID]; ok {
			d.LastBooking = &info
		}
		if info, ok := next[itemID]; ok {
			d.NextBooking = &info
		}
	}

	comments, err := s.repo.CommentsByItemIDs(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}
	if cs, ok := comments[itemID]; ok {
		d.Comments = cs
	}
	return d, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64, page request.PageParams) ([]*Details, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID, page.Size, page.From)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	// Bounded enrichment: one query per concern for the whole page.
	now := s.now()
	last, err := s.repo.LastApproved(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	next, err := s.repo.NextApproved(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.CommentsByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]*Details, len(items))
	for i, it := range items {
		d := &Details{Item: *it, Comments: []Comment{}}
		if info, ok := last[it.ID]; ok {
			d.LastBooking = &info
		}
		if info, ok := next[it.ID]; ok {
			d.NextBooking = &info
		}
		if cs, ok := comments[it.ID]; ok {
			d.Comments = cs
		}
		details[i] = d
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, text string, page request.PageParams) ([]*Item, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text, page.Size, page.From)
}

func (s *service) AddComment(ctx context.Context, itemID, authorID int64, text string) (*Comment, error) {
	author, err := s.userService.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	rented, err := s.repo.HasFinishedApprovedBooking(ctx, itemID, authorID, now)
	if err != nil {
		return nil, err
	}
	if !rented {
		return nil, ErrNoFinishedRenting
	}

	cm := &Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    now,
	}
	if err := s.repo.CreateComment(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *service) HasItems(ctx context.Context, ownerID int64) (bool, error) {
	n, err := s.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
