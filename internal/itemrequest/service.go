package itemrequest

import (
	"context"
	"time"

	"github.com/gandistip/renting-things/internal/pkg/request"
	"github.com/gandistip/renting-things/internal/user"
)

// Details is a request together with the items answering it.
type Details struct {
	Request
	Items []ItemReply
}

type Service interface {
	Create(ctx context.Context, requesterID int64, description string) (*Request, error)
	GetByID(ctx context.Context, viewerID, requestID int64) (*Details, error)
	ListOwn(ctx context.Context, requesterID int64) ([]*Details, error)
	ListOthers(ctx context.Context, viewerID int64, page request.PageParams) ([]*Details, error)
}

// UserSource resolves requester and viewer accounts.
type UserSource interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type service struct {
	repo        Repository
	userService UserSource
	now         func() time.Time
}

func NewService(repo Repository, userService UserSource, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:        repo,
		userService: userService,
		now:         now,
	}
}

func (s *service) Create(ctx context.Context, requesterID int64, description string) (*Request, error) {
	if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	req := &Request{
		Description: description,
		RequesterID: requesterID,
		Created:     s.now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, requestID int64) (*Details, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	replies, err := s.repo.ItemsByRequestIDs(ctx, []int64{req.ID})
	if err != nil {
		return nil, err
	}
	return &Details{Request: *req, Items: replies[req.ID]}, nil
}

func (s *service) ListOwn(ctx context.Context, requesterID int64) ([]*Details, error) {
	if _, err := s.userService.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, viewerID int64, page request.PageParams) ([]*Details, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListOthers(ctx, viewerID, page.Size, page.From)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// attachItems resolves the answering items for the whole request set in one
// query and partitions them per request.
func (s *service) attachItems(ctx context.Context, requests []*Request) ([]*Details, error) {
	ids := make([]int64, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
	}

	replies, err := s.repo.ItemsByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]*Details, len(requests))
	for i, req := range requests {
		details[i] = &Details{Request: *req, Items: replies[req.ID]}
	}
	return details, nil
}
