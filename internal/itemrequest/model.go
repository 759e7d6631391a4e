package itemrequest

import (
	"net/http"
	"time"

	"github.com/gandistip/renting-things/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "request not found")

// Request is a user's ask for a thing nobody listed yet. Items created later
// may point back at it to mark themselves as an answer.
type Request struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// ItemReply is an item listed in answer to a request.
type ItemReply struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   int64
}
