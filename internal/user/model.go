package user

import (
	"net/http"

	"github.com/gandistip/renting-things/internal/pkg/apperror"
)

var (
	ErrNotFound   = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailTaken = apperror.New(http.StatusConflict, "email already used")
)

// User is an account identified by a unique email. Identity is immutable
// beyond rename; users own items and initiate bookings.
type User struct {
	ID    int64
	Name  string
	Email string
}
