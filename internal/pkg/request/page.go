package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gandistip/renting-things/internal/pkg/apperror"
)

// ErrInvalidPage is returned for a negative offset or a non-positive page size.
var ErrInvalidPage = apperror.New(http.StatusBadRequest, "invalid pagination parameters")

// PageParams carries offset-based pagination: From is a zero-based row
// offset, Size the page length.
type PageParams struct {
	From int
	Size int
}

// Validate checks the pagination bounds.
func (p PageParams) Validate() error {
	if p.From < 0 || p.Size <= 0 {
		return ErrInvalidPage
	}
	return nil
}

// ParsePage reads "from" and "size" query parameters with the given defaults.
// Non-numeric values are rejected the same way as out-of-range ones.
func ParsePage(c *gin.Context, defaultFrom, defaultSize int) (PageParams, error) {
	p := PageParams{From: defaultFrom, Size: defaultSize}

	if v := c.Query("from"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, ErrInvalidPage
		}
		p.From = n
	}
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, ErrInvalidPage
		}
		p.Size = n
	}

	return p, p.Validate()
}
