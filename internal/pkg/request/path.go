package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gandistip/renting-things/internal/pkg/apperror"
)

// ErrInvalidID is returned when a numeric path parameter fails to parse.
var ErrInvalidID = apperror.New(http.StatusBadRequest, "invalid id")

// PathID parses the named path parameter as an int64 id.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
