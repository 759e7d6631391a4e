package identity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Header names the trusted user-id header supplied by the edge gateway.
// There is no token model: the value is parsed and believed as-is.
const Header = "X-Sharer-User-Id"

// Required is a Gin middleware that extracts the caller's user id from the
// X-Sharer-User-Id header. A missing or non-numeric header aborts with 400.
func Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(Header)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing X-Sharer-User-Id header",
			})
			return
		}

		id, err := strconv.ParseInt(header, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "invalid X-Sharer-User-Id header",
			})
			return
		}

		// Store the caller id into Gin context for later handlers.
		c.Set("callerID", id)

		c.Next()
	}
}
