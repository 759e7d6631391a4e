package identity

import "github.com/gin-gonic/gin"

// CallerID returns the caller's user id set by Required, or 0.
func CallerID(c *gin.Context) int64 {
	if v, ok := c.Get("callerID"); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
