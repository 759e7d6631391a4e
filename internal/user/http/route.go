package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user CRUD endpoints. These are the only routes
// that do not require the caller-id header.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/users")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:userId", h.Get)
		group.PATCH("/:userId", h.Update)
		group.DELETE("/:userId", h.Delete)
	}
}
