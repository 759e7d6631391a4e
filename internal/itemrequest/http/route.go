package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, callerMiddleware gin.HandlerFunc) {
	group := g.Group("/requests")

	group.Use(callerMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.ListOwn)
		group.GET("/all", h.ListOthers)
		group.GET("/:requestId", h.Get)
	}
}
