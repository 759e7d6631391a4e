package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gandistip/renting-things/internal/identity"
	"github.com/gandistip/renting-things/internal/itemrequest"
	"github.com/gandistip/renting-things/internal/pkg/datetime"
	"github.com/gandistip/renting-things/internal/pkg/request"
	"github.com/gandistip/renting-things/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req, err := h.service.Create(c.Request.Context(), identity.CallerID(c), body.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	// A fresh request has no answering items yet.
	c.JSON(http.StatusOK, RequestResponse{
		ID:          req.ID,
		Description: req.Description,
		Created:     datetime.LocalDateTime(req.Created),
		Items:       []ItemReplyResponse{},
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "requestId")
	if err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), identity.CallerID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestResponse(d))
}

func (h *Handler) ListOwn(c *gin.Context) {
	details, err := h.service.ListOwn(c.Request.Context(), identity.CallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(details))
}

func (h *Handler) ListOthers(c *gin.Context) {
	page, err := request.ParsePage(c, 0, 999)
	if err != nil {
		response.Error(c, err)
		return
	}

	details, err := h.service.ListOthers(c.Request.Context(), identity.CallerID(c), page)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, toResponses(details))
}

func toResponses(details []*itemrequest.Details) []RequestResponse {
	out := make([]RequestResponse, len(details))
	for i, d := range details {
		out[i] = NewRequestResponse(d)
	}
	return out
}
