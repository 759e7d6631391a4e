package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gandistip/renting-things/internal/booking"
	"github.com/gandistip/renting-things/internal/identity"
	"github.com/gandistip/renting-things/internal/pkg/request"
	"github.com/gandistip/renting-things/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), identity.CallerID(c), booking.CreateRequest{
		ItemID: body.ItemID,
		Start:  body.Start.Time(),
		End:    body.End.Time(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Decide(c *gin.Context) {
	id, err := request.PathID(c, "bookingId")
	if err != nil {
		response.Error(c, err)
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid approved parameter"})
		return
	}

	b, err := h.service.Decide(c.Request.Context(), identity.CallerID(c), id, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := request.PathID(c, "bookingId")
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), identity.CallerID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) ListByBooker(c *gin.Context) {
	h.list(c, h.service.ListByBooker)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	h.list(c, h.service.ListByOwner)
}

type listFunc func(ctx context.Context, userID int64, state string, page request.PageParams) ([]*booking.Booking, error)

func (h *Handler) list(c *gin.Context, fn listFunc) {
	page, err := request.ParsePage(c, 0, 999)
	if err != nil {
		response.Error(c, err)
		return
	}

	state := c.DefaultQuery("state", "ALL")

	bookings, err := fn(c.Request.Context(), identity.CallerID(c), state, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}
