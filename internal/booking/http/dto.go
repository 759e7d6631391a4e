package http

import (
	"github.com/gandistip/renting-things/internal/booking"
	"github.com/gandistip/renting-things/internal/pkg/datetime"
)

type CreateBookingRequest struct {
	ItemID int64                  `json:"itemId" binding:"required"`
	Start  datetime.LocalDateTime `json:"start" binding:"required"`
	End    datetime.LocalDateTime `json:"end" binding:"required"`
}

type ItemTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookerTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64                  `json:"id"`
	Start  datetime.LocalDateTime `json:"start"`
	End    datetime.LocalDateTime `json:"end"`
	Status string                 `json:"status"`
	Item   ItemTag                `json:"item"`
	Booker BookerTag              `json:"booker"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  datetime.LocalDateTime(b.StartDate),
		End:    datetime.LocalDateTime(b.EndDate),
		Status: string(b.Status),
		Item:   ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: BookerTag{ID: b.BookerID, Name: b.BookerName},
	}
}
