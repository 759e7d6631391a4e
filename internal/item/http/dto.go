package http

import (
	"github.com/gandistip/renting-things/internal/item"
	"github.com/gandistip/renting-things/internal/pkg/datetime"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type BookingInfoResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentResponse struct {
	ID         int64                  `json:"id"`
	Text       string                 `json:"text"`
	AuthorName string                 `json:"authorName"`
	Created    datetime.LocalDateTime `json:"created"`
}

func NewCommentResponse(cm item.Comment) CommentResponse {
	return CommentResponse{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    datetime.LocalDateTime(cm.Created),
	}
}

// ItemResponse is the item as shown in listings and single-item views.
// LastBooking and NextBooking are null for everyone but the owner.
type ItemResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Available   bool                 `json:"available"`
	RequestID   *int64               `json:"requestId"`
	LastBooking *BookingInfoResponse `json:"lastBooking"`
	NextBooking *BookingInfoResponse `json:"nextBooking"`
	Comments    []CommentResponse    `json:"comments"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
		Comments:    []CommentResponse{},
	}
}

func NewItemDetailsResponse(d *item.Details) ItemResponse {
	resp := NewItemResponse(&d.Item)
	if d.LastBooking != nil {
		resp.LastBooking = &BookingInfoResponse{ID: d.LastBooking.ID, BookerID: d.LastBooking.BookerID}
	}
	if d.NextBooking != nil {
		resp.NextBooking = &BookingInfoResponse{ID: d.NextBooking.ID, BookerID: d.NextBooking.BookerID}
	}
	for _, cm := range d.Comments {
		resp.Comments = append(resp.Comments, NewCommentResponse(cm))
	}
	return resp
}
