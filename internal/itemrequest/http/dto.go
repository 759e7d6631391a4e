package http

import (
	"github.com/gandistip/renting-things/internal/itemrequest"
	"github.com/gandistip/renting-things/internal/pkg/datetime"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type ItemReplyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   int64  `json:"requestId"`
}

type RequestResponse struct {
	ID          int64                  `json:"id"`
	Description string                 `json:"description"`
	Created     datetime.LocalDateTime `json:"created"`
	Items       []ItemReplyResponse    `json:"items"`
}

func NewRequestResponse(d *itemrequest.Details) RequestResponse {
	items := make([]ItemReplyResponse, len(d.Items))
	for i, it := range d.Items {
		items[i] = ItemReplyResponse{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Available:   it.Available,
			RequestID:   it.RequestID,
		}
	}
	return RequestResponse{
		ID:          d.ID,
		Description: d.Description,
		Created:     datetime.LocalDateTime(d.Created),
		Items:       items,
	}
}
