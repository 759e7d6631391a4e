package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandistip/renting-things/internal/identity"
	"github.com/gandistip/renting-things/internal/item"
	itemhttp "github.com/gandistip/renting-things/internal/item/http"
	"github.com/gandistip/renting-things/internal/pkg/request"
)

type fakeService struct {
	createFn     func(ctx context.Context, ownerID int64, req item.CreateRequest) (*item.Item, error)
	updateFn     func(ctx context.Context, itemID, actorID int64, req item.UpdateRequest) (*item.Item, error)
	getByIDFn    func(ctx context.Context, itemID, viewerID int64) (*item.Details, error)
	listFn       func(ctx context.Context, ownerID int64, page request.PageParams) ([]*item.Details, error)
	searchFn     func(ctx context.Context, text string, page request.PageParams) ([]*item.Item, error)
	addCommentFn func(ctx context.Context, itemID, authorID int64, text string) (*item.Comment, error)
}

func (f *fakeService) Create(ctx context.Context, ownerID int64, req item.CreateRequest) (*item.Item, error) {
	return f.createFn(ctx, ownerID, req)
}

func (f *fakeService) Update(ctx context.Context, itemID, actorID int64, req item.UpdateRequest) (*item.Item, error) {
	return f.updateFn(ctx, itemID, actorID, req)
}

func (f *fakeService) Get(_ context.Context, _ int64) (*item.Item, error) {
	panic("not used over HTTP")
}

func (f *fakeService) GetByID(ctx context.Context, itemID, viewerID int64) (*item.Details, error) {
	return f.getByIDFn(ctx, itemID, viewerID)
}

func (f *fakeService) ListByOwner(ctx context.Context, ownerID int64, page request.PageParams) ([]*item.Details, error) {
	return f.listFn(ctx, ownerID, page)
}

func (f *fakeService) Search(ctx context.Context, text string, page request.PageParams) ([]*item.Item, error) {
	return f.searchFn(ctx, text, page)
}

func (f *fakeService) AddComment(ctx context.Context, itemID, authorID int64, text string) (*item.Comment, error) {
	return f.addCommentFn(ctx, itemID, authorID, text)
}

func (f *fakeService) HasItems(_ context.Context, _ int64) (bool, error) {
	panic("not used over HTTP")
}

func setupRouter(svc item.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	itemhttp.RegisterRoutes(&r.RouterGroup, itemhttp.NewHandler(svc), identity.Required())
	return r
}

func doRequest(r *gin.Engine, method, target, callerID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if callerID != "" {
		req.Header.Set(identity.Header, callerID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateItem(t *testing.T) {
	t.Run("available is required, false included", func(t *testing.T) {
		var gotReq item.CreateRequest
		svc := &fakeService{createFn: func(_ context.Context, ownerID int64, req item.CreateRequest) (*item.Item, error) {
			assert.Equal(t, int64(1), ownerID)
			gotReq = req
			return &item.Item{ID: 10, Name: req.Name, Description: req.Description, Available: req.Available, OwnerID: ownerID}, nil
		}}
		r := setupRouter(svc)

		w := doRequest(r, "POST", "/items", "1",
			`{"name":"drill","description":"500W","available":false}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotReq.Available)
	})

	t.Run("missing available field", func(t *testing.T) {
		r := setupRouter(&fakeService{})
		w := doRequest(r, "POST", "/items", "1", `{"name":"drill","description":"500W"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing identity header", func(t *testing.T) {
		r := setupRouter(&fakeService{})
		w := doRequest(r, "POST", "/items", "",
			`{"name":"drill","description":"500W","available":true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetItem(t *testing.T) {
	details := &item.Details{
		Item: item.Item{ID: 10, Name: "drill", Description: "500W", Available: true, OwnerID: 1},
		LastBooking: &item.BookingInfo{ID: 100, BookerID: 2},
		Comments: []item.Comment{
			{ID: 5, Text: "worked great", AuthorName: "renter",
				Created: time.Date(2024, 1, 10, 9, 0, 0, 0, time.Local)},
		},
	}

	t.Run("owner view carries booking stubs and comments", func(t *testing.T) {
		svc := &fakeService{getByIDFn: func(_ context.Context, itemID, viewerID int64) (*item.Details, error) {
			assert.Equal(t, int64(10), itemID)
			assert.Equal(t, int64(1), viewerID)
			return details, nil
		}}
		r := setupRouter(svc)

		w := doRequest(r, "GET", "/items/10", "1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		last := body["lastBooking"].(map[string]interface{})
		assert.Equal(t, float64(100), last["id"])
		assert.Equal(t, float64(2), last["bookerId"])
		assert.Nil(t, body["nextBooking"])

		comments := body["comments"].([]interface{})
		require.Len(t, comments, 1)
		cm := comments[0].(map[string]interface{})
		assert.Equal(t, "renter", cm["authorName"])
		assert.Equal(t, "2024-01-10T09:00:00", cm["created"])
	})

	t.Run("bare item serializes null stubs and empty comments", func(t *testing.T) {
		svc := &fakeService{getByIDFn: func(context.Context, int64, int64) (*item.Details, error) {
			return &item.Details{Item: item.Item{ID: 10, Name: "drill"}, Comments: []item.Comment{}}, nil
		}}
		r := setupRouter(svc)

		w := doRequest(r, "GET", "/items/10", "2", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"lastBooking":null`)
		assert.Contains(t, w.Body.String(), `"nextBooking":null`)
		assert.Contains(t, w.Body.String(), `"comments":[]`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{getByIDFn: func(context.Context, int64, int64) (*item.Details, error) {
			return nil, item.ErrNotFound
		}}
		r := setupRouter(svc)
		w := doRequest(r, "GET", "/items/999", "1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSearchItems(t *testing.T) {
	t.Run("text reaches the service", func(t *testing.T) {
		svc := &fakeService{searchFn: func(_ context.Context, text string, _ request.PageParams) ([]*item.Item, error) {
			assert.Equal(t, "drill", text)
			return []*item.Item{{ID: 10, Name: "drill", Available: true}}, nil
		}}
		r := setupRouter(svc)
		w := doRequest(r, "GET", "/items/search?text=drill", "1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"drill"`)
	})

	t.Run("empty result is a JSON array", func(t *testing.T) {
		svc := &fakeService{searchFn: func(context.Context, string, request.PageParams) ([]*item.Item, error) {
			return []*item.Item{}, nil
		}}
		r := setupRouter(svc)
		w := doRequest(r, "GET", "/items/search?text=", "1", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})
}

func TestAddComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{addCommentFn: func(_ context.Context, itemID, authorID int64, text string) (*item.Comment, error) {
			assert.Equal(t, int64(10), itemID)
			assert.Equal(t, int64(2), authorID)
			return &item.Comment{ID: 5, Text: text, ItemID: itemID, AuthorID: authorID, AuthorName: "renter",
				Created: time.Date(2024, 1, 11, 12, 0, 0, 0, time.Local)}, nil
		}}
		r := setupRouter(svc)
		w := doRequest(r, "POST", "/items/10/comment", "2", `{"text":"worked great"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authorName":"renter"`)
	})

	t.Run("blank text rejected by binding", func(t *testing.T) {
		r := setupRouter(&fakeService{})
		w := doRequest(r, "POST", "/items/10/comment", "2", `{"text":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no finished rental", func(t *testing.T) {
		svc := &fakeService{addCommentFn: func(context.Context, int64, int64, string) (*item.Comment, error) {
			return nil, item.ErrNoFinishedRenting
		}}
		r := setupRouter(svc)
		w := doRequest(r, "POST", "/items/10/comment", "2", `{"text":"never rented"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("partial body maps to pointers", func(t *testing.T) {
		svc := &fakeService{updateFn: func(_ context.Context, itemID, actorID int64, req item.UpdateRequest) (*item.Item, error) {
			assert.Equal(t, int64(10), itemID)
			assert.Equal(t, int64(1), actorID)
			require.NotNil(t, req.Available)
			assert.False(t, *req.Available)
			assert.Nil(t, req.Name)
			return &item.Item{ID: 10, Name: "drill", Available: false, OwnerID: 1}, nil
		}}
		r := setupRouter(svc)
		w := doRequest(r, "PATCH", "/items/10", "1", `{"available":false}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign item reads as missing", func(t *testing.T) {
		svc := &fakeService{updateFn: func(context.Context, int64, int64, item.UpdateRequest) (*item.Item, error) {
			return nil, item.ErrNotOwner
		}}
		r := setupRouter(svc)
		w := doRequest(r, "PATCH", "/items/10", "2", `{"available":false}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
