package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gandistip/renting-things/internal/booking"
	bookingHttp "github.com/gandistip/renting-things/internal/booking/http"
	"github.com/gandistip/renting-things/internal/identity"
	"github.com/gandistip/renting-things/internal/item"
	itemHttp "github.com/gandistip/renting-things/internal/item/http"
	"github.com/gandistip/renting-things/internal/itemrequest"
	requestHttp "github.com/gandistip/renting-things/internal/itemrequest/http"
	"github.com/gandistip/renting-things/internal/user"
	userHttp "github.com/gandistip/renting-things/internal/user/http"
)

// Config collects everything the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	Logger         zerolog.Logger
	UserService    user.Service
	ItemService    item.Service
	BookingService booking.Service
	RequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request id, logging, recovery, metrics, CORS)
// and registers routes for the four modules. Paths are mounted at the root,
// without a version prefix: the edge gateway owns the public surface.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(RequestID(), Logger(cfg.Logger), gin.Recovery(), Metrics())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:8081"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// callerMiddleware: resolves the trusted X-Sharer-User-Id header.
	callerMiddleware := identity.Required()

	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	requestHandler := requestHttp.NewHandler(cfg.RequestService)

	root := r.Group("")
	{
		userHttp.RegisterRoutes(root, userHandler)
		itemHttp.RegisterRoutes(root, itemHandler, callerMiddleware)
		bookingHttp.RegisterRoutes(root, bookingHandler, callerMiddleware)
		requestHttp.RegisterRoutes(root, requestHandler, callerMiddleware)
	}

	return r
}
