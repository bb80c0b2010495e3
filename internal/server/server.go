package server

import (
	"net/http"
	"time"

	"github.com/articret/coffee-shop-server/handlers"
	"github.com/articret/coffee-shop-server/internal/coffee/handler"
	"github.com/articret/coffee-shop-server/internal/coffee/service"
	"github.com/articret/coffee-shop-server/internal/users"
	"github.com/articret/coffee-shop-server/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Welcome = "Welcome to ArtiCret Coffee Shop Server !"

// Deps carries everything the router needs. Photos may be nil, in which case
// the /photos routes are not registered.
type Deps struct {
	Coffees       service.Service
	Users         *users.Service
	Photos        handlers.PhotoStore
	MaxPhotoBytes int64
	Checks        map[string]handlers.Check
	Gatherer      prometheus.Gatherer
	Started       time.Time
}

// New builds the gin engine with the full middleware chain and every route.
func New(d Deps) *gin.Engine {
	r := gin.New()
	// Recovery stays inside RequestLogger and Metrics: panicking requests are
	// recorded with their 500.
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.Errors(),
	)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, Welcome)
	})

	handler.RegisterCoffeeRoutes(r, d.Coffees)
	d.Users.Register(r)
	if d.Photos != nil {
		handlers.RegisterPhotoRoutes(r, d.Photos, d.MaxPhotoBytes)
	}

	started := d.Started
	if started.IsZero() {
		started = time.Now()
	}
	handlers.RegisterHealth(r, started, d.Checks)
	handlers.RegisterSwagger(r)

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return r
}
