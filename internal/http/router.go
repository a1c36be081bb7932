package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelapi/internal/config"
	h "travelapi/internal/http/handlers"
	"travelapi/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/static/images/*filepath", hd.StaticImage)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)

		// Newsletter
		api.POST("/subscribe", hd.Subscribe)

		// Bookings
		api.POST("/book", hd.CreateBooking)
		api.GET("/book/:id/ticket", hd.GetBookingTicket)

		// Destination catalog
		api.GET("/destinations", hd.ListDestinations)
		api.GET("/destination/:id", hd.GetDestination)
	}

	return r
}
