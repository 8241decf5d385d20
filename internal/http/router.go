package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "fastbus/internal/config"
	"fastbus/internal/domain"
	h "fastbus/internal/http/handlers"
	"fastbus/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	middleware.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsPolicy(env))

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

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		api.GET("/search", h.SearchSchedules)
		api.GET("/routes", h.ListRoutes)
		api.GET("/buses", h.ListBuses)
		api.GET("/buses/:id", h.GetBus)
		api.GET("/schedules/:id/seats", h.GetScheduleSeats)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth())
		{
			authed.GET("/users/:id", h.GetUser)

			bookings := authed.Group("/bookings")
			bookings.POST("", h.CreateBooking)
			bookings.GET("/operator", middleware.RequireRoles(domain.RoleOperator), h.GetOperatorBookings)
			bookings.GET("/:id", h.GetBookingSummary)
			bookings.GET("/:id/eticket", h.GetBookingETicket)
			bookings.GET("/:id/invoice", h.GetBookingInvoice)

			payments := authed.Group("/payments")
			payments.POST("", h.RecordPayment)
			payments.GET("/booking/:bookingId", h.GetPaymentDetails)

			operator := authed.Group("")
			operator.Use(middleware.RequireRoles(domain.RoleOperator))
			{
				operator.POST("/buses", h.CreateBus)
				operator.PUT("/buses/:id", h.UpdateBus)
				operator.DELETE("/buses/:id", h.DeleteBus)

				operator.POST("/routes", h.CreateRoute)

				operator.POST("/schedules", h.CreateSchedule)
				operator.PUT("/schedules/:id", h.UpdateSchedule)
				operator.DELETE("/schedules/:id", h.DeleteSchedule)
				operator.GET("/schedules/operator", h.GetOperatorSchedules)
			}
		}
	}

	return r
}

func corsPolicy(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
	} else {
		cfg.AllowOrigins = []string{
			"http://localhost:3000", "http://127.0.0.1:3000",
			"http://localhost:5173", "http://127.0.0.1:5173",
		}
	}
	return cors.New(cfg)
}
