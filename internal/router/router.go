package router

import (
	"time"

	"gateapp/internal/employees"
	"gateapp/internal/flights"
	"gateapp/internal/predict"
	"gateapp/internal/productivity"
	"gateapp/internal/products"
	"gateapp/internal/scans"
	"gateapp/internal/vision"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Flights      *flights.Handler
	Employees    *employees.Handler
	Products     *products.Handler
	Scans        *scans.Handler
	Vision       *vision.Handler
	Predict      *predict.Handler
	Productivity *productivity.Handler
}

func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if h.Flights != nil {
		g := r.Group("/flights")
		g.POST("", h.Flights.Create)
		g.GET("", h.Flights.List)
		g.GET("/:id", h.Flights.Get)
		g.PUT("/:id", h.Flights.Update)
		g.DELETE("/:id", h.Flights.Delete)
	}

	if h.Employees != nil {
		g := r.Group("/employees")
		g.POST("", h.Employees.Create)
		g.GET("", h.Employees.List)
		g.GET("/:id", h.Employees.Get)
		g.PUT("/:id", h.Employees.Update)
		g.DELETE("/:id", h.Employees.Delete)
	}

	if h.Products != nil {
		g := r.Group("/products")
		g.POST("", h.Products.Create)
		g.GET("", h.Products.List)
		g.GET("/:id", h.Products.Get)
		g.PUT("/:id", h.Products.Update)
		g.DELETE("/:id", h.Products.Delete)
	}

	if h.Scans != nil {
		g := r.Group("/scans")
		g.POST("", h.Scans.Create)
		g.GET("", h.Scans.List)
		g.GET("/:id", h.Scans.Get)
	}

	if h.Vision != nil {
		g := r.Group("/api/vision")
		g.POST("/expiry-date", h.Vision.ExtractExpiryDate)
		g.POST("/lot-number", h.Vision.ExtractLotNumber)
		g.GET("/health", h.Vision.Health)
	}

	if h.Predict != nil {
		r.GET("/predict", h.Predict.GetPredictions)
	}

	if h.Productivity != nil {
		g := r.Group("/productivity")
		g.GET("/estimate", h.Productivity.Estimate)
		g.GET("/insights/:employee_id", h.Productivity.Insights)
		g.GET("/compare", h.Productivity.Compare)
	}

	return r
}
