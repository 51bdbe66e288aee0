package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"miniattic-api/internal/middleware"
	"miniattic-api/internal/response"
)

type RouterConfig struct {
	Orders  *OrderController
	Catalog *CatalogController
	Pages   *PageController
	Users   *UserController

	Verifier middleware.TokenVerifier
	Logger   *zap.Logger

	// Opcionales
	Metrics        *middleware.ServerMetrics
	MetricsHandler http.Handler
	Health         func(ctx context.Context) error

	AllowCORS   bool
	CORSKeyword string
	ImageDir    string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger), middleware.RequestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Handler())
	}
	r.Use(middleware.CORS(cfg.AllowCORS, cfg.CORSKeyword))

	if cfg.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(cfg.MetricsHandler))
	}
	if cfg.Health != nil {
		r.GET("/healthz", func(c *gin.Context) {
			if err := cfg.Health(c.Request.Context()); err != nil {
				cfg.Logger.Warn("health check failed", zap.Error(err))
				response.Fail(c, http.StatusServiceUnavailable, response.MsgServerError)
				return
			}
			response.OK(c, "ok", nil)
		})
	}
	if cfg.ImageDir != "" {
		r.Static("/images", cfg.ImageDir)
	}

	auth := middleware.AuthMiddleware(cfg.Verifier, cfg.Logger)
	staff := []gin.HandlerFunc{auth, middleware.StaffOnly()}

	// Rutas públicas
	r.POST("/users", cfg.Users.Register)
	r.POST("/login", cfg.Users.Login)
	r.DELETE("/login", cfg.Users.Logout)
	r.GET("/products", cfg.Catalog.ListProducts)
	r.GET("/categorys", cfg.Catalog.ListCategories)
	r.GET("/payments", cfg.Catalog.ListPayments)
	r.GET("/pages", cfg.Pages.ListPages)
	r.GET("/pages/:condition", cfg.Pages.SearchPages)
	r.GET("/webdata", cfg.Pages.WebData)
	r.GET("/img/:item", cfg.Pages.RedirectImage)

	// Órdenes (requieren token)
	orders := r.Group("/orders", auth)
	orders.POST("", cfg.Orders.PlaceOrder)
	orders.GET("", cfg.Orders.ListOrders)
	orders.GET("/:item", cfg.Orders.GetOrder)
	orders.PATCH("/:item", middleware.AdminOnly(), cfg.Orders.UpdateOrder)
	orders.DELETE("/:item", middleware.AdminOnly(), cfg.Orders.DeleteOrder)

	// Catálogo: sólo admin/editor escriben
	r.POST("/products", append(staff, cfg.Catalog.CreateProduct)...)
	r.PATCH("/products/:item", append(staff, cfg.Catalog.UpdateProduct)...)
	r.DELETE("/products/:item", append(staff, cfg.Catalog.DeleteProduct)...)
	r.POST("/categorys", append(staff, cfg.Catalog.CreateCategory)...)
	r.PATCH("/categorys/:item", append(staff, cfg.Catalog.UpdateCategory)...)
	r.DELETE("/categorys/:item", append(staff, cfg.Catalog.DeleteCategory)...)
	r.POST("/payments", append(staff, cfg.Catalog.CreatePayment)...)
	r.PATCH("/payments/:item", append(staff, cfg.Catalog.UpdatePayment)...)
	r.DELETE("/payments/:item", append(staff, cfg.Catalog.DeletePayment)...)
	r.PATCH("/pages/:item", append(staff, cfg.Pages.UpdatePage)...)
	r.POST("/img/:item", append(staff, cfg.Pages.UploadImage)...)

	return r
}
