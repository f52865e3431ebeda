package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/glowin/internal/adapters/config"
	"github.com/rafaelleal24/glowin/internal/adapters/http/controllers"
	"github.com/rafaelleal24/glowin/internal/adapters/http/handlers"
	"github.com/rafaelleal24/glowin/internal/adapters/http/middleware"
	"github.com/swaggo/swag"
)

type Router struct {
	healthController     *controllers.HealthController
	catalogController    *controllers.CatalogController
	sessionController    *controllers.SessionController
	checkoutController   *controllers.CheckoutController
	membershipController *controllers.MembershipController
	rateLimiter          middleware.RateLimiter
	limits               config.HTTPConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	sessionController *controllers.SessionController,
	checkoutController *controllers.CheckoutController,
	membershipController *controllers.MembershipController,
	rateLimiter middleware.RateLimiter,
	limits config.HTTPConfig,
) *Router {
	return &Router{
		healthController:     healthController,
		catalogController:    catalogController,
		sessionController:    sessionController,
		checkoutController:   checkoutController,
		membershipController: membershipController,
		rateLimiter:          rateLimiter,
		limits:               limits,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := r.rateLimiter
	mutation := middleware.RateLimit(rl, r.limits.MutationRateLimit, 1*time.Minute)
	checkout := middleware.RateLimit(rl, r.limits.CheckoutRateLimit, 1*time.Minute)

	router.GET("/swagger/doc.json", serveSwaggerDoc)

	apiGroup := router.Group("/api")
	v1Group := apiGroup.Group("/v1")
	{
		v1Group.Use(middleware.LogRequest())
		v1Group.GET("/health", r.healthController.Health)

		v1Group.GET("/catalog", r.catalogController.List)
		v1Group.GET("/catalog/:name", r.catalogController.Get)
		v1Group.GET("/payment-methods", r.catalogController.PaymentMethods)

		v1Group.POST("/sessions", mutation, r.sessionController.Create)
		v1Group.GET("/sessions/:id", r.sessionController.Get)
		v1Group.GET("/sessions/:id/catalog", r.sessionController.Search)
		v1Group.POST("/sessions/:id/wishlist/toggle", mutation, r.sessionController.ToggleWishlist)
		v1Group.POST("/sessions/:id/cart/items", mutation, r.sessionController.AddToCart)
		v1Group.POST("/sessions/:id/cart/items/increase", mutation, r.sessionController.IncreaseQuantity)
		v1Group.POST("/sessions/:id/cart/items/decrease", mutation, r.sessionController.DecreaseQuantity)

		v1Group.GET("/sessions/:id/checkout", r.checkoutController.Quote)
		v1Group.POST("/sessions/:id/checkout", checkout, r.checkoutController.Pay)
		v1Group.POST("/sessions/:id/checkout/cancel", r.checkoutController.Cancel)
		v1Group.GET("/sessions/:id/receipts", r.checkoutController.ListReceipts)
		v1Group.GET("/receipts/:id", r.checkoutController.GetReceipt)

		v1Group.GET("/membership", r.membershipController.Profile)
		v1Group.GET("/membership/rewards", r.membershipController.Rewards)
		v1Group.GET("/membership/history", r.membershipController.History)
	}
}

func serveSwaggerDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "swagger doc not registered"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
