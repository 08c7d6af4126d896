package http

import (
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/adapter/http/middleware"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *CheckoutHandler, frontendURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	logging.Init("checkout-api", "./logs/app.log")
	l := logging.New("http")
	r.Use(middleware.Logging(l))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{
		frontendURL,
		"http://127.0.0.1:3033",
		"http://localhost:3033",
	}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.Home)
	r.POST("/create-checkout-session", h.CreateCheckoutSession)
	r.GET("/order/:checkoutId", h.GetOrderByID)
	r.POST("/payment-success", h.PaymentSuccess)

	return r
}
