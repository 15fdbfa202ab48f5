package httpserver

import (
	"fmt"
	"net/http"

	"food-checker/api/internal/handle"
	"food-checker/api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New assembles the service router. Panics anywhere under a handler are
// converted to the endpoint's 500 error shape instead of escaping.
func New(h *handle.Handle) *gin.Engine {
	metrics.Register()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": fmt.Sprintf("analysis failed: %v", err),
		})
	}))

	r.POST("/analyze", h.Analyze)
	r.GET("/health", h.Health)
	r.GET("/foods/avoid", h.AvoidFoods)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
