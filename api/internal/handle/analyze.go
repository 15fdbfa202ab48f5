package handle

import (
	"net/http"
	"strings"
	"time"

	"food-checker/api/internal/assess"
	"food-checker/api/internal/metrics"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Image string `json:"image"`
}

type analyzeResponse struct {
	Success bool          `json:"success"`
	Result  assess.Result `json:"result"`
}

// Analyze validates the image field, runs the configured engine and wraps
// its result. Anticipated failures stay HTTP 200 with a degraded result;
// only unexpected faults become a 500.
func (h *Handle) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Image) == "" {
		metrics.AnalyzeTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "image data is required"})
		return
	}
	if !strings.HasPrefix(req.Image, "data:image/") {
		metrics.AnalyzeTotal.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image format"})
		return
	}

	start := time.Now()
	res, err := assess.Normalize(h.engine.Assess(c.Request.Context(), req.Image))
	metrics.AnalyzeDurationSeconds.WithLabelValues(h.engine.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalyzeTotal.WithLabelValues("fault").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed: " + err.Error()})
		return
	}

	switch {
	case res.FailureKind != "":
		metrics.AnalyzeTotal.WithLabelValues("failure").Inc()
	case res.Safe:
		metrics.AnalyzeTotal.WithLabelValues("safe").Inc()
	default:
		metrics.AnalyzeTotal.WithLabelValues("risk").Inc()
	}

	c.JSON(http.StatusOK, analyzeResponse{Success: true, Result: res})
}
