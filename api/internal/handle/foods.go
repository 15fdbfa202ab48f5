package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports a static status payload.
func (h *Handle) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "妊娠中の食事チェッカーAPI",
	})
}

// AvoidFoods returns the full hazard catalog for client display.
func (h *Handle) AvoidFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"avoid_foods": h.cat.ByID(),
	})
}
