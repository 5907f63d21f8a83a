package index

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the static service greeting on the root route.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "YouTube Channel Scraper API. Use /api/channel/{channel_id}/videos.",
		})
	}
}
