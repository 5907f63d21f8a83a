package channel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jarvinbai/YouTube-Channel-Scraper-API/internal/youtube"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 50
)

// VideoLister is the slice of the youtube client this handler needs.
type VideoLister interface {
	ChannelVideos(ctx context.Context, channelID string) (youtube.ChannelVideosResult, error)
}

// VideosHandler serves GET /api/channel/:channel_id/videos.
//
// max_results is validated before any fetch happens; the extracted list is
// truncated to it afterwards.
func VideosHandler(client VideoLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		channelID := strings.TrimSpace(c.Param("channel_id"))
		if channelID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "missing channel id"})
			return
		}

		maxResults, err := parseMaxResults(c.DefaultQuery("max_results", strconv.Itoa(defaultMaxResults)))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		result, err := client.ChannelVideos(c.Request.Context(), channelID)
		if err != nil {
			status, detail := statusFor(err)
			c.JSON(status, gin.H{"detail": detail})
			return
		}

		if len(result.Videos) > maxResults {
			result.Videos = result.Videos[:maxResults]
		}
		c.JSON(http.StatusOK, result)
	}
}

func parseMaxResults(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("max_results must be an integer")
	}
	if n < 1 || n > maxMaxResults {
		return 0, fmt.Errorf("max_results must be between 1 and %d", maxMaxResults)
	}
	return n, nil
}

// statusFor maps the fetch/extract failure taxonomy onto response codes:
// missing channel keeps its 404, any other upstream status passes through,
// everything else is a 500.
func statusFor(err error) (int, string) {
	var notFound *youtube.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound, notFound.Error()
	}
	var upstream *youtube.UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode, upstream.Error()
	}
	if errors.Is(err, youtube.ErrNoDataBlob) {
		return http.StatusInternalServerError, "failed to extract video data from YouTube page"
	}
	return http.StatusInternalServerError, fmt.Sprintf("an error occurred while fetching videos: %v", err)
}
