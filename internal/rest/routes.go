package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-tube-engagement/domain"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Engagement *EngagementHandler
	Dashboard  *DashboardHandler
	Content    *ContentHandler
}

// RegisterRoutes mounts the API under /api/v1. auth guards the per-actor routes.
func RegisterRoutes(route *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	route.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := route.Group("/api/v1")

	v1.GET("/videos", h.Content.ListVideos)
	v1.GET("/videos/:videoId/comments", h.Content.ListVideoComments)
	v1.GET("/tweets/user/:userId", h.Content.ListUserTweets)
	v1.GET("/playlists/user/:userId", h.Content.ListUserPlaylists)

	v1.GET("/subscriptions/c/:channelId", h.Engagement.ListSubscribers)
	v1.GET("/subscriptions/u/:subscriberId", h.Engagement.ListSubscriptions)

	v1.GET("/dashboard/stats/:channelId", h.Dashboard.GetChannelStats)
	v1.GET("/dashboard/videos/:channelId", h.Dashboard.GetChannelVideos)

	authorized := v1.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/likes/toggle/v/:videoId", h.Engagement.ToggleLike(domain.TargetVideo, "videoId"))
		authorized.POST("/likes/toggle/c/:commentId", h.Engagement.ToggleLike(domain.TargetComment, "commentId"))
		authorized.POST("/likes/toggle/t/:tweetId", h.Engagement.ToggleLike(domain.TargetTweet, "tweetId"))
		authorized.GET("/likes/videos", h.Engagement.LikedVideos)
		authorized.GET("/likes/:kind", h.Engagement.LikedTargets)
		authorized.POST("/subscriptions/c/:channelId", h.Engagement.ToggleSubscription)
	}
}
