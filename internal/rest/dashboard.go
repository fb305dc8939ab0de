package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/response"
)

type DashboardHandler struct {
	Service domain.DashboardUsecase
}

func NewDashboardHandler(svc domain.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		Service: svc,
	}
}

func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	channel, err := pathID(c, "channelId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	stats, err := h.Service.GetChannelStats(c.Request.Context(), channel)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.NewChannelStatsFromDomain(stats), "Channel stats fetched successfully")
}

func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	channel, err := pathID(c, "channelId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	q, err := pageQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	page, err := h.Service.GetChannelVideos(c.Request.Context(), channel, q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.NewPage(page, response.NewVideoFromDomain), "Channel videos fetched successfully")
}
