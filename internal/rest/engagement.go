package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/response"
)

// EngagementHandler represent the httphandler for likes and subscriptions
type EngagementHandler struct {
	Service domain.EngagementUsecase
}

func NewEngagementHandler(svc domain.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{
		Service: svc,
	}
}

func toggleStatus(state domain.ToggleState) int {
	if state == domain.StateAdded {
		return http.StatusCreated
	}
	return http.StatusOK
}

// ToggleLike returns a handler toggling a like on the given kind; param names the id route parameter.
func (h *EngagementHandler) ToggleLike(kind domain.TargetKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := actorID(c)
		if err != nil {
			abortWithError(c, err)
			return
		}
		id, err := pathID(c, param)
		if err != nil {
			abortWithError(c, err)
			return
		}

		res, err := h.Service.ToggleLike(c.Request.Context(), actor, domain.Target{Kind: kind, ID: id})
		if err != nil {
			abortWithError(c, err)
			return
		}

		msg := "Liked " + string(kind) + " successfully"
		if res.State == domain.StateRemoved {
			msg = "Unliked " + string(kind) + " successfully"
		}
		ok(c, toggleStatus(res.State), response.NewLikeToggleFromDomain(res), msg)
	}
}

// LikedVideos lists the videos liked by the authenticated user.
func (h *EngagementHandler) LikedVideos(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	videos, err := h.Service.LikedVideos(c.Request.Context(), actor)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.List(videos, response.NewVideoFromDomain), "Liked videos fetched successfully")
}

// LikedTargets lists the authenticated user's likes of the :kind route parameter.
func (h *EngagementHandler) LikedTargets(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	kind, err := domain.ParseTargetKind(c.Param("kind"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	refs, err := h.Service.LikedTargets(c.Request.Context(), actor, kind)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.List(refs, response.NewLikedTargetFromDomain), "Liked "+string(kind)+"s fetched successfully")
}

func (h *EngagementHandler) ToggleSubscription(c *gin.Context) {
	actor, err := actorID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	channel, err := pathID(c, "channelId")
	if err != nil {
		abortWithError(c, err)
		return
	}

	res, err := h.Service.ToggleSubscription(c.Request.Context(), actor, channel)
	if err != nil {
		abortWithError(c, err)
		return
	}

	msg := "Subscribed successfully"
	if res.State == domain.StateRemoved {
		msg = "Unsubscribed successfully"
	}
	ok(c, toggleStatus(res.State), response.NewSubscriptionToggleFromDomain(res), msg)
}

func (h *EngagementHandler) ListSubscribers(c *gin.Context) {
	channel, err := pathID(c, "channelId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	subs, err := h.Service.ListSubscribers(c.Request.Context(), channel)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.List(subs, response.NewSubscriberFromDomain), "Subscribers fetched successfully")
}

func (h *EngagementHandler) ListSubscriptions(c *gin.Context) {
	subscriber, err := pathID(c, "subscriberId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	channels, err := h.Service.ListSubscriptions(c.Request.Context(), subscriber)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.List(channels, response.NewChannelFromDomain), "Subscribed channels fetched successfully")
}
