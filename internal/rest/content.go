package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/request"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/response"
)

type ContentHandler struct {
	Service domain.ContentUsecase
}

func NewContentHandler(svc domain.ContentUsecase) *ContentHandler {
	return &ContentHandler{
		Service: svc,
	}
}

func (h *ContentHandler) ListVideos(c *gin.Context) {
	var req request.VideoList
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, fmt.Errorf("%w: %v", domain.ErrBadParamInput, err))
		return
	}
	page, err := h.Service.ListVideos(c.Request.Context(), req.Filter(), req.Page.ToDomain())
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.NewPage(page, response.NewVideoFromDomain), "Videos fetched successfully")
}

func (h *ContentHandler) ListVideoComments(c *gin.Context) {
	video, err := pathID(c, "videoId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	q, err := pageQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	page, err := h.Service.ListVideoComments(c.Request.Context(), video, q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.NewPage(page, response.NewCommentFromDomain), "Comments fetched successfully")
}

func (h *ContentHandler) ListUserTweets(c *gin.Context) {
	user, err := pathID(c, "userId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	q, err := pageQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	page, err := h.Service.ListUserTweets(c.Request.Context(), user, q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.NewPage(page, response.NewTweetFromDomain), "Tweets fetched successfully")
}

func (h *ContentHandler) ListUserPlaylists(c *gin.Context) {
	user, err := pathID(c, "userId")
	if err != nil {
		abortWithError(c, err)
		return
	}
	q, err := pageQuery(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	page, err := h.Service.ListUserPlaylists(c.Request.Context(), user, q)
	if err != nil {
		abortWithError(c, err)
		return
	}
	ok(c, http.StatusOK, response.NewPage(page, response.NewPlaylistFromDomain), "Playlists fetched successfully")
}
