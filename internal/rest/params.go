package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/request"
)

// ContextUserID is the gin context key the auth middleware stores the actor id under.
const ContextUserID = "user_id"

// pathID parses a positive id route parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidIdentifier, name, raw)
	}
	return id, nil
}

// actorID returns the authenticated user id.
func actorID(c *gin.Context) (int64, error) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, fmt.Errorf("%w: user not authenticated", domain.ErrInvalidIdentifier)
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, fmt.Errorf("%w: user not authenticated", domain.ErrInvalidIdentifier)
	}
	return id, nil
}

func pageQuery(c *gin.Context) (domain.PageQuery, error) {
	var req request.Page
	if err := c.ShouldBindQuery(&req); err != nil {
		return domain.PageQuery{}, fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	return req.ToDomain(), nil
}
