package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-tube-engagement/domain"
	"github.com/Guyuepp/go-tube-engagement/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidOperation),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the error envelope. Internal errors are logged and
// answered with a generic message.
func abortWithError(c *gin.Context, err error) {
	status := getStatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(err)
		msg = domain.ErrInternalServerError.Error()
	} else {
		logrus.WithField("path", c.FullPath()).Debug(err)
	}
	c.AbortWithStatusJSON(status, ResponseError{
		Status:  status,
		Kind:    domain.ErrorKind(err),
		Message: msg,
	})
}

func ok(c *gin.Context, status int, data any, msg string) {
	c.JSON(status, response.Envelope{Status: status, Data: data, Message: msg})
}
