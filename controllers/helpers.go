package controllers

import (
	"errors"
	"net/http"

	"crowdreport-be/models"
	"crowdreport-be/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondData writes a success envelope.
func respondData(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, models.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// respondError maps a domain error to the envelope and status code:
// validation and vote-kind errors are 400, unknown ids are 404, anything
// else is an internal error.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		voteKindErr   *services.InvalidVoteKindError
	)

	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Error()
	case errors.As(err, &voteKindErr):
		status = http.StatusBadRequest
		message = voteKindErr.Error()
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
		message = notFoundErr.Error()
	default:
		logrus.WithError(err).Error("unexpected error handling request")
	}

	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   message,
	})
}
