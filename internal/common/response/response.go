package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
)

// StatusCoder is implemented by errors that know their HTTP status,
// such as errors relayed from an upstream service.
type StatusCoder interface {
	error
	HTTPStatus() int
}

// ActionNamer is implemented by errors that name the user action that failed.
type ActionNamer interface {
	ActionName() string
}

// Success writes a 200 response with the standard envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 response with the standard envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Error maps err onto an HTTP status and writes the error envelope.
func Error(c *gin.Context, err error) {
	body := gin.H{"success": false}

	var namer ActionNamer
	if errors.As(err, &namer) {
		body["action"] = namer.ActionName()
	}

	status, message := classify(err)
	body["error"] = message

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) && len(vErr.Fields) > 0 {
		body["fields"] = vErr.Fields
	}

	_ = c.Error(err)
	c.JSON(status, body)
}

func classify(err error) (int, string) {
	var (
		vErr  *domain.ValidationError
		nfErr *domain.NotFoundError
		cErr  *domain.ConflictError
		isErr *domain.InvalidStateError
		sc    StatusCoder
	)
	switch {
	case errors.As(err, &vErr):
		if len(vErr.Fields) > 0 {
			return http.StatusUnprocessableEntity, vErr.Message
		}
		return http.StatusBadRequest, vErr.Message
	case errors.As(err, &nfErr):
		return http.StatusNotFound, nfErr.Error()
	case errors.As(err, &cErr):
		return http.StatusConflict, cErr.Error()
	case errors.As(err, &isErr):
		return http.StatusConflict, isErr.Error()
	case errors.As(err, &sc):
		return sc.HTTPStatus(), sc.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
