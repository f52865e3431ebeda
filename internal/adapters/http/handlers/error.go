package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type ErrorResponse struct {
	Error string `json:"error" example:"session not found"`
	Code  string `json:"code,omitempty" example:"not_found"`
	Field string `json:"field,omitempty" example:"card_number"`
}

var statusByKind = map[serviceerrors.ErrorKind]int{
	serviceerrors.KindNotFound:            http.StatusNotFound,
	serviceerrors.KindConflict:            http.StatusConflict,
	serviceerrors.KindUnprocessableEntity: http.StatusUnprocessableEntity,
	serviceerrors.KindInvalidRequest:      http.StatusBadRequest,
}

// HandleError writes the response for err and records it on the context for
// the request log. Errors outside serviceerrors are reported as a bare 500.
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var svcErr *serviceerrors.ServiceError
	if !errors.As(err, &svcErr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	status, ok := statusByKind[svcErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, ErrorResponse{
		Error: svcErr.Message,
		Code:  svcErr.Kind.String(),
		Field: svcErr.Field,
	})
}
