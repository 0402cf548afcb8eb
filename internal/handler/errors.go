package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/store"
)

// respondError maps a mutation failure onto an HTTP status and renders the
// typed error so clients can show the message inline.
func respondError(c *gin.Context, err *store.Error) {
	c.JSON(statusFor(err.Code), gin.H{"error": err})
}

func statusFor(code store.Code) int {
	switch code {
	case store.CodeInvalidTarget:
		return http.StatusNotFound
	case store.CodeDuplicateColumnName:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
