package handlers

import (
	"net/http"

	"core/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps the core error taxonomy onto HTTP statuses. This is the
// only place a kind becomes a status code; handlers never reinterpret one.
func respondError(c *gin.Context, err error) {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errs.KindDuplicateName:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errs.KindInvalidResult:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errs.KindTransient:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
