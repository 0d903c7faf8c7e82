package handler

import (
	"log/slog"
	"net/http"

	"newshub/internal/httpapi/apperr"

	"github.com/gin-gonic/gin"
)

// writeError translates err into its client-facing status and {msg} body.
// Unexpected errors are logged with their detail here and leave the process
// as a bare 500.
func writeError(c *gin.Context, err error) {
	e := apperr.Translate(err)
	if e.Status == http.StatusInternalServerError {
		slog.Error("unhandled error",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(e.Status, gin.H{"msg": e.Msg})
}
