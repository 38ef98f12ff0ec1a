package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

// ErrorHandler logs every error a handler attached with c.Error. Empty
// lookups are routine and go out at debug level. Handlers own the response;
// if one forgot to write it, a bare 500 is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			event := log.Error()
			if apperrors.IsNotFound(e.Err) {
				event = log.Debug()
			}
			event.
				Err(e.Err).
				Int("code", int(apperrors.CodeOf(e.Err))).
				Str("request_id", c.GetString(ContextRequestID)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Str("client_ip", c.ClientIP()).
				Msg("Request error")
		}

		if !c.Writer.Written() {
			c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
	}
}
