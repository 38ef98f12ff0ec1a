package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

// FetchErrorMessage is the only detail a caller sees when a query fails.
const FetchErrorMessage = "Error fetching data from database"

// RespondQueryError attaches err for server-side logging and answers with an
// opaque 500.
func RespondQueryError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, FetchErrorMessage)
}

// RespondNotFound answers a filtered lookup that matched nothing with the
// error's message as plain text.
func RespondNotFound(c *gin.Context, err *apperrors.AppError) {
	_ = c.Error(err)
	c.String(http.StatusNotFound, err.Message)
}

// RespondRows answers with rows as a JSON array.
func RespondRows(c *gin.Context, rows interface{}) {
	c.JSON(http.StatusOK, rows)
}
