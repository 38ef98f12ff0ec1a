package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to the Hospital API"

// Handler serves the API root.
type Handler struct{}

// NewHandler creates a new handler instance
func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Welcome)
}

func (h *Handler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}
