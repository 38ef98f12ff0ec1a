package provider

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/handler"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

const notFoundMessage = "No providers found with the given specialty"

type Handler struct {
	repo repository.ProviderRepository
}

func NewHandler(repo repository.ProviderRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	providers := r.Group("/providers")
	{
		providers.GET("", h.ListProviders)
		providers.GET("/:specialty", h.GetProvidersBySpecialty)
	}
}

func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.repo.List(c.Request.Context())
	if err != nil {
		handler.RespondQueryError(c, err)
		return
	}

	handler.RespondRows(c, providers)
}

func (h *Handler) GetProvidersBySpecialty(c *gin.Context) {
	providers, err := h.repo.FindBySpecialty(c.Request.Context(), c.Param("specialty"))
	if err != nil {
		handler.RespondQueryError(c, err)
		return
	}

	if len(providers) == 0 {
		handler.RespondNotFound(c, apperrors.NotFound(notFoundMessage))
		return
	}

	handler.RespondRows(c, providers)
}
