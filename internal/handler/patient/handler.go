package patient

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-api/internal/handler"
	"github.com/jwalitptl/hospital-api/internal/repository"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

const notFoundMessage = "No patients found with the given first name"

type Handler struct {
	repo repository.PatientRepository
}

func NewHandler(repo repository.PatientRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/:first_name", h.GetPatientsByFirstName)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.repo.List(c.Request.Context())
	if err != nil {
		handler.RespondQueryError(c, err)
		return
	}

	handler.RespondRows(c, patients)
}

func (h *Handler) GetPatientsByFirstName(c *gin.Context) {
	patients, err := h.repo.FindByFirstName(c.Request.Context(), c.Param("first_name"))
	if err != nil {
		handler.RespondQueryError(c, err)
		return
	}

	if len(patients) == 0 {
		handler.RespondNotFound(c, apperrors.NotFound(notFoundMessage))
		return
	}

	handler.RespondRows(c, patients)
}
