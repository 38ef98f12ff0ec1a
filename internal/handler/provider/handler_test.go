package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/hospital-api/internal/model"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type mockProviderRepository struct {
	mock.Mock
}

func (m *mockProviderRepository) List(ctx context.Context) ([]model.Provider, error) {
	args := m.Called(ctx)
	providers, _ := args.Get(0).([]model.Provider)
	return providers, args.Error(1)
}

func (m *mockProviderRepository) FindBySpecialty(ctx context.Context, specialty string) ([]model.Provider, error) {
	args := m.Called(ctx, specialty)
	providers, _ := args.Get(0).([]model.Provider)
	return providers, args.Error(1)
}

var house = model.Provider{
	FirstName:         model.NewNullString("Greg"),
	LastName:          model.NewNullString("House"),
	ProviderSpecialty: model.NewNullString("Diagnostics"),
}

const houseJSON = `[{"first_name":"Greg","last_name":"House","provider_specialty":"Diagnostics"}]`

func setup(repo *mockProviderRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(repo).RegisterRoutes(&engine.RouterGroup)
	return engine
}

func get(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListProviders(t *testing.T) {
	tests := []struct {
		name     string
		rows     []model.Provider
		err      error
		wantCode int
		wantBody string
	}{
		{"rows", []model.Provider{house}, nil, http.StatusOK, houseJSON},
		{"empty table", []model.Provider{}, nil, http.StatusOK, `[]`},
		{"query error", nil, apperrors.Query(errors.New("timeout")), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockProviderRepository)
			repo.On("List", mock.Anything).Return(tt.rows, tt.err)

			rec := get(setup(repo), "/providers")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.err != nil {
				assert.Equal(t, "Error fetching data from database", rec.Body.String())
				return
			}
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetProvidersBySpecialty(t *testing.T) {
	repo := new(mockProviderRepository)
	repo.On("FindBySpecialty", mock.Anything, "Diagnostics").Return([]model.Provider{house}, nil)
	repo.On("FindBySpecialty", mock.Anything, "Cardiology").Return([]model.Provider{}, nil)
	repo.On("FindBySpecialty", mock.Anything, "Oncology").Return(nil, apperrors.Query(errors.New("bad connection")))
	engine := setup(repo)

	rec := get(engine, "/providers/Diagnostics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, houseJSON, rec.Body.String())

	rec = get(engine, "/providers/Cardiology")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No providers found with the given specialty", rec.Body.String())

	rec = get(engine, "/providers/Oncology")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching data from database", rec.Body.String())

	repo.AssertExpectations(t)
}

func TestGetProvidersBySpecialtyDecodesPath(t *testing.T) {
	repo := new(mockProviderRepository)
	repo.On("FindBySpecialty", mock.Anything, "Family Medicine").Return([]model.Provider{}, nil)

	rec := get(setup(repo), "/providers/Family%20Medicine")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertExpectations(t)
}
