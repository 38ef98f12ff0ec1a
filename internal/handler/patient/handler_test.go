package patient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jwalitptl/hospital-api/internal/model"
	apperrors "github.com/jwalitptl/hospital-api/pkg/errors"
)

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]model.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientRepository) FindByFirstName(ctx context.Context, firstName string) ([]model.Patient, error) {
	args := m.Called(ctx, firstName)
	patients, _ := args.Get(0).([]model.Patient)
	return patients, args.Error(1)
}

var jane = model.Patient{
	PatientID:   model.NewKey(int64(1)),
	FirstName:   model.NewNullString("Jane"),
	LastName:    model.NewNullString("Doe"),
	DateOfBirth: model.NewDate(1980, time.January, 1),
}

const janeJSON = `[{"patient_id":1,"first_name":"Jane","last_name":"Doe","date_of_birth":"1980-01-01"}]`

func setup(repo *mockPatientRepository) *gin.Engine {
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

func TestListPatients(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("List", mock.Anything).Return([]model.Patient{jane}, nil)

	rec := get(setup(repo), "/patients")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, janeJSON, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestListPatientsEmpty(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("List", mock.Anything).Return([]model.Patient{}, nil)

	rec := get(setup(repo), "/patients")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPatientsQueryError(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("List", mock.Anything).Return(nil, apperrors.Query(errors.New("password authentication failed for user \"admin\"")))

	rec := get(setup(repo), "/patients")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching data from database", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "admin")
}

func TestGetPatientsByFirstName(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("FindByFirstName", mock.Anything, "Jane").Return([]model.Patient{jane}, nil)

	rec := get(setup(repo), "/patients/Jane")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, janeJSON, rec.Body.String())
	repo.AssertExpectations(t)
}

func TestGetPatientsByFirstNameNotFound(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("FindByFirstName", mock.Anything, "Nobody").Return([]model.Patient{}, nil)

	rec := get(setup(repo), "/patients/Nobody")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No patients found with the given first name", rec.Body.String())
}

func TestGetPatientsByFirstNameQueryError(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("FindByFirstName", mock.Anything, "Jane").Return(nil, apperrors.Query(errors.New("connection reset")))

	rec := get(setup(repo), "/patients/Jane")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching data from database", rec.Body.String())
}

func TestGetPatientsByFirstNamePassesParameterThrough(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("FindByFirstName", mock.Anything, "O'Brien").Return([]model.Patient{}, nil)

	rec := get(setup(repo), "/patients/O%27Brien")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	repo.AssertCalled(t, "FindByFirstName", mock.Anything, "O'Brien")
}
