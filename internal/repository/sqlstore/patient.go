package sqlstore

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

const (
	listPatientsQuery            = `SELECT patient_id, first_name, last_name, date_of_birth FROM patients`
	findPatientsByFirstNameQuery = listPatientsQuery + ` WHERE first_name = ?`
)

type patientRepository struct {
	db *DB
}

func NewPatientRepository(db *DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) List(ctx context.Context) ([]model.Patient, error) {
	patients := []model.Patient{}
	if err := r.db.Select(ctx, "list_patients", &patients, listPatientsQuery); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return nonNil(patients), nil
}

func (r *patientRepository) FindByFirstName(ctx context.Context, firstName string) ([]model.Patient, error) {
	patients := []model.Patient{}
	if err := r.db.Select(ctx, "find_patients_by_first_name", &patients, findPatientsByFirstNameQuery, firstName); err != nil {
		return nil, fmt.Errorf("failed to find patients by first name: %w", err)
	}
	return nonNil(patients), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
