package repository

import (
	"context"

	"github.com/jwalitptl/hospital-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository reads the patients table
	PatientRepository interface {
		List(ctx context.Context) ([]model.Patient, error)
		FindByFirstName(ctx context.Context, firstName string) ([]model.Patient, error)
	}

	// ProviderRepository reads the providers table
	ProviderRepository interface {
		List(ctx context.Context) ([]model.Provider, error)
		FindBySpecialty(ctx context.Context, specialty string) ([]model.Provider, error)
	}
)
