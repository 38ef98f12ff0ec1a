package sqlstore

import (
	"context"
	"fmt"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/repository"
)

const (
	listProvidersQuery            = `SELECT first_name, last_name, provider_specialty FROM providers`
	findProvidersBySpecialtyQuery = listProvidersQuery + ` WHERE provider_specialty = ?`
)

type providerRepository struct {
	db *DB
}

func NewProviderRepository(db *DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) List(ctx context.Context) ([]model.Provider, error) {
	providers := []model.Provider{}
	if err := r.db.Select(ctx, "list_providers", &providers, listProvidersQuery); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return nonNil(providers), nil
}

func (r *providerRepository) FindBySpecialty(ctx context.Context, specialty string) ([]model.Provider, error) {
	providers := []model.Provider{}
	if err := r.db.Select(ctx, "find_providers_by_specialty", &providers, findProvidersBySpecialtyQuery, specialty); err != nil {
		return nil, fmt.Errorf("failed to find providers by specialty: %w", err)
	}
	return nonNil(providers), nil
}
