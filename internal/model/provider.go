package model

// Provider is a row of the providers table. The API never projects its key.
type Provider struct {
	FirstName         NullString `db:"first_name" json:"first_name"`
	LastName          NullString `db:"last_name" json:"last_name"`
	ProviderSpecialty NullString `db:"provider_specialty" json:"provider_specialty"`
}
