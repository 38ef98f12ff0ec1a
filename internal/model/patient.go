package model

// Patient is a row of the patients table as exposed by the API. Columns are
// nullable so a single incomplete row does not fail the whole listing.
type Patient struct {
	PatientID   Key        `db:"patient_id" json:"patient_id"`
	FirstName   NullString `db:"first_name" json:"first_name"`
	LastName    NullString `db:"last_name" json:"last_name"`
	DateOfBirth Date       `db:"date_of_birth" json:"date_of_birth"`
}
