package dtos

// ReaderInput is the reader form as submitted. BirthDate uses YYYY-MM-DD; the other
// fields may carry any punctuation and are normalized before storage.
type ReaderInput struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	BirthDate  string `json:"birthDate"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	PostalCode string `json:"postalCode"`
	Address    string `json:"address"`
}
