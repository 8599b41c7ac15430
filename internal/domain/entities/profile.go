package entities

import "time"

// Profile representa os dados de perfil de um usuário (1:1 com User)
type Profile struct {
	ID     string
	UserID string

	// Informações pessoais
	FirstName       *string
	LastName        *string
	Phone           *string
	Bio             *string
	JobTitle        *string
	Location        *string
	ProfileImageURL *string

	// Endereço
	Country    *string
	CityState  *string
	PostalCode *string
	TaxID      *string

	// Redes sociais
	FacebookURL  *string
	TwitterURL   *string
	LinkedinURL  *string
	InstagramURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
