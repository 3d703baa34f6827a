package entity

import "time"

// User representa la cuenta de usuario del dashboard. La autenticación es un
// placeholder de demo: password con bcrypt y sesión vía JWT.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
