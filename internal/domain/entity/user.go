package entity

import "time"

// User es un usuario con acceso a la API (login email + password).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
