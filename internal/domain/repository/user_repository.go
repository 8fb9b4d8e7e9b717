package repository

import "github.com/jhoicas/tiktrack-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios de la API.
type UserRepository interface {
	Create(user *entity.User) error
	// FindByEmail devuelve (nil, nil) si el email no está registrado.
	FindByEmail(email string) (*entity.User, error)
}
