package repository

import "github.com/bakeryhub/bakeryhub-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername carga el usuario con su rol (JOIN roles). Devuelve nil, nil si no existe.
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}

// RoleRepository puerto de lectura/siembra de roles.
type RoleRepository interface {
	// GetByName devuelve nil, nil si el rol no existe.
	GetByName(roleName string) (*entity.Role, error)
	// Upsert inserta el rol si no existe (idempotente, usado por cmd/seed).
	Upsert(role *entity.Role) error
}
