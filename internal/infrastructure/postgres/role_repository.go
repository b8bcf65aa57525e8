package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// GetByName obtiene un rol por nombre. Devuelve nil, nil si no existe.
func (r *RoleRepo) GetByName(roleName string) (*entity.Role, error) {
	query := `SELECT id, role_name, COALESCE(description, '') FROM roles WHERE role_name = $1`
	var role entity.Role
	err := r.q.QueryRow(context.Background(), query, roleName).Scan(&role.ID, &role.RoleName, &role.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	return &role, nil
}

// Upsert inserta el rol si no existe (idempotente; lo usa cmd/seed).
func (r *RoleRepo) Upsert(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, role_name, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (role_name) DO NOTHING`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.RoleName, role.Description)
	if err != nil {
		return fmt.Errorf("upsert role: %w", err)
	}
	return nil
}
