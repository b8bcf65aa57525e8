package entity

import "time"

// Nombres de rol válidos. Se siembran una sola vez en la tabla roles (cmd/seed).
const (
	RoleAdmin              = "ADMIN"
	RoleManager            = "MANAGER"
	RoleFactoryDistributor = "FACTORY_DISTRIBUTOR"
	RoleSalesperson        = "SALESPERSON"
	RoleCustomer           = "CUSTOMER"
)

// User representa una identidad de login. Cada usuario tiene exactamente un rol
// y un perfil 1:1 (Employee o Customer) creado en la misma transacción.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RoleID       string
	RoleName     string // denormalizado vía JOIN con roles; vacío si no se cargó
	IsActive     bool
	CreatedAt    time.Time
}

// Role valor enumerado sembrado una vez; un usuario tiene exactamente un rol.
type Role struct {
	ID          string
	RoleName    string
	Description string
}
