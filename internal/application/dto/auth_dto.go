package dto

import "time"

// RegisterCustomerRequest entrada del registro público de clientes
// (password en texto, se hashea en el use case).
type RegisterCustomerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	ContactNo string `json:"contact_no"`
	Address   string `json:"address"`
}

// RegisterEmployeeRequest entrada del registro de empleados (solo ADMIN).
// Role debe existir en la tabla roles; HireDate usa formato 2006-01-02.
type RegisterEmployeeRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	NIC       string `json:"nic" validate:"required,max=20"`
	ContactNo string `json:"contact_no"`
	HireDate  string `json:"hire_date" validate:"required"`
	Role      string `json:"role" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary identidad mínima que viaja en la respuesta de login.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse salida con token JWT de 8 horas.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerResponse perfil de cliente.
type CustomerResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	ContactNo     string `json:"contact_no"`
	Address       string `json:"address"`
	LoyaltyPoints int    `json:"loyalty_points"`
}

// EmployeeResponse perfil de empleado.
type EmployeeResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	NIC              string    `json:"nic"`
	ContactNo        string    `json:"contact_no"`
	HireDate         time.Time `json:"hire_date"`
	EmploymentStatus string    `json:"employment_status"`
}

// RegisterCustomerResponse usuario + perfil creados en la misma transacción.
type RegisterCustomerResponse struct {
	User     UserResponse     `json:"user"`
	Customer CustomerResponse `json:"customer"`
}

// RegisterEmployeeResponse usuario + perfil creados en la misma transacción.
type RegisterEmployeeResponse struct {
	User     UserResponse     `json:"user"`
	Employee EmployeeResponse `json:"employee"`
}
