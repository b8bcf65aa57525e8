package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)
var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un perfil de empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, user_id, first_name, last_name, nic, contact_no, hire_date, employment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.UserID, e.FirstName, e.LastName, e.NIC, e.ContactNo, e.HireDate, e.EmploymentStatus,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate // nic único
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de empleado de un usuario. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	query := `
		SELECT id, user_id, first_name, last_name, nic, COALESCE(contact_no, ''), hire_date, employment_status
		FROM employees WHERE user_id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&e.ID, &e.UserID, &e.FirstName, &e.LastName, &e.NIC, &e.ContactNo, &e.HireDate, &e.EmploymentStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	return &e, nil
}

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un perfil de cliente.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, user_id, first_name, last_name, contact_no, address, loyalty_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.UserID, c.FirstName, c.LastName, c.ContactNo, c.Address, c.LoyaltyPoints,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de cliente de un usuario. Devuelve nil, nil si no existe.
func (r *CustomerRepo) GetByUserID(userID string) (*entity.Customer, error) {
	query := `
		SELECT id, user_id, first_name, last_name, COALESCE(contact_no, ''), COALESCE(address, ''), loyalty_points
		FROM customers WHERE user_id = $1`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.ContactNo, &c.Address, &c.LoyaltyPoints,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by user: %w", err)
	}
	return &c, nil
}
