package repository

import "github.com/bakeryhub/bakeryhub-api/internal/domain/entity"

// EmployeeRepository puerto de persistencia para perfiles Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByUserID(userID string) (*entity.Employee, error)
}

// CustomerRepository puerto de persistencia para perfiles Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByUserID(userID string) (*entity.Customer, error)
}
