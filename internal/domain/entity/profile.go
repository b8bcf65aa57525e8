package entity

import "time"

// Estados de empleo para Employee.
const (
	EmploymentActive     = "ACTIVE"
	EmploymentOnLeave    = "ON_LEAVE"
	EmploymentTerminated = "TERMINATED"
	EmploymentResigned   = "RESIGNED"
)

// Employee perfil 1:1 de un User con rol de personal (admin, manager, fábrica, ventas).
type Employee struct {
	ID               string
	UserID           string
	FirstName        string
	LastName         string
	NIC              string
	ContactNo        string
	HireDate         time.Time
	EmploymentStatus string
}

// Customer perfil 1:1 de un User con rol CUSTOMER.
type Customer struct {
	ID            string
	UserID        string
	FirstName     string
	LastName      string
	ContactNo     string
	Address       string
	LoyaltyPoints int
}
