// Package auth contiene los casos de uso de autenticación: registro de
// clientes, registro de empleados (solo ADMIN) y login con JWT.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/domain"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
	"github.com/bakeryhub/bakeryhub-api/pkg/jwt"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a la tx.
// Si fn devuelve error, ningún write queda persistido (commit-or-rollback):
// es la garantía de que User y su perfil se crean juntos o no se crea nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		employees repository.EmployeeRepository,
		customers repository.CustomerRepository,
	) error) error
}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, roleRepo: roleRepo, tx: tx, jwtCfg: jwtCfg}
}

// RegisterCustomer crea User + Customer de forma atómica con rol CUSTOMER.
// Devuelve ErrRoleNotSeeded si la tabla roles no fue sembrada (precondición de despliegue).
func (uc *AuthUseCase) RegisterCustomer(ctx context.Context, in dto.RegisterCustomerRequest) (*dto.RegisterCustomerResponse, error) {
	if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	role, err := uc.roleRepo.GetByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrRoleNotSeeded
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		RoleName:     role.RoleName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		ContactNo: in.ContactNo,
		Address:   in.Address,
	}

	err = uc.tx.Run(ctx, func(users repository.UserRepository, _ repository.EmployeeRepository, customers repository.CustomerRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return customers.Create(customer)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterCustomerResponse{
		User:     toUserResponse(user),
		Customer: toCustomerResponse(customer),
	}, nil
}

// RegisterEmployee crea User + Employee de forma atómica. El rol lo indica el
// llamador y se valida contra la tabla roles: desconocido -> ErrInvalidRole.
func (uc *AuthUseCase) RegisterEmployee(ctx context.Context, in dto.RegisterEmployeeRequest) (*dto.RegisterEmployeeResponse, error) {
	hireDate, err := time.Parse(dto.DateLayout, in.HireDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	role, err := uc.roleRepo.GetByName(in.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		RoleName:     role.RoleName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	employee := &entity.Employee{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		NIC:              in.NIC,
		ContactNo:        in.ContactNo,
		HireDate:         hireDate,
		EmploymentStatus: entity.EmploymentActive,
	}

	err = uc.tx.Run(ctx, func(users repository.UserRepository, employees repository.EmployeeRepository, _ repository.CustomerRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return employees.Create(employee)
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegisterEmployeeResponse{
		User:     toUserResponse(user),
		Employee: toEmployeeResponse(employee),
	}, nil
}

// Login verifica username/password y genera un JWT de 8 horas con {userId, role}.
// El mensaje de error no distingue usuario inexistente de contraseña incorrecta
// (evita enumeración de usuarios); la distinción se registra solo en el log.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		log.Debug().Str("username", in.Username).Msg("login: usuario no encontrado")
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		log.Debug().Str("username", in.Username).Msg("login: contraseña incorrecta")
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: dto.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.RoleName,
		},
	}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.RoleName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		ContactNo:     c.ContactNo,
		Address:       c.Address,
		LoyaltyPoints: c.LoyaltyPoints,
	}
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		NIC:              e.NIC,
		ContactNo:        e.ContactNo,
		HireDate:         e.HireDate,
		EmploymentStatus: e.EmploymentStatus,
	}
}
