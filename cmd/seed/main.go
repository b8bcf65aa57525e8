// seed siembra la tabla de roles (idempotente) y opcionalmente crea el
// administrador inicial si ADMIN_USERNAME, ADMIN_EMAIL y ADMIN_PASSWORD
// están definidos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
	"github.com/bakeryhub/bakeryhub-api/internal/infrastructure/postgres"
	"github.com/bakeryhub/bakeryhub-api/pkg/config"
	"github.com/bakeryhub/bakeryhub-api/pkg/logger"
)

// Roles del sistema con su descripción.
var systemRoles = []entity.Role{
	{RoleName: entity.RoleAdmin, Description: "Owner / System Administrator"},
	{RoleName: entity.RoleManager, Description: "Outlet Manager"},
	{RoleName: entity.RoleFactoryDistributor, Description: "Factory Distributor"},
	{RoleName: entity.RoleSalesperson, Description: "Salesperson"},
	{RoleName: entity.RoleCustomer, Description: "Customer"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	roleRepo := postgres.NewRoleRepository(pool)
	for _, r := range systemRoles {
		role := entity.Role{
			ID:          uuid.New().String(),
			RoleName:    r.RoleName,
			Description: r.Description,
		}
		if err := roleRepo.Upsert(&role); err != nil {
			log.Fatal().Err(err).Str("role", r.RoleName).Msg("sembrar rol")
		}
		log.Info().Str("role", r.RoleName).Msg("rol sembrado")
	}

	if cfg.Admin.Username == "" || cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		log.Info().Msg("ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD no definidos, se omite el admin inicial")
		return
	}

	userRepo := postgres.NewUserRepository(pool)
	if existing, err := userRepo.GetByUsername(cfg.Admin.Username); err != nil {
		log.Fatal().Err(err).Msg("buscar admin existente")
	} else if existing != nil {
		log.Info().Str("username", cfg.Admin.Username).Msg("el admin inicial ya existe, no se crea de nuevo")
		return
	}

	adminRole, err := roleRepo.GetByName(entity.RoleAdmin)
	if err != nil || adminRole == nil {
		log.Fatal().Err(err).Msg("leer rol ADMIN")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña del admin")
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: string(hash),
		RoleID:       adminRole.ID,
		RoleName:     adminRole.RoleName,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	employee := &entity.Employee{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		FirstName:        "System",
		LastName:         "Administrator",
		NIC:              "ADMIN-0001",
		HireDate:         time.Now(),
		EmploymentStatus: entity.EmploymentActive,
	}

	// Mismo contrato de atomicidad que el registro vía API.
	txRunner := postgres.NewTxRunner(pool)
	err = txRunner.Run(ctx, func(users repository.UserRepository, employees repository.EmployeeRepository, _ repository.CustomerRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return employees.Create(employee)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin inicial")
	}
	log.Info().Str("username", user.Username).Msg("admin inicial creado")
}
