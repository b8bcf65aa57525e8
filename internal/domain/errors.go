package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya existe")
	ErrEmailTaken         = errors.New("el email ya está registrado")
	ErrInvalidRole        = errors.New("rol inválido")
	ErrRoleNotSeeded      = errors.New("falta configuración de roles")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
