package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT + usuario con permisos efectivos.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest alta de usuario (solo admin).
type CreateUserRequest struct {
	CompanyID   string   `json:"company_id"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Department  string   `json:"department"`
	Permissions []string `json:"permissions"`
}

// UpdateUserRequest modificación de rol, departamento y permisos explícitos.
type UpdateUserRequest struct {
	Name        *string   `json:"name"`
	Role        *string   `json:"role"`
	Department  *string   `json:"department"`
	Permissions *[]string `json:"permissions"`
	Status      *string   `json:"status"`
}

// UserResponse representación pública del usuario. Permissions contiene los
// permisos efectivos (explícitos + paquete por defecto del rol), calculados al
// momento de responder, nunca persistidos.
type UserResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Department  string    `json:"department,omitempty"`
	Permissions []string  `json:"permissions"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
