package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

func IsValidRole(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleSupervisor || roleID == RoleClient
}

// Operator é quem opera a API; não há cadastro de usuários, o token é emitido a partir destes dados
type Operator struct {
	ID     int
	Name   string
	RoleID int
}

// Claims são os dados do operador autenticado carregados no token JWT
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
