package authenticating

import (
	"fmt"
	"slices"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
	"github.com/vfg2006/campaign-optimizer-api/pkg/apiErrors"
)

// Authorize confere se o papel do operador está entre os permitidos
func Authorize(claims *domain.Claims, allowedRoles []int) error {
	if claims == nil {
		return NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "operador não autenticado")
	}

	if !slices.Contains(allowedRoles, claims.UserRoleID) {
		return NewAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, fmt.Sprintf("role=%d", claims.UserRoleID))
	}

	return nil
}
