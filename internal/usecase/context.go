package usecase

import (
	"context"

	"cv-platform-backend/internal/domain"
	"cv-platform-backend/pkg/apperror"
)

func userIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(domain.KeyUserID).(int64)
	return id, ok
}

func roleFromContext(ctx context.Context) (domain.Role, bool) {
	switch v := ctx.Value(domain.KeyUserRole).(type) {
	case domain.Role:
		return v, true
	case string:
		return domain.ParseRole(v)
	default:
		return "", false
	}
}

// requireRole enforces an access-control boundary: the context must carry an
// authenticated user whose role is one of the allowed set. Matching is
// exhaustive over the closed role enum, so an unknown role is always denied.
func requireRole(ctx context.Context, allowed ...domain.Role) error {
	role, ok := roleFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}

	switch role {
	case domain.RoleStudent, domain.RoleCompany, domain.RoleAdmin:
		for _, a := range allowed {
			if role == a {
				return nil
			}
		}
		return apperror.Forbidden("Access denied for role " + role.String())
	default:
		return apperror.Forbidden("Access denied: unknown role")
	}
}

// requireOwner enforces that the context user is the owner being acted on.
func requireOwner(ctx context.Context, ownerID int64) error {
	ctxUserID, ok := userIDFromContext(ctx)
	if !ok {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != ownerID {
		return apperror.Forbidden("You can only manage your own profile")
	}
	return nil
}
