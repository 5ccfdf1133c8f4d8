package ports

import (
	"context"

	"github.com/hirewire/portal/internal/core/domain"
)

// UserRepository defines the interface for user-record persistence.
// Implementations return domain.ErrUserNotFound for missing records,
// domain.ErrUserExists on uniqueness violations, and wrap any transport
// failure in domain.ErrStorageUnavailable.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
