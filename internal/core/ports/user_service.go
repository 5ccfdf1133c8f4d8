package ports

import (
	"context"

	"github.com/hirewire/portal/internal/core/domain"
)

// UserService is the credential service: the only component that reads or
// writes password hashes. Every record it returns is sanitized; the raw
// hash never leaves the service.
type UserService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
}
