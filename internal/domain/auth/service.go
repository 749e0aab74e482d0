package auth

import (
	"context"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (user.User, error)
}
