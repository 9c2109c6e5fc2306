package auth

import "context"

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, string, int64, error)
	Logout(ctx context.Context, refreshToken string) error
}
