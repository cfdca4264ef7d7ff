package usecase

import "levelup-store/internal/pkg/jwt"

// TokenValidator is the narrow slice of AuthUseCase the auth middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}
