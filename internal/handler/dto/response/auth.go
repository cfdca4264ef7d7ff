package response

import "levelup-store/internal/usecase"

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func FromAuthResult(r *usecase.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: r.Token,
		User:  FromUserRecord(r.User),
	}
}
