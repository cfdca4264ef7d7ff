package request

import (
	"time"

	"levelup-store/internal/domain/user"
	"levelup-store/internal/usecase"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, pass), nil
}

type RegisterRequest struct {
	Nombre          string `json:"nombre" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	FechaNacimiento string `json:"fechaNacimiento" binding:"required"`
}

func (r *RegisterRequest) ToCommand() (usecase.RegisterRequest, error) {
	fecha, err := time.Parse("2006-01-02", r.FechaNacimiento)
	if err != nil {
		return usecase.RegisterRequest{}, err
	}
	return usecase.RegisterRequest{
		Nombre:          r.Nombre,
		Email:           r.Email,
		Password:        r.Password,
		FechaNacimiento: fecha,
	}, nil
}
