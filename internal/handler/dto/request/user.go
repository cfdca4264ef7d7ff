package request

import (
	"time"

	"levelup-store/internal/usecase/commands"
)

type CreateUserRequest struct {
	Nombre          string `json:"nombre" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	Role            string `json:"role" binding:"required,oneof=cliente admin"`
	FechaNacimiento string `json:"fechaNacimiento" binding:"required"`
}

func (r *CreateUserRequest) ToCommand() (commands.CreateUserRequest, error) {
	fecha, err := time.Parse("2006-01-02", r.FechaNacimiento)
	if err != nil {
		return commands.CreateUserRequest{}, err
	}
	return commands.CreateUserRequest{
		Nombre:          r.Nombre,
		Email:           r.Email,
		Password:        r.Password,
		Role:            r.Role,
		FechaNacimiento: fecha,
	}, nil
}

type UpdateUserRequest struct {
	Nombre *string `json:"nombre"`
	Role   *string `json:"role" binding:"omitempty,oneof=cliente admin"`
}

func (r *UpdateUserRequest) ToCommand() commands.UpdateUserRequest {
	return commands.UpdateUserRequest{
		Nombre: r.Nombre,
		Role:   r.Role,
	}
}
