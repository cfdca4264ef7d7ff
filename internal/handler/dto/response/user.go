package response

import (
	"levelup-store/internal/domain/loyalty"
	"levelup-store/internal/usecase/queries"
)

type UserResponse struct {
	ID               string `json:"id"`
	Nombre           string `json:"nombre"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	FechaNacimiento  string `json:"fechaNacimiento"`
	PuntosLevelUp    int    `json:"puntosLevelUp"`
	MiCodigoReferido string `json:"miCodigoReferido"`
	DescuentoDuoc    bool   `json:"descuentoDuoc"`
	Compras          int    `json:"compras"`
}

func FromUserRecord(rec *queries.UserRecord) *UserResponse {
	return &UserResponse{
		ID:               rec.ID.String(),
		Nombre:           rec.Nombre,
		Email:            rec.Email,
		Role:             rec.Role,
		FechaNacimiento:  rec.FechaNacimiento.Format("2006-01-02"),
		PuntosLevelUp:    rec.PuntosLevelUp,
		MiCodigoReferido: rec.CodigoReferido,
		DescuentoDuoc:    rec.DescuentoDuoc,
		Compras:          rec.Compras,
	}
}

func FromUserList(items []queries.UserRecord) []*UserResponse {
	res := make([]*UserResponse, len(items))
	for i := range items {
		res[i] = FromUserRecord(&items[i])
	}
	return res
}

type NivelResponse struct {
	Level           int     `json:"level"`
	Titulo          string  `json:"titulo"`
	SiguienteTitulo string  `json:"siguienteTitulo,omitempty"`
	PuntosParaSubir int     `json:"puntosParaSubir"`
	Progreso        float64 `json:"progreso"`
}

type ProfileResponse struct {
	UserResponse
	Nivel NivelResponse `json:"nivel"`
}

func FromProfileView(v *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		UserResponse: *FromUserRecord(&v.UserRecord),
		Nivel:        fromProgress(v.Nivel),
	}
}

func fromProgress(p loyalty.Progress) NivelResponse {
	resp := NivelResponse{
		Level:           p.Tier.Level,
		Titulo:          p.Tier.Titulo,
		PuntosParaSubir: p.PointsToNext,
		Progreso:        p.ProgressPercent,
	}
	if p.NextTier != nil {
		resp.SiguienteTitulo = p.NextTier.Titulo
	}
	return resp
}
