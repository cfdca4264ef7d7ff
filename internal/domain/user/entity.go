package user

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnderage = errors.New("must be at least 18 years old")

const minAgeYears = 18

// User is the storefront account: identity plus the loyalty state
// (puntosLevelUp, referral code) the profile screens render.
type User struct {
	id              uuid.UUID
	nombre          string
	email           Email
	passwordHash    string
	role            Role
	fechaNacimiento time.Time
	puntosLevelUp   int
	codigoReferido  string
	descuentoDuoc   bool
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewUser(nombre string, email Email, passwordHash string, role Role, fechaNacimiento time.Time, now time.Time) (*User, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, ErrEmptyNombre
	}
	if fechaNacimiento.AddDate(minAgeYears, 0, 0).After(now) {
		return nil, ErrUnderage
	}

	return &User{
		id:              uuid.New(),
		nombre:          nombre,
		email:           email,
		passwordHash:    passwordHash,
		role:            role,
		fechaNacimiento: fechaNacimiento,
		puntosLevelUp:   0,
		codigoReferido:  newReferralCode(),
		descuentoDuoc:   email.GrantsDiscount(),
		isActive:        true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	nombre string,
	email Email,
	passwordHash string,
	role Role,
	fechaNacimiento time.Time,
	puntosLevelUp int,
	codigoReferido string,
	descuentoDuoc bool,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:              id,
		nombre:          nombre,
		email:           email,
		passwordHash:    passwordHash,
		role:            role,
		fechaNacimiento: fechaNacimiento,
		puntosLevelUp:   puntosLevelUp,
		codigoReferido:  codigoReferido,
		descuentoDuoc:   descuentoDuoc,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// AwardPoints accrues loyalty points earned by a purchase.
func (u *User) AwardPoints(points int) {
	if points <= 0 {
		return
	}
	u.puntosLevelUp += points
}

func (u *User) ID() uuid.UUID              { return u.id }
func (u *User) Nombre() string             { return u.nombre }
func (u *User) Email() Email               { return u.email }
func (u *User) PasswordHash() string       { return u.passwordHash }
func (u *User) Role() Role                 { return u.role }
func (u *User) FechaNacimiento() time.Time { return u.fechaNacimiento }
func (u *User) PuntosLevelUp() int         { return u.puntosLevelUp }
func (u *User) CodigoReferido() string     { return u.codigoReferido }
func (u *User) DescuentoDuoc() bool        { return u.descuentoDuoc }
func (u *User) IsActive() bool             { return u.isActive }
func (u *User) CreatedAt() time.Time       { return u.createdAt }
func (u *User) UpdatedAt() time.Time       { return u.updatedAt }

const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newReferralCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("LVL-%06d", time.Now().UnixNano()%1000000)
	}
	for i, b := range buf {
		buf[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}
	return "LVL-" + string(buf)
}
