package pgconv

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// IsNoRows reports whether err is the pgx empty-result sentinel. Repositories
// use it to translate missing rows into NOT_FOUND before the error leaves the
// infra layer.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
