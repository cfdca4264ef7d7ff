package commands

import (
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/errs"
)

func markProductNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrProductNotFound)
	}
	return err
}

func markUserNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrUserNotFound)
	}
	return err
}
