package api

import (
	"errors"

	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/usecase/queries"
)

// isNotFound matches the not-found sentinels of both the command and query
// layers so handlers can collapse them into a 404.
func isNotFound(err error) bool {
	for _, sentinel := range []error{
		errs.ErrProductNotFound,
		errs.ErrSaleNotFound,
		errs.ErrUserNotFound,
		errs.ErrReviewNotFound,
		errs.ErrEventNotFound,
		errs.ErrBlogNotFound,
		queries.ErrProductNotFound,
		queries.ErrSaleNotFound,
		queries.ErrUserNotFound,
		queries.ErrReviewNotFound,
		queries.ErrEventNotFound,
		queries.ErrBlogNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
