package queries

import (
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/errs"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrSaleNotFound    = errs.New("sale not found")
	ErrSaleAccess      = errs.New("sale access denied")
	ErrUserNotFound    = errs.New("user not found")
	ErrUserAccess      = errs.New("user access denied")
	ErrReviewNotFound  = errs.New("review not found")
	ErrEventNotFound   = errs.New("event not found")
	ErrBlogNotFound    = errs.New("blog post not found")
)

// markNotFound translates a repository NOT_FOUND into the query-layer
// sentinel, leaving other failures wrapped as-is.
func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
