package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Sale errors
	ErrSaleNotFound      = errors.New("sale not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// Content errors
	ErrEventNotFound = errors.New("event not found")
	ErrBlogNotFound  = errors.New("blog post not found")

	// Idempotency errors
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
