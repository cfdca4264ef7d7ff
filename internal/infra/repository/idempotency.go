package repository

import (
	"context"
	"time"

	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"

	"github.com/google/uuid"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key. A unique violation surfaces as DUPLICATE_KEY so
// the caller can distinguish replay from failure.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO idempotency_keys (key, user_id, status, request_hash, expires_at)
		VALUES ($1, $2, 'pending', $3, $4)`

	_, err := tx.Exec(ctx, query, key, userID, requestHash, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to insert idempotency key", err, classify(err))
	}
	return nil
}

func (r *IdempotencyRepository) MarkCompleted(ctx context.Context, tx db.DBTX, key, userID uuid.UUID, saleID uuid.UUID) error {
	const query = `
		UPDATE idempotency_keys
		SET status = 'completed', result_sale_id = $3
		WHERE key = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, query, key, userID, saleID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}
