package repository

import (
	"context"

	"levelup-store/internal/domain/content"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, tx db.DBTX, ev *content.Event) (uuid.UUID, error) {
	const query = `
		INSERT INTO events (id, titulo, puntos, ubicacion, fecha, hora, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		ev.ID, ev.Titulo, ev.Puntos, ev.Ubicacion, ev.Fecha, ev.Hora, ev.Descripcion,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create event", err, classify(err))
	}
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, tx db.DBTX, ev *content.Event) error {
	const query = `
		UPDATE events
		SET titulo = $2, puntos = $3, ubicacion = $4, fecha = $5, hora = $6,
		    descripcion = $7, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query,
		ev.ID, ev.Titulo, ev.Puntos, ev.Ubicacion, ev.Fecha, ev.Hora, ev.Descripcion,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete event", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

type BlogRepository struct{}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{}
}

func (r *BlogRepository) Create(ctx context.Context, tx db.DBTX, b *content.Blog) (uuid.UUID, error) {
	const query = `
		INSERT INTO blogs (id, titulo, categoria, descripcion, fecha, icono)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		b.ID, b.Titulo, b.Categoria, b.Descripcion, b.Fecha, b.Icono,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create blog post", err, classify(err))
	}
	return id, nil
}

func (r *BlogRepository) Update(ctx context.Context, tx db.DBTX, b *content.Blog) error {
	const query = `
		UPDATE blogs
		SET titulo = $2, categoria = $3, descripcion = $4, fecha = $5, icono = $6, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, b.ID, b.Titulo, b.Categoria, b.Descripcion, b.Fecha, b.Icono)
	if err != nil {
		return infra.WrapRepoErr("failed to update blog post", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blog post not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete blog post", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("blog post not found", nil, infra.KindNotFound)
	}
	return nil
}
