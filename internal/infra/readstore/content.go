package readstore

import (
	"context"

	"levelup-store/internal/domain/content"
	"levelup-store/internal/infra"
	"levelup-store/internal/infra/db"
	"levelup-store/internal/pkg/pgconv"
	"levelup-store/internal/usecase/queries"

	"github.com/google/uuid"
)

// ContentReadStore serves both the public listing queries and the current
// rows content commands patch against.
type ContentReadStore struct {
	db db.DBTX
}

func NewContentReadStore(dbtx db.DBTX) *ContentReadStore {
	return &ContentReadStore{db: dbtx}
}

const eventColumns = `id, titulo, puntos, ubicacion, fecha, hora, descripcion, created_at`

func (s *ContentReadStore) ListEvents(ctx context.Context) ([]queries.EventView, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY fecha`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	items := make([]queries.EventView, 0)
	for rows.Next() {
		var v queries.EventView
		if err := rows.Scan(&v.ID, &v.Titulo, &v.Puntos, &v.Ubicacion, &v.Fecha, &v.Hora, &v.Descripcion, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read events", err)
	}
	return items, nil
}

func (s *ContentReadStore) FindEventByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var v queries.EventView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Titulo, &v.Puntos, &v.Ubicacion, &v.Fecha, &v.Hora, &v.Descripcion, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return &v, nil
}

// EventByID returns the domain shape for partial updates.
func (s *ContentReadStore) EventByID(ctx context.Context, id uuid.UUID) (*content.Event, error) {
	v, err := s.FindEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &content.Event{
		ID:          v.ID,
		Titulo:      v.Titulo,
		Puntos:      v.Puntos,
		Ubicacion:   v.Ubicacion,
		Fecha:       v.Fecha,
		Hora:        v.Hora,
		Descripcion: v.Descripcion,
		CreatedAt:   v.CreatedAt,
	}, nil
}

const blogColumns = `id, titulo, categoria, descripcion, fecha, icono, created_at`

func (s *ContentReadStore) ListBlogs(ctx context.Context) ([]queries.BlogView, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blogs", err)
	}
	defer rows.Close()

	items := make([]queries.BlogView, 0)
	for rows.Next() {
		var v queries.BlogView
		if err := rows.Scan(&v.ID, &v.Titulo, &v.Categoria, &v.Descripcion, &v.Fecha, &v.Icono, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blog post", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blogs", err)
	}
	return items, nil
}

func (s *ContentReadStore) FindBlogByID(ctx context.Context, id uuid.UUID) (*queries.BlogView, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	var v queries.BlogView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Titulo, &v.Categoria, &v.Descripcion, &v.Fecha, &v.Icono, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blog post not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find blog post", err)
	}
	return &v, nil
}

// BlogByID returns the domain shape for partial updates.
func (s *ContentReadStore) BlogByID(ctx context.Context, id uuid.UUID) (*content.Blog, error) {
	v, err := s.FindBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &content.Blog{
		ID:          v.ID,
		Titulo:      v.Titulo,
		Categoria:   v.Categoria,
		Descripcion: v.Descripcion,
		Fecha:       v.Fecha,
		Icono:       v.Icono,
		CreatedAt:   v.CreatedAt,
	}, nil
}
