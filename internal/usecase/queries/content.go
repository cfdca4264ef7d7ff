package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventView struct {
	ID          uuid.UUID
	Titulo      string
	Puntos      int
	Ubicacion   string
	Fecha       string
	Hora        string
	Descripcion string
	CreatedAt   time.Time
}

type BlogView struct {
	ID          uuid.UUID
	Titulo      string
	Categoria   string
	Descripcion string
	Fecha       string
	Icono       string
	CreatedAt   time.Time
}

type ContentReadStore interface {
	ListEvents(ctx context.Context) ([]EventView, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListBlogs(ctx context.Context) ([]BlogView, error)
	FindBlogByID(ctx context.Context, id uuid.UUID) (*BlogView, error)
}

type ContentQueries interface {
	ListEvents(ctx context.Context) ([]EventView, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error)
	ListBlogs(ctx context.Context) ([]BlogView, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*BlogView, error)
}

type contentQueriesImpl struct {
	store ContentReadStore
}

func NewContentQueries(store ContentReadStore) ContentQueries {
	return &contentQueriesImpl{store: store}
}

func (q *contentQueriesImpl) ListEvents(ctx context.Context) ([]EventView, error) {
	return q.store.ListEvents(ctx)
}

func (q *contentQueriesImpl) GetEvent(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.store.FindEventByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrEventNotFound)
	}
	return view, nil
}

func (q *contentQueriesImpl) ListBlogs(ctx context.Context) ([]BlogView, error) {
	return q.store.ListBlogs(ctx)
}

func (q *contentQueriesImpl) GetBlog(ctx context.Context, id uuid.UUID) (*BlogView, error) {
	view, err := q.store.FindBlogByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, ErrBlogNotFound)
	}
	return view, nil
}
