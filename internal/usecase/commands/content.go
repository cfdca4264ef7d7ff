package commands

import (
	"context"

	"levelup-store/internal/domain/content"
	"levelup-store/internal/infra"
	"levelup-store/internal/pkg/errs"
	"levelup-store/internal/pkg/patch"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Titulo      string
	Puntos      int
	Ubicacion   string
	Fecha       string
	Hora        string
	Descripcion string
}

type UpdateEventRequest struct {
	Titulo      *string
	Puntos      *int
	Ubicacion   *string
	Fecha       *string
	Hora        *string
	Descripcion *string
}

type CreateBlogRequest struct {
	Titulo      string
	Categoria   string
	Descripcion string
	Fecha       string
	Icono       string
}

type UpdateBlogRequest struct {
	Titulo      *string
	Categoria   *string
	Descripcion *string
	Fecha       *string
	Icono       *string
}

type ContentCommands interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	CreateBlog(ctx context.Context, req CreateBlogRequest) (uuid.UUID, error)
	UpdateBlog(ctx context.Context, id uuid.UUID, req UpdateBlogRequest) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

// ContentReads provides the current row for partial updates.
type ContentReads interface {
	EventByID(ctx context.Context, id uuid.UUID) (*content.Event, error)
	BlogByID(ctx context.Context, id uuid.UUID) (*content.Blog, error)
}

type contentUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads ContentReads
}

func NewContentUseCase(uow shared.UnitOfWork, reads ContentReads) ContentCommands {
	return &contentUseCaseImpl{uow: uow, reads: reads}
}

func (uc *contentUseCaseImpl) CreateEvent(ctx context.Context, req CreateEventRequest) (uuid.UUID, error) {
	ev, err := content.NewEvent(req.Titulo, req.Puntos, req.Ubicacion, req.Fecha, req.Hora, req.Descripcion)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Events().Create(ctx, tx.DB(), ev)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *contentUseCaseImpl) UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) error {
	current, err := uc.reads.EventByID(ctx, id)
	if err != nil {
		return markEventNotFound(err)
	}

	ev, err := content.NewEvent(
		patch.Coalesce(req.Titulo, current.Titulo),
		patch.Coalesce(req.Puntos, current.Puntos),
		patch.Coalesce(req.Ubicacion, current.Ubicacion),
		patch.Coalesce(req.Fecha, current.Fecha),
		patch.Coalesce(req.Hora, current.Hora),
		patch.Coalesce(req.Descripcion, current.Descripcion),
	)
	if err != nil {
		return err
	}
	ev.ID = id

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Events().Update(ctx, tx.DB(), ev)
	})
}

func (uc *contentUseCaseImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.reads.EventByID(ctx, id); err != nil {
		return markEventNotFound(err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Events().Delete(ctx, tx.DB(), id)
	})
}

func (uc *contentUseCaseImpl) CreateBlog(ctx context.Context, req CreateBlogRequest) (uuid.UUID, error) {
	b, err := content.NewBlog(req.Titulo, req.Categoria, req.Descripcion, req.Fecha, req.Icono)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Blogs().Create(ctx, tx.DB(), b)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *contentUseCaseImpl) UpdateBlog(ctx context.Context, id uuid.UUID, req UpdateBlogRequest) error {
	current, err := uc.reads.BlogByID(ctx, id)
	if err != nil {
		return markBlogNotFound(err)
	}

	b, err := content.NewBlog(
		patch.Coalesce(req.Titulo, current.Titulo),
		patch.Coalesce(req.Categoria, current.Categoria),
		patch.Coalesce(req.Descripcion, current.Descripcion),
		patch.Coalesce(req.Fecha, current.Fecha),
		patch.Coalesce(req.Icono, current.Icono),
	)
	if err != nil {
		return err
	}
	b.ID = id

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blogs().Update(ctx, tx.DB(), b)
	})
}

func (uc *contentUseCaseImpl) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.reads.BlogByID(ctx, id); err != nil {
		return markBlogNotFound(err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Blogs().Delete(ctx, tx.DB(), id)
	})
}

func markEventNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrEventNotFound)
	}
	return err
}

func markBlogNotFound(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrBlogNotFound)
	}
	return err
}
