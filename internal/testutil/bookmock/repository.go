package bookmock

import (
	"context"
	"errors"

	domain "library-circulation/internal/domain/book"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("bookmock: method not implemented")

// Repo is a function-backed mock satisfying book.Repository. Fill in only the
// fields a test needs.
type Repo struct {
	CreateFn              func(ctx context.Context, b *domain.Book) error
	SaveFn                func(ctx context.Context, b *domain.Book) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.Book, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.Book, error)
	GetAnyByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Book, error)
	GetByCodeFn           func(ctx context.Context, code string) (*domain.Book, error)
	GetByTitleFn          func(ctx context.Context, title string) (*domain.Book, error)
	ListFn                func(ctx context.Context) ([]domain.Book, error)
	SoftDeleteFn          func(ctx context.Context, b *domain.Book) error
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Book) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetAnyByIDForUpdate(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetAnyByIDForUpdateFn != nil {
		return m.GetAnyByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Book, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByTitle(ctx context.Context, title string) (*domain.Book, error) {
	if m.GetByTitleFn != nil {
		return m.GetByTitleFn(ctx, title)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) SoftDelete(ctx context.Context, b *domain.Book) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, b)
	}
	return nil
}
