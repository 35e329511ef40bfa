package membermock

import (
	"context"
	"errors"

	domain "library-circulation/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("membermock: method not implemented")

// Repo is a function-backed mock satisfying member.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, m *domain.Member) error
	SaveFn             func(ctx context.Context, m *domain.Member) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Member, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Member, error)
	GetByCodeFn        func(ctx context.Context, code string) (*domain.Member, error)
	ListFn             func(ctx context.Context) ([]domain.Member, error)
	SoftDeleteFn       func(ctx context.Context, m *domain.Member) error
}

func (m *Repo) Create(ctx context.Context, mm *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, mm)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, mm *domain.Member) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, mm)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Member, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Member, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Member, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Member, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) SoftDelete(ctx context.Context, mm *domain.Member) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, mm)
	}
	return nil
}
