package loanmock

import (
	"context"
	"errors"

	domain "library-circulation/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock satisfying loan.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDWithRefsFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListOpenFn             func(ctx context.Context) ([]domain.Loan, error)
	CountOpenByMemberIDFn  func(ctx context.Context, memberID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDWithRefs(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDWithRefsFn != nil {
		return m.GetByLoanIDWithRefsFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOpen(ctx context.Context) ([]domain.Loan, error) {
	if m.ListOpenFn != nil {
		return m.ListOpenFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountOpenByMemberID(ctx context.Context, memberID uint64) (int64, error) {
	if m.CountOpenByMemberIDFn != nil {
		return m.CountOpenByMemberIDFn(ctx, memberID)
	}
	return 0, errUnimplemented
}
