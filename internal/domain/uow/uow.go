package uow

import (
	"context"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"
)

// Repos bundles the repositories bound to one transaction. Every borrow/return
// touches up to three tables, so all three repos ride in the same unit.
type Repos struct {
	Books   book.Repository
	Members member.Repository
	Loans   loan.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
