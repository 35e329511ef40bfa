package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDWithRefs loads the loan together with its book and member snapshots.
	GetByLoanIDWithRefs(ctx context.Context, loanID string) (*Loan, error)
	ListOpen(ctx context.Context) ([]Loan, error)
	CountOpenByMemberID(ctx context.Context, memberID uint64) (int64, error)
}
