package lending

import (
	"context"
	"errors"
	"math"
	"time"

	"library-circulation/internal/config"
	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"
	"library-circulation/internal/domain/uow"
	"library-circulation/pkg/id"

	"gorm.io/gorm"
)

// Policy is the circulation rule set. All three values come from config;
// the loan limit is deliberately a single knob, never a literal in the checks.
type Policy struct {
	MaxOpenLoans   int
	LoanPeriodDays int
	PenaltyDays    int
}

func DefaultPolicy() Policy {
	return Policy{
		MaxOpenLoans:   config.DefaultMaxOpenLoans,
		LoanPeriodDays: config.DefaultLoanPeriodDays,
		PenaltyDays:    config.DefaultPenaltyDays,
	}
}

// Usecase is the lending engine: borrow and return run as one transaction
// spanning the loan row, the book's stock, and the member's penalty window.
type Usecase struct {
	uow   uow.UnitOfWork
	loans loan.Repository // read paths outside a transaction
	pol   Policy

	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, loans loan.Repository, pol Policy) *Usecase {
	return &Usecase{uow: tx, loans: loans, pol: pol, now: time.Now}
}

// Borrow hands one copy of a book to a member. Checks run in a fixed order,
// first failure wins: member exists, member not penalized, member below the
// loan limit, book available. On success the loan row, the stock decrement
// and the member's open-loan counter commit together or not at all.
func (u *Usecase) Borrow(ctx context.Context, in BorrowInput) (*LoanDTO, error) {
	var dto *LoanDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		now := u.now().UTC()

		m, err := r.Members.GetByIDForUpdate(ctx, in.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return member.ErrNotFound
			}
			return err
		}
		if m.Penalized(now) {
			return member.ErrPenalized
		}

		open, err := r.Loans.CountOpenByMemberID(ctx, m.ID)
		if err != nil {
			return err
		}
		if open >= int64(u.pol.MaxOpenLoans) {
			return member.ErrLoanLimitReached
		}

		b, err := r.Books.GetByIDForUpdate(ctx, in.BookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrUnavailable
			}
			return err
		}
		if !b.Available() {
			return book.ErrUnavailable
		}

		l := &loan.Loan{
			LoanID:     id.NewID32(),
			MemberID:   m.ID,
			BookID:     b.ID,
			BorrowDate: now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		b.Stock--
		if err := r.Books.Save(ctx, b); err != nil {
			return err
		}

		// counter is derived from the authoritative open-loan count, inside
		// the same transaction as the loan row it reflects
		m.LoanBookAmount = int(open) + 1
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}

		d := toLoanDTO(l)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Return closes an open loan. The loan row is locked before any check so a
// doubled request fails with ErrAlreadyReturned instead of restoring stock
// twice. A return past the loan period puts the member in a penalty window
// derived from the server clock, overwriting any earlier window.
func (u *Usecase) Return(ctx context.Context, loanID string) (*ReturnDTO, error) {
	var dto *ReturnDTO

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !l.Open() {
			return loan.ErrAlreadyReturned
		}

		now := u.now().UTC()
		late := borrowDurationDays(l.BorrowDate, now) > u.pol.LoanPeriodDays

		m, err := r.Members.GetByIDForUpdate(ctx, l.MemberID)
		if err != nil {
			return err
		}

		var penaltyEnd *time.Time
		if late {
			pe := now.Add(time.Duration(u.pol.PenaltyDays) * 24 * time.Hour)
			penaltyEnd = &pe
			m.PenaltyEndDate = &pe
		}

		ret := now
		l.ReturnDate = &ret
		l.Returned = true
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		b, err := r.Books.GetAnyByIDForUpdate(ctx, l.BookID)
		if err != nil {
			return err
		}
		b.Stock++
		if err := r.Books.Save(ctx, b); err != nil {
			return err
		}

		open, err := r.Loans.CountOpenByMemberID(ctx, m.ID)
		if err != nil {
			return err
		}
		m.LoanBookAmount = int(open)
		if err := r.Members.Save(ctx, m); err != nil {
			return err
		}

		dto = &ReturnDTO{
			LoanDTO:        toLoanDTO(l),
			PenaltyApplied: late,
			PenaltyEndDate: penaltyEnd,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// ListOpenLoans returns every loan still out, joined with its book and member.
func (u *Usecase) ListOpenLoans(ctx context.Context) ([]LoanView, error) {
	loans, err := u.loans.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanView, 0, len(loans))
	for i := range loans {
		out = append(out, toLoanView(&loans[i]))
	}
	return out, nil
}

func (u *Usecase) GetLoan(ctx context.Context, loanID string) (*LoanView, error) {
	l, err := u.loans.GetByLoanIDWithRefs(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	v := toLoanView(l)
	return &v, nil
}

// borrowDurationDays is the elapsed borrow time in days, rounded up. The
// ceiling matters: a loan returned at exactly 7*24h counts as 7 days and is
// on time, one second later counts as 8 and is late.
func borrowDurationDays(borrowedAt, returnedAt time.Time) int {
	return int(math.Ceil(returnedAt.Sub(borrowedAt).Hours() / 24))
}
