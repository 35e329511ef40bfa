package lending

import (
	"time"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"
)

type BorrowInput struct {
	MemberID uint64 `json:"member_id"`
	BookID   uint64 `json:"book_id"`
}

type LoanDTO struct {
	LoanID     string     `json:"loan_id"`
	MemberID   uint64     `json:"member_id"`
	BookID     uint64     `json:"book_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	ReturnDate *time.Time `json:"return_date"`
	Returned   bool       `json:"returned"`
}

// ReturnDTO annotates the closed loan with the penalty outcome so callers
// don't have to re-read the member row.
type ReturnDTO struct {
	LoanDTO
	PenaltyApplied bool       `json:"penalty_applied"`
	PenaltyEndDate *time.Time `json:"penalty_end_date,omitempty"`
}

// LoanView is a loan joined with live book and member snapshots; retired
// (soft-deleted) rows still appear so history stays readable.
type LoanView struct {
	LoanDTO
	Book   *book.Book     `json:"book,omitempty"`
	Member *member.Member `json:"member,omitempty"`
}

func toLoanDTO(l *loan.Loan) LoanDTO {
	return LoanDTO{
		LoanID:     l.LoanID,
		MemberID:   l.MemberID,
		BookID:     l.BookID,
		BorrowDate: l.BorrowDate,
		ReturnDate: l.ReturnDate,
		Returned:   l.Returned,
	}
}

func toLoanView(l *loan.Loan) LoanView {
	return LoanView{
		LoanDTO: toLoanDTO(l),
		Book:    l.Book,
		Member:  l.Member,
	}
}
