package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("member not found")
	ErrPenalized        = errors.New("member is currently penalized")
	ErrLoanLimitReached = errors.New("member already holds the maximum number of open loans")
	ErrCodeTaken        = errors.New("code is already taken")
	ErrHasOpenLoans     = errors.New("member is currently borrowing books")
)

type Member struct {
	ID   uint64 `gorm:"primaryKey;column:id" json:"id"`
	Code string `gorm:"size:64;not null;index:idx_members_code" json:"code"`
	Name string `gorm:"size:255;not null" json:"name"`
	// LoanBookAmount is a denormalized count of open loans. It is written only
	// inside the same transaction as the Loan row it reflects; the open-Loan
	// count remains the source of truth.
	LoanBookAmount int            `gorm:"not null;default:0" json:"loan_book_amount"`
	PenaltyEndDate *time.Time     `json:"penalty_end_date"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

// Penalized reports whether the member is inside an open penalty window at t.
// An elapsed penalty_end_date is kept on the row but no longer blocks borrowing.
func (m *Member) Penalized(t time.Time) bool {
	return m.PenaltyEndDate != nil && t.Before(*m.PenaltyEndDate)
}
