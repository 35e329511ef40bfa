package loan

import (
	"errors"
	"time"

	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/member"
)

var (
	ErrNotFound        = errors.New("borrowed book record not found")
	ErrAlreadyReturned = errors.New("book already returned")
)

// Loan is one member holding one copy of one book. Rows are never deleted;
// a loan is open until Return closes it exactly once.
type Loan struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex), the handle callers use.
	LoanID     string    `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	MemberID   uint64    `gorm:"not null;index:idx_loans_member_open,priority:1" json:"member_id"`
	BookID     uint64    `gorm:"not null;index:idx_loans_book" json:"book_id"`
	BorrowDate time.Time `gorm:"not null" json:"borrow_date"`
	// ReturnDate is set exactly once, together with Returned. Open iff
	// Returned == false iff ReturnDate == nil; the two never disagree.
	ReturnDate *time.Time `json:"return_date"`
	Returned   bool       `gorm:"not null;default:false;index:idx_loans_member_open,priority:2" json:"returned"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Book   *book.Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Member *member.Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Loan) TableName() string { return "loans" }

// Open reports whether the book is still out.
func (l *Loan) Open() bool { return !l.Returned && l.ReturnDate == nil }
