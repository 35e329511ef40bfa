package lending

import (
	"context"
	"testing"
	"time"

	mysqlrepo "library-circulation/internal/adapter/repository/mysql"
	"library-circulation/internal/domain/book"
	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB runs the engine against a real transactional store. One
// connection only: every session of an in-memory sqlite database must share it.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&book.Book{}, &member.Member{}, &loan.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func newDBEngine(t *testing.T, db *gorm.DB, pol Policy) *Usecase {
	t.Helper()
	return NewUsecase(mysqlrepo.NewGormUoW(db), mysqlrepo.NewLoanRepository(db), pol)
}

func seed(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed %T: %v", r, err)
		}
	}
}

func TestEngine_StockConservation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seed(t, db,
		&member.Member{Code: "M001", Name: "Angga"},
		&member.Member{Code: "M002", Name: "Ferry"},
		&book.Book{Code: "JK-45", Title: "Harry Potter", Author: "J.K Rowling", Stock: 2},
	)

	u := newDBEngine(t, db, DefaultPolicy())
	books := mysqlrepo.NewBookRepository(db)
	loans := mysqlrepo.NewLoanRepository(db)

	l1, err := u.Borrow(ctx, BorrowInput{MemberID: 1, BookID: 1})
	require.NoError(t, err)
	l2, err := u.Borrow(ctx, BorrowInput{MemberID: 2, BookID: 1})
	require.NoError(t, err)

	// stock + open loans = total acquired copies, at every step
	b, err := books.GetByID(ctx, 1)
	require.NoError(t, err)
	open, err := loans.CountOpenByMemberID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Stock)
	assert.Equal(t, int64(1), open)

	_, err = u.Return(ctx, l1.LoanID)
	require.NoError(t, err)
	b, _ = books.GetByID(ctx, 1)
	assert.Equal(t, 1, b.Stock)

	_, err = u.Return(ctx, l2.LoanID)
	require.NoError(t, err)
	b, _ = books.GetByID(ctx, 1)
	assert.Equal(t, 2, b.Stock)
}

func TestEngine_ContendedBorrow_LastCopy(t *testing.T) {
	// two requests race for the last copy: the transaction boundary serializes
	// them, so exactly one wins and stock never goes negative
	db := openTestDB(t)
	ctx := context.Background()

	seed(t, db,
		&member.Member{Code: "M001", Name: "Angga"},
		&member.Member{Code: "M002", Name: "Ferry"},
		&book.Book{Code: "JK-45", Title: "Harry Potter", Stock: 1},
	)

	u := newDBEngine(t, db, DefaultPolicy())

	_, err1 := u.Borrow(ctx, BorrowInput{MemberID: 1, BookID: 1})
	_, err2 := u.Borrow(ctx, BorrowInput{MemberID: 2, BookID: 1})

	require.NoError(t, err1)
	require.ErrorIs(t, err2, book.ErrUnavailable)

	b, err := mysqlrepo.NewBookRepository(db).GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Stock)
}

func TestEngine_LimitReached_AgainstStore(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	seed(t, db,
		&member.Member{Code: "M001", Name: "Angga"},
		&book.Book{Code: "JK-45", Title: "Harry Potter", Stock: 1},
		&book.Book{Code: "SHR-1", Title: "A Study in Scarlet", Stock: 1},
	)

	u := newDBEngine(t, db, DefaultPolicy())

	_, err := u.Borrow(ctx, BorrowInput{MemberID: 1, BookID: 1})
	require.NoError(t, err)

	_, err = u.Borrow(ctx, BorrowInput{MemberID: 1, BookID: 2})
	require.ErrorIs(t, err, member.ErrLoanLimitReached)

	// the limit counts open loans, not lifetime loans
	var got loan.Loan
	require.NoError(t, db.Where("member_id = ?", 1).First(&got).Error)
	_, err = u.Return(ctx, got.LoanID)
	require.NoError(t, err)

	_, err = u.Borrow(ctx, BorrowInput{MemberID: 1, BookID: 2})
	require.NoError(t, err)
}

func TestEngine_LateReturn_PenaltyPersisted(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	seed(t, db,
		&member.Member{Code: "M001", Name: "Angga", LoanBookAmount: 1},
		&book.Book{Code: "JK-45", Title: "Harry Potter", Stock: 0},
		&loan.Loan{LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", MemberID: 1, BookID: 1,
			BorrowDate: now.Add(-8 * 24 * time.Hour)},
	)

	u := newDBEngine(t, db, DefaultPolicy())
	u.now = func() time.Time { return now }

	dto, err := u.Return(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.True(t, dto.PenaltyApplied)

	m, err := mysqlrepo.NewMemberRepository(db).GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, m.PenaltyEndDate)
	assert.True(t, m.PenaltyEndDate.Equal(now.Add(3*24*time.Hour)),
		"penalty end = %v, want %v", m.PenaltyEndDate, now.Add(3*24*time.Hour))
	assert.Equal(t, 0, m.LoanBookAmount)

	// doubled request: rejected, nothing moves again
	_, err = u.Return(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	require.ErrorIs(t, err, loan.ErrAlreadyReturned)
	b, _ := mysqlrepo.NewBookRepository(db).GetByID(ctx, 1)
	assert.Equal(t, 1, b.Stock)
}
