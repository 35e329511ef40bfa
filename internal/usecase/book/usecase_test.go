package book

import (
	"context"
	"errors"
	"testing"

	domain "library-circulation/internal/domain/book"
	"library-circulation/internal/testutil/bookmock"

	"gorm.io/gorm"
)

func notFound(context.Context, string) (*domain.Book, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestCreate_Success(t *testing.T) {
	var created *domain.Book
	uc := NewUsecase(&bookmock.Repo{
		GetByCodeFn:  notFound,
		GetByTitleFn: notFound,
		CreateFn: func(_ context.Context, b *domain.Book) error {
			b.ID = 1
			created = b
			return nil
		},
	})

	b, err := uc.Create(context.Background(), CreateBookInput{
		Code: "JK-45", Title: "Harry Potter", Author: "J.K Rowling",
	})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if created == nil || b.Code != "JK-45" {
		t.Fatalf("unexpected book: %+v", b)
	}
	if b.Stock != 1 {
		t.Fatalf("new book stock = %d, want 1", b.Stock)
	}
}

func TestCreate_CodeTaken(t *testing.T) {
	uc := NewUsecase(&bookmock.Repo{
		GetByCodeFn: func(context.Context, string) (*domain.Book, error) {
			return &domain.Book{ID: 7, Code: "JK-45"}, nil
		},
	})

	_, err := uc.Create(context.Background(), CreateBookInput{Code: "JK-45", Title: "X"})
	if !errors.Is(err, domain.ErrCodeTaken) {
		t.Fatalf("want ErrCodeTaken, got %v", err)
	}
}

func TestCreate_TitleTaken(t *testing.T) {
	uc := NewUsecase(&bookmock.Repo{
		GetByCodeFn: notFound,
		GetByTitleFn: func(context.Context, string) (*domain.Book, error) {
			return &domain.Book{ID: 7, Title: "Harry Potter"}, nil
		},
	})

	_, err := uc.Create(context.Background(), CreateBookInput{Code: "NEW-1", Title: "Harry Potter"})
	if !errors.Is(err, domain.ErrTitleTaken) {
		t.Fatalf("want ErrTitleTaken, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(&bookmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Book, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	_, err := uc.Get(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUpdate_KeepsOwnCodeAndTitle(t *testing.T) {
	// re-submitting the book's current code/title must not conflict with itself
	self := &domain.Book{ID: 3, Code: "JK-45", Title: "Harry Potter", Stock: 2}
	var saved *domain.Book
	uc := NewUsecase(&bookmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Book, error) { return self, nil },
		GetByCodeFn: func(context.Context, string) (*domain.Book, error) {
			return self, nil
		},
		GetByTitleFn: func(context.Context, string) (*domain.Book, error) {
			return self, nil
		},
		SaveFn: func(_ context.Context, b *domain.Book) error {
			saved = b
			return nil
		},
	})

	b, err := uc.Update(context.Background(), 3, UpdateBookInput{
		Code: "JK-45", Title: "Harry Potter", Author: "J.K Rowling", Stock: 5,
	})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if saved == nil || b.Stock != 5 {
		t.Fatalf("unexpected book after update: %+v", b)
	}
}

func TestUpdate_CodeHeldByOther(t *testing.T) {
	uc := NewUsecase(&bookmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Book, error) {
			return &domain.Book{ID: 3, Code: "OLD-1", Title: "Old"}, nil
		},
		GetByCodeFn: func(context.Context, string) (*domain.Book, error) {
			return &domain.Book{ID: 9, Code: "JK-45"}, nil
		},
	})

	_, err := uc.Update(context.Background(), 3, UpdateBookInput{Code: "JK-45", Title: "Old"})
	if !errors.Is(err, domain.ErrCodeTaken) {
		t.Fatalf("want ErrCodeTaken, got %v", err)
	}
}

func TestSoftDelete(t *testing.T) {
	deleted := false
	uc := NewUsecase(&bookmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Book, error) {
			return &domain.Book{ID: 3, Code: "JK-45"}, nil
		},
		SoftDeleteFn: func(context.Context, *domain.Book) error {
			deleted = true
			return nil
		},
	})

	if err := uc.SoftDelete(context.Background(), 3); err != nil {
		t.Fatalf("SoftDelete err: %v", err)
	}
	if !deleted {
		t.Fatal("repo SoftDelete was not called")
	}
}

func TestSoftDelete_NotFound(t *testing.T) {
	uc := NewUsecase(&bookmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domain.Book, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})

	if err := uc.SoftDelete(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
