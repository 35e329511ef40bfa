package book

import (
	"context"
	"errors"

	"library-circulation/internal/domain/book"

	"gorm.io/gorm"
)

type Usecase struct{ repo book.Repository }

func NewUsecase(r book.Repository) *Usecase { return &Usecase{repo: r} }

type CreateBookInput struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type UpdateBookInput struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Stock  int    `json:"stock"`
}

func (u *Usecase) List(ctx context.Context) ([]book.Book, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*book.Book, error) {
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create registers a new title with a single acquired copy.
func (u *Usecase) Create(ctx context.Context, in CreateBookInput) (*book.Book, error) {
	if err := u.checkCodeFree(ctx, in.Code, 0); err != nil {
		return nil, err
	}
	if err := u.checkTitleFree(ctx, in.Title, 0); err != nil {
		return nil, err
	}

	b := &book.Book{Code: in.Code, Title: in.Title, Author: in.Author, Stock: 1}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateBookInput) (*book.Book, error) {
	b, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkCodeFree(ctx, in.Code, b.ID); err != nil {
		return nil, err
	}
	if err := u.checkTitleFree(ctx, in.Title, b.ID); err != nil {
		return nil, err
	}

	b.Code = in.Code
	b.Title = in.Title
	b.Author = in.Author
	b.Stock = in.Stock
	if err := u.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (u *Usecase) SoftDelete(ctx context.Context, id uint64) error {
	b, err := u.Get(ctx, id)
	if err != nil {
		return err
	}
	return u.repo.SoftDelete(ctx, b)
}

// checkCodeFree rejects a code held by another active book. selfID excludes
// the row being updated from its own conflict check.
func (u *Usecase) checkCodeFree(ctx context.Context, code string, selfID uint64) error {
	existing, err := u.repo.GetByCode(ctx, code)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return book.ErrCodeTaken
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}

func (u *Usecase) checkTitleFree(ctx context.Context, title string, selfID uint64) error {
	existing, err := u.repo.GetByTitle(ctx, title)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return book.ErrTitleTaken
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
