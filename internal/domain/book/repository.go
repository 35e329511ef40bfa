package book

import "context"

type Repository interface {
	Create(ctx context.Context, b *Book) error
	Save(ctx context.Context, b *Book) error
	// GetByID only sees active (not soft-deleted) rows.
	GetByID(ctx context.Context, id uint64) (*Book, error)
	// GetByIDForUpdate locks the book row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Book, error)
	// GetAnyByIDForUpdate also sees soft-deleted rows; a retired book still
	// gets its copy back when an old loan is returned.
	GetAnyByIDForUpdate(ctx context.Context, id uint64) (*Book, error)
	GetByCode(ctx context.Context, code string) (*Book, error)
	GetByTitle(ctx context.Context, title string) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	// SoftDelete marks the row deleted and scrubs code/title so they can be reused.
	SoftDelete(ctx context.Context, b *Book) error
}
