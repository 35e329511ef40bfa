package mysql

import (
	"context"
	"time"

	bookDomain "library-circulation/internal/domain/book"

	"gorm.io/gorm"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// Save is primary-key addressed and unscoped: restoring stock on a retired
// book must still hit the row.
func (r *BookRepository) Save(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Unscoped().Save(b).Error
}

func (r *BookRepository) GetByID(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *BookRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *BookRepository) GetAnyByIDForUpdate(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := forUpdate(r.db.WithContext(ctx).Unscoped()).First(&out, id)
	return &out, res.Error
}

func (r *BookRepository) GetByCode(ctx context.Context, code string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *BookRepository) GetByTitle(ctx context.Context, title string) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).Where("title = ?", title).First(&out)
	return &out, res.Error
}

func (r *BookRepository) List(ctx context.Context) ([]bookDomain.Book, error) {
	var out []bookDomain.Book
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

// SoftDelete marks the row deleted and scrubs its identity columns so the
// code and title can be registered again on a fresh row.
func (r *BookRepository) SoftDelete(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Model(b).Updates(map[string]any{
		"code":       "deleted-book",
		"title":      "deleted",
		"author":     "deleted",
		"deleted_at": time.Now().UTC(),
	}).Error
}
