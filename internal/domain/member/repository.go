package member

import "context"

type Repository interface {
	Create(ctx context.Context, m *Member) error
	Save(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uint64) (*Member, error)
	// GetByIDForUpdate locks the member row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Member, error)
	GetByCode(ctx context.Context, code string) (*Member, error)
	List(ctx context.Context) ([]Member, error)
	SoftDelete(ctx context.Context, m *Member) error
}
