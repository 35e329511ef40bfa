package mysql

import (
	"context"
	"time"

	memberDomain "library-circulation/internal/domain/member"

	"gorm.io/gorm"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepository) Save(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberRepository) GetByID(ctx context.Context, id uint64) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *MemberRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *MemberRepository) GetByCode(ctx context.Context, code string) (*memberDomain.Member, error) {
	var out memberDomain.Member
	res := r.db.WithContext(ctx).Where("code = ?", code).First(&out)
	return &out, res.Error
}

func (r *MemberRepository) List(ctx context.Context) ([]memberDomain.Member, error) {
	var out []memberDomain.Member
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}

func (r *MemberRepository) SoftDelete(ctx context.Context, m *memberDomain.Member) error {
	return r.db.WithContext(ctx).Model(m).Updates(map[string]any{
		"code":       "deleted",
		"name":       "deleted",
		"deleted_at": time.Now().UTC(),
	}).Error
}
