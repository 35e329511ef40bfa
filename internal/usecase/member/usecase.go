package member

import (
	"context"
	"errors"

	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/member"

	"gorm.io/gorm"
)

type Usecase struct {
	repo  member.Repository
	loans loan.Repository
}

func NewUsecase(r member.Repository, loans loan.Repository) *Usecase {
	return &Usecase{repo: r, loans: loans}
}

type CreateMemberInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type UpdateMemberInput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (u *Usecase) List(ctx context.Context) ([]member.Member, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*member.Member, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateMemberInput) (*member.Member, error) {
	if err := u.checkCodeFree(ctx, in.Code, 0); err != nil {
		return nil, err
	}

	m := &member.Member{Code: in.Code, Name: in.Name}
	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateMemberInput) (*member.Member, error) {
	m, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkCodeFree(ctx, in.Code, m.ID); err != nil {
		return nil, err
	}

	m.Code = in.Code
	m.Name = in.Name
	if err := u.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// SoftDelete refuses while the member still holds open loans; the open-loan
// count is the source of truth, not the cached counter.
func (u *Usecase) SoftDelete(ctx context.Context, id uint64) error {
	m, err := u.Get(ctx, id)
	if err != nil {
		return err
	}

	open, err := u.loans.CountOpenByMemberID(ctx, m.ID)
	if err != nil {
		return err
	}
	if open > 0 {
		return member.ErrHasOpenLoans
	}

	return u.repo.SoftDelete(ctx, m)
}

func (u *Usecase) checkCodeFree(ctx context.Context, code string, selfID uint64) error {
	existing, err := u.repo.GetByCode(ctx, code)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return member.ErrCodeTaken
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return err
	}
}
