package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type companyProfileUsecase struct {
	repo     domain.CompanyProfileRepository
	validate *validator.Validate
}

func NewCompanyProfileUsecase(repo domain.CompanyProfileRepository, validate *validator.Validate) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{repo: repo, validate: validate}
}

func (uc *companyProfileUsecase) List(ctx context.Context) ([]domain.CompanyProfile, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func (uc *companyProfileUsecase) Get(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Company profile not found")
	}
	return p, nil
}

// Update replaces the editable fields of the actor's own company profile.
func (uc *companyProfileUsecase) Update(ctx context.Context, actor *domain.Actor, userID int64, upd *domain.CompanyProfileUpdate) (*domain.CompanyProfile, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	upd.CompanyName = strings.TrimSpace(upd.CompanyName)
	if err := uc.validate.Struct(upd); err != nil {
		return nil, invalid(err)
	}
	updated, err := uc.repo.Update(ctx, userID, upd)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !updated {
		return nil, apperror.NotFound("Company profile not found")
	}
	return uc.Get(ctx, userID)
}

func (uc *companyProfileUsecase) ListEmployers(ctx context.Context) ([]domain.EmployerSummary, error) {
	list, err := uc.repo.ListEmployers(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}
