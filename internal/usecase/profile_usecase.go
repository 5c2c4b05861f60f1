package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, userRepo: userRepo, validate: validate}
}

func (uc *profileUsecase) Get(ctx context.Context, actor *domain.Actor, userID int64) (*domain.Profile, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	p, err := uc.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return p, nil
}

func (uc *profileUsecase) Update(ctx context.Context, actor *domain.Actor, userID int64, upd *domain.ProfileUpdate) (*domain.Profile, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	upd.Name = strings.TrimSpace(upd.Name)
	upd.Email = normalizeEmail(upd.Email)
	upd.Phone = strings.TrimSpace(upd.Phone)
	upd.Location = strings.TrimSpace(upd.Location)
	if err := uc.validate.Struct(upd); err != nil {
		return nil, invalid(err)
	}

	if err := uc.profileRepo.Update(ctx, userID, upd); err != nil {
		switch {
		case stderrors.Is(err, domain.ErrConflict):
			return nil, apperror.Conflict("Email or phone is already used by another account")
		case stderrors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("User not found")
		default:
			return nil, apperror.Internal(err)
		}
	}
	return uc.Get(ctx, actor, userID)
}

func (uc *profileUsecase) UploadResume(ctx context.Context, actor *domain.Actor, userID int64, path string) (*domain.User, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, apperror.BadRequest("resume file is required")
	}
	if err := uc.userRepo.UpdateResume(ctx, userID, path); err != nil {
		return nil, storeError(err, "User not found")
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return user, nil
}

func (uc *profileUsecase) CandidateSummary(ctx context.Context, candidateID int64) (*domain.CandidateSummary, error) {
	user, err := uc.userRepo.GetByID(ctx, candidateID)
	if err != nil && !stderrors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if user == nil || user.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}
	return &domain.CandidateSummary{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		Location:   user.Location,
		ProfilePic: user.ProfilePic,
		ResumeLink: user.ResumeLink,
	}, nil
}
