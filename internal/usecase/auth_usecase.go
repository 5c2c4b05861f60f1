package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/auth"
	"job-portal-backend/pkg/logger"
)

type authUsecase struct {
	users    domain.UserRepository
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthUsecase(users domain.UserRepository, tokens *auth.TokenManager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{users: users, tokens: tokens, validate: validate}
}

const duplicateAccount = "User with this email or phone already exists"

// normalizeEmail lower-cases an address; accounts are unique per address
// regardless of case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *authUsecase) RegisterCandidate(ctx context.Context, req *domain.CandidateSignup) (*domain.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Location = strings.TrimSpace(req.Location)
	if err := uc.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	if err := uc.checkAvailable(ctx, req.Email, req.Phone); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         domain.RoleCandidate,
		Location:     req.Location,
	}
	// The pre-check is racy; the unique constraint decides.
	if err := uc.users.Create(ctx, user); err != nil {
		if stderrors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict(duplicateAccount)
		}
		return nil, apperror.Internal(err)
	}
	logger.Log.Info("Candidate registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (uc *authUsecase) RegisterEmployer(ctx context.Context, req *domain.EmployerSignup) (*domain.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	if err := uc.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	if err := uc.checkAvailable(ctx, req.Email, req.Phone); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	name := req.Name
	if name == "" {
		name = req.CompanyName
	}
	user := &domain.User{
		Name:         name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         domain.RoleEmployer,
		CompanyName:  req.CompanyName,
		Industry:     req.Industry,
		CompanySize:  req.CompanySize,
	}
	profile := &domain.CompanyProfile{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Email:       req.Email,
		ContactName: req.Name,
	}
	if err := uc.users.CreateEmployer(ctx, user, profile); err != nil {
		if stderrors.Is(err, domain.ErrConflict) {
			return nil, apperror.Conflict(duplicateAccount)
		}
		return nil, apperror.Internal(err)
	}
	logger.Log.Info("Employer registered", zap.Int64("user_id", user.ID))
	return user, nil
}

func (uc *authUsecase) checkAvailable(ctx context.Context, email, phone string) error {
	exists, err := uc.users.ExistsByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return apperror.Internal(err)
	}
	if exists {
		return apperror.Conflict(duplicateAccount)
	}
	return nil
}

func (uc *authUsecase) Login(ctx context.Context, req *domain.LoginRequest, role string) (*domain.LoginResult, error) {
	req.Identifier = strings.TrimSpace(req.Identifier)
	if strings.Contains(req.Identifier, "@") {
		req.Identifier = normalizeEmail(req.Identifier)
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}

	user, err := uc.users.GetByIdentifierAndRole(ctx, req.Identifier, role)
	if err != nil {
		if stderrors.Is(err, domain.ErrNotFound) {
			return nil, apperror.AccountNotFound("No " + role + " account found with this email or phone")
		}
		return nil, apperror.Internal(err)
	}

	ok, err := auth.CheckPassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !ok {
		return nil, apperror.InvalidCredentials("Incorrect password")
	}

	token, expiresAt, err := uc.tokens.Issue(user.ID, user.Email, user.Phone, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (uc *authUsecase) Me(ctx context.Context, actor *domain.Actor) (*domain.User, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return user, nil
}
