package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type notificationUsecase struct {
	repo     domain.NotificationRepository
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewNotificationUsecase(repo domain.NotificationRepository, userRepo domain.UserRepository, validate *validator.Validate) domain.NotificationUsecase {
	return &notificationUsecase{repo: repo, userRepo: userRepo, validate: validate}
}

func (uc *notificationUsecase) List(ctx context.Context, actor *domain.Actor, userID int64) ([]domain.Notification, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}

func (uc *notificationUsecase) UnreadCount(ctx context.Context, actor *domain.Actor, userID int64) (int64, error) {
	if err := requireOwner(actor, userID); err != nil {
		return 0, err
	}
	n, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, actor *domain.Actor, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	ok, err := uc.repo.MarkRead(ctx, id, actor.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Notification not found")
	}
	return nil
}

func (uc *notificationUsecase) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	ok, err := uc.repo.Delete(ctx, id, actor.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !ok {
		return apperror.NotFound("Notification not found")
	}
	return nil
}

func (uc *notificationUsecase) Send(ctx context.Context, actor *domain.Actor, in *domain.NotificationInput) (*domain.Notification, error) {
	if err := requireRole(actor, "Only employers or admins can create notifications", domain.RoleEmployer, domain.RoleAdmin); err != nil {
		return nil, err
	}
	in.Message = strings.TrimSpace(in.Message)
	if err := uc.validate.Struct(in); err != nil {
		return nil, invalid(err)
	}
	if _, err := uc.userRepo.GetByID(ctx, in.UserID); err != nil {
		return nil, storeError(err, "User not found")
	}
	n, err := uc.Notify(ctx, in.UserID, in.Message, in.Type)
	if err != nil {
		return nil, storeError(err, "User not found")
	}
	return n, nil
}

// Notify returns raw repository errors; event subscribers only log them.
func (uc *notificationUsecase) Notify(ctx context.Context, userID int64, message, kind string) (*domain.Notification, error) {
	if kind == "" {
		kind = domain.NotificationInfo
	}
	n := &domain.Notification{UserID: userID, Message: message, Type: kind}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}
