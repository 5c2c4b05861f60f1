package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
)

type messageUsecase struct {
	repo      domain.MessageRepository
	userRepo  domain.UserRepository
	publisher domain.EventPublisher
	validate  *validator.Validate
}

func NewMessageUsecase(repo domain.MessageRepository, userRepo domain.UserRepository, publisher domain.EventPublisher, validate *validator.Validate) domain.MessageUsecase {
	return &messageUsecase{repo: repo, userRepo: userRepo, publisher: publisher, validate: validate}
}

func (uc *messageUsecase) Send(ctx context.Context, actor *domain.Actor, in *domain.MessageInput) (*domain.Message, error) {
	if err := requireRole(actor, "Only employers can send messages", domain.RoleEmployer); err != nil {
		return nil, err
	}
	in.Message = strings.TrimSpace(in.Message)
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest("Candidate ID and message are required")
	}

	candidate, err := uc.userRepo.GetByID(ctx, in.CandidateID)
	if err != nil && !stderrors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if candidate == nil || candidate.Role != domain.RoleCandidate {
		return nil, apperror.NotFound("Candidate not found")
	}

	msg := &domain.Message{SenderID: actor.ID, ReceiverID: candidate.ID, Content: in.Message}
	if err := uc.repo.Create(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}

	if uc.publisher != nil {
		sender := actor.Email
		if u, err := uc.userRepo.GetByID(ctx, actor.ID); err == nil {
			sender = u.CompanyName
			if sender == "" {
				sender = u.Name
			}
		}
		uc.publisher.Publish(domain.TopicMessageSent, ctx, domain.MessageSent{Message: msg, SenderName: sender})
	}
	return msg, nil
}

func (uc *messageUsecase) List(ctx context.Context, actor *domain.Actor) ([]domain.Message, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return list, nil
}
