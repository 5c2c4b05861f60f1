package usecase

import (
	stderrors "errors"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"
)

// requireActor fails when the request carries no verified identity.
func requireActor(actor *domain.Actor) error {
	if actor == nil || actor.ID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	return nil
}

// requireRole is the creation-time role gate.
func requireRole(actor *domain.Actor, message string, roles ...string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.HasRole(roles...) {
		return apperror.Forbidden(message)
	}
	return nil
}

// requireOwner checks that the actor is the identity owning the resource.
func requireOwner(actor *domain.Actor, ownerID int64) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor.ID != ownerID {
		return apperror.Forbidden("Unauthorized")
	}
	return nil
}

func invalid(err error) error {
	return apperror.BadRequest(validation.Summary(err))
}

// storeError maps repository failures, using notFound for missing rows.
func storeError(err error, notFound string) error {
	switch {
	case stderrors.Is(err, domain.ErrNotFound):
		return apperror.NotFound(notFound)
	case stderrors.Is(err, domain.ErrConflict):
		return apperror.Conflict("Resource already exists")
	default:
		return apperror.Internal(err)
	}
}
