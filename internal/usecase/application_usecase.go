package usecase

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
)

type applicationUsecase struct {
	appRepo   domain.ApplicationRepository
	jobRepo   domain.JobRepository
	publisher domain.EventPublisher
	validate  *validator.Validate
	now       func() time.Time
}

// NewApplicationUsecase creates a new application usecase. publisher may be nil.
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	publisher domain.EventPublisher,
	validate *validator.Validate,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		publisher: publisher,
		validate:  validate,
		now:       time.Now,
	}
}

const alreadyApplied = "You have already applied to this job"

func (uc *applicationUsecase) Apply(ctx context.Context, actor *domain.Actor, jobID int64) (*domain.JobApplication, error) {
	if err := requireRole(actor, "Only candidates can apply for jobs", domain.RoleCandidate); err != nil {
		return nil, err
	}
	return uc.submit(ctx, &domain.JobApplication{
		UserID: actor.ID,
		JobID:  jobID,
		Status: domain.ApplicationPending,
	})
}

func (uc *applicationUsecase) ApplyDetailed(ctx context.Context, actor *domain.Actor, req *domain.ApplyRequest) (*domain.JobApplication, error) {
	if err := requireRole(actor, "Only candidates can apply for jobs", domain.RoleCandidate); err != nil {
		return nil, err
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, invalid(err)
	}
	if req.UserID != actor.ID {
		return nil, apperror.Forbidden("Unauthorized: User ID mismatch")
	}
	return uc.submit(ctx, &domain.JobApplication{
		UserID:      actor.ID,
		JobID:       req.JobID,
		Status:      domain.ApplicationApplied,
		CoverLetter: req.CoverLetter,
		ResumeLink:  req.ResumeLink,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
	})
}

// submit checks, in order: job is active, deadline not passed, no prior
// application. It then stores the row and announces it.
func (uc *applicationUsecase) submit(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	if err != nil && !stderrors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if job == nil || job.Status != domain.JobStatusActive {
		return nil, apperror.NotFound("Job not found or not active")
	}
	if job.DeadlinePassed(uc.now()) {
		return nil, apperror.DeadlinePassed("Job application deadline has passed")
	}

	exists, err := uc.appRepo.Exists(ctx, app.UserID, app.JobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.AlreadyApplied(alreadyApplied)
	}

	if err := uc.appRepo.Create(ctx, app); err != nil {
		switch {
		case stderrors.Is(err, domain.ErrConflict):
			return nil, apperror.AlreadyApplied(alreadyApplied)
		case stderrors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Job not found or not active")
		default:
			return nil, apperror.Internal(err)
		}
	}

	metrics.ApplicationsSubmitted.Inc()
	logger.Log.Info("Application submitted",
		zap.Int64("application_id", app.ID), zap.Int64("job_id", app.JobID), zap.Int64("user_id", app.UserID))

	if uc.publisher != nil {
		uc.publisher.Publish(domain.TopicApplicationSubmitted, ctx, domain.ApplicationSubmitted{Application: app, Job: job})
	}
	return app, nil
}

func (uc *applicationUsecase) Withdraw(ctx context.Context, actor *domain.Actor, jobID int64) error {
	if err := requireRole(actor, "Only candidates can withdraw applications", domain.RoleCandidate); err != nil {
		return err
	}
	deleted, err := uc.appRepo.Delete(ctx, actor.ID, jobID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("Application not found")
	}
	return nil
}

// SetStatus lets any authenticated caller move an application to any of
// the six statuses.
func (uc *applicationUsecase) SetStatus(ctx context.Context, actor *domain.Actor, id int64, status string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !lo.Contains(domain.ApplicationStatuses, status) {
		return apperror.BadRequest("Invalid status value")
	}
	updated, err := uc.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return apperror.Internal(err)
	}
	if !updated {
		return apperror.NotFound("Application not found")
	}
	logger.Log.Info("Application status changed",
		zap.Int64("application_id", id), zap.String("status", status), zap.Int64("actor_id", actor.ID))
	return nil
}

func (uc *applicationUsecase) ListForJob(ctx context.Context, actor *domain.Actor, jobID int64) ([]domain.JobApplication, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil && !stderrors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if job == nil || job.PostedBy != actor.ID {
		return nil, apperror.NotFound("Job not found or not authorized")
	}

	apps, err := uc.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(apps) == 0 {
		return nil, apperror.NotFound("No applications found for this job")
	}
	return apps, nil
}

func (uc *applicationUsecase) AppliedJobs(ctx context.Context, actor *domain.Actor, userID int64) ([]domain.AppliedJob, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	jobs, err := uc.appRepo.ListAppliedJobs(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
