package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
)

const defaultSalaryType = "Yearly"

type jobUsecase struct {
	jobRepo  domain.JobRepository
	appRepo  domain.ApplicationRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewJobUsecase(jobRepo domain.JobRepository, appRepo domain.ApplicationRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, appRepo: appRepo, validate: validate, now: time.Now}
}

func (uc *jobUsecase) ListActive(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := uc.jobRepo.ListActive(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(jobs) == 0 {
		return nil, apperror.NotFound("No active jobs found")
	}
	return jobs, nil
}

// GetByID counts one view per successful fetch.
func (uc *jobUsecase) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := uc.jobRepo.FetchActiveAndCountView(ctx, id)
	if err != nil {
		return nil, storeError(err, "Job not found")
	}
	return job, nil
}

func (uc *jobUsecase) Create(ctx context.Context, actor *domain.Actor, in *domain.JobInput, logo string) (*domain.Job, error) {
	if err := requireRole(actor, "Only employers can post jobs", domain.RoleEmployer); err != nil {
		return nil, err
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, invalid(err)
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return nil, apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}
	deadline, ok := parseDeadline(in.ApplicationDeadline)
	if !ok {
		return nil, apperror.BadRequest("application_deadline must be a date (YYYY-MM-DD) or an RFC 3339 timestamp")
	}
	if deadline != nil && deadline.Before(uc.now()) {
		return nil, apperror.BadRequest("Application deadline cannot be in the past")
	}

	salaryType := strings.TrimSpace(in.SalaryType)
	if salaryType == "" {
		salaryType = defaultSalaryType
	}

	job := &domain.Job{
		Title:               strings.TrimSpace(in.Title),
		JobType:             strings.TrimSpace(in.JobType),
		Description:         in.Description,
		SalaryMin:           in.SalaryMin,
		SalaryMax:           in.SalaryMax,
		SalaryType:          salaryType,
		Company:             strings.TrimSpace(in.Company),
		Location:            in.Location,
		Experience:          in.Experience,
		WorkLocation:        in.WorkLocation,
		ApplicationDeadline: deadline,
		Skills:              splitSkills(in.Skills),
		CompanySize:         in.CompanySize,
		Benefits:            in.Benefits,
		Category:            in.Category,
		Requirements:        in.Requirements,
		ApplyURL:            in.ApplyURL,
		PostedBy:            actor.ID,
		Logo:                logo,
		Status:              domain.JobStatusActive,
		Views:               0,
	}
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}

	metrics.JobsPosted.Inc()
	logger.Log.Info("Job posted", zap.Int64("job_id", job.ID), zap.Int64("posted_by", actor.ID))
	return job, nil
}

// splitSkills turns the comma separated form field into a list.
func splitSkills(raw string) []string {
	parts := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Uniq(lo.Compact(parts))
}

func (uc *jobUsecase) Delete(ctx context.Context, actor *domain.Actor, id int64) error {
	if err := requireRole(actor, "Only employers can delete jobs", domain.RoleEmployer); err != nil {
		return err
	}
	deleted, err := uc.jobRepo.DeleteOwned(ctx, id, actor.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("Job not found or you are not its owner")
	}
	logger.Log.Info("Job deleted", zap.Int64("job_id", id), zap.Int64("owner_id", actor.ID))
	return nil
}

func (uc *jobUsecase) ToggleSave(ctx context.Context, actor *domain.Actor, id int64) (bool, error) {
	if err := requireRole(actor, "Only candidates can save jobs", domain.RoleCandidate); err != nil {
		return false, err
	}
	removed, err := uc.jobRepo.Unsave(ctx, actor.ID, id)
	if err != nil {
		return false, apperror.Internal(err)
	}
	if removed {
		return false, nil
	}
	if err := uc.jobRepo.Save(ctx, actor.ID, id); err != nil {
		return false, storeError(err, "Job not found")
	}
	return true, nil
}

func (uc *jobUsecase) Unsave(ctx context.Context, actor *domain.Actor, id int64) error {
	if err := requireRole(actor, "Only candidates can save jobs", domain.RoleCandidate); err != nil {
		return err
	}
	// Unsaving a job that is not saved is a no-op.
	if _, err := uc.jobRepo.Unsave(ctx, actor.ID, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *jobUsecase) Report(ctx context.Context, actor *domain.Actor, id int64, in *domain.ReportInput) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := uc.validate.Struct(in); err != nil {
		return apperror.BadRequest("Reason is required")
	}
	report := &domain.JobReport{
		UserID:  actor.ID,
		JobID:   id,
		Reason:  strings.TrimSpace(in.Reason),
		Details: in.Details,
	}
	if err := uc.jobRepo.Report(ctx, report); err != nil {
		return storeError(err, "Job not found")
	}
	return nil
}

func (uc *jobUsecase) Status(ctx context.Context, actor *domain.Actor, id int64) (*domain.JobStatus, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	var (
		st  domain.JobStatus
		err error
	)
	if st.IsSaved, err = uc.jobRepo.IsSaved(ctx, actor.ID, id); err != nil {
		return nil, apperror.Internal(err)
	}
	if st.HasApplied, err = uc.appRepo.Exists(ctx, actor.ID, id); err != nil {
		return nil, apperror.Internal(err)
	}
	if st.IsReported, err = uc.jobRepo.IsReported(ctx, actor.ID, id); err != nil {
		return nil, apperror.Internal(err)
	}
	return &st, nil
}

func (uc *jobUsecase) ListByOwner(ctx context.Context, actor *domain.Actor, ownerID int64) ([]domain.Job, error) {
	if err := requireOwner(actor, ownerID); err != nil {
		return nil, err
	}
	jobs, err := uc.jobRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(jobs) == 0 {
		return nil, apperror.NotFound("No jobs found for this user")
	}
	return jobs, nil
}

func (uc *jobUsecase) SavedJobs(ctx context.Context, actor *domain.Actor, userID int64) ([]domain.Job, error) {
	if err := requireOwner(actor, userID); err != nil {
		return nil, err
	}
	jobs, err := uc.jobRepo.ListSaved(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
