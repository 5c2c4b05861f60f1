package domain

import (
	"context"
	"time"
)

const (
	ApplicationPending     = "Pending"
	ApplicationApplied     = "Applied"
	ApplicationShortlisted = "Shortlisted"
	ApplicationRejected    = "Rejected"
	ApplicationHired       = "Hired"
	ApplicationReviewed    = "Reviewed"
)

var ApplicationStatuses = []string{
	ApplicationPending,
	ApplicationApplied,
	ApplicationShortlisted,
	ApplicationRejected,
	ApplicationHired,
	ApplicationReviewed,
}

type JobApplication struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	JobID       int64     `json:"job_id"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`
	CoverLetter string    `json:"cover_letter"`
	ResumeLink  string    `json:"resume_link"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
}

// AppliedJob is a job joined with the actor's application to it.
type AppliedJob struct {
	Job
	ApplicationID     int64     `json:"application_id"`
	ApplicationStatus string    `json:"application_status"`
	AppliedAt         time.Time `json:"applied_at"`
}

// ApplyRequest is the body of the detailed POST /apply.
type ApplyRequest struct {
	UserID      int64  `json:"user_id" validate:"required,gt=0"`
	JobID       int64  `json:"job_id" validate:"required,gt=0"`
	CoverLetter string `json:"cover_letter"`
	ResumeLink  string `json:"resume_link" validate:"required,notblank"`
	Name        string `json:"name" validate:"required,notblank"`
	Phone       string `json:"phone" validate:"required,valid_phone"`
	Email       string `json:"email" validate:"required,valid_email"`
}

type StatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

// ApplicationSubmitted is published after an application row is stored.
type ApplicationSubmitted struct {
	Application *JobApplication
	Job         *Job
}

type ApplicationRepository interface {
	// Create fails with ErrConflict when the (user, job) pair already exists.
	Create(ctx context.Context, app *JobApplication) error
	Exists(ctx context.Context, userID, jobID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, userID, jobID int64) (bool, error)
	ListByJob(ctx context.Context, jobID int64) ([]JobApplication, error)
	ListAppliedJobs(ctx context.Context, userID int64) ([]AppliedJob, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor *Actor, jobID int64) (*JobApplication, error)
	ApplyDetailed(ctx context.Context, actor *Actor, req *ApplyRequest) (*JobApplication, error)
	Withdraw(ctx context.Context, actor *Actor, jobID int64) error
	SetStatus(ctx context.Context, actor *Actor, id int64, status string) error
	ListForJob(ctx context.Context, actor *Actor, jobID int64) ([]JobApplication, error)
	AppliedJobs(ctx context.Context, actor *Actor, userID int64) ([]AppliedJob, error)
}
