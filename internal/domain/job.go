package domain

import (
	"context"
	"time"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

type Job struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	JobType             string     `json:"job_type"`
	Description         string     `json:"description"`
	SalaryMin           *float64   `json:"salary_min"`
	SalaryMax           *float64   `json:"salary_max"`
	SalaryType          string     `json:"salary_type"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Experience          string     `json:"experience"`
	WorkLocation        string     `json:"work_location"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	Skills              []string   `json:"skills"`
	CompanySize         string     `json:"company_size"`
	Benefits            string     `json:"benefits"`
	Category            string     `json:"category"`
	Requirements        string     `json:"requirements"`
	ApplyURL            string     `json:"apply_url"`
	PostedBy            int64      `json:"posted_by"`
	Logo                string     `json:"logo"`
	DatePosted          time.Time  `json:"date_posted"`
	Status              string     `json:"status"`
	Views               int64      `json:"views"`
}

// DeadlinePassed reports whether applications are closed at now.
func (j *Job) DeadlinePassed(now time.Time) bool {
	return j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now)
}

// JobInput is the multipart form of POST /jobs.
type JobInput struct {
	Title               string   `form:"title" json:"title" validate:"required,notblank"`
	JobType             string   `form:"job_type" json:"job_type" validate:"required,notblank"`
	Description         string   `form:"description" json:"description" validate:"required,notblank"`
	SalaryMin           *float64 `form:"salary_min" json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax           *float64 `form:"salary_max" json:"salary_max" validate:"omitempty,gte=0"`
	SalaryType          string   `form:"salary_type" json:"salary_type"`
	Company             string   `form:"company" json:"company" validate:"required,notblank"`
	Location            string   `form:"location" json:"location"`
	Experience          string   `form:"experience" json:"experience"`
	WorkLocation        string   `form:"work_location" json:"work_location"`
	ApplicationDeadline string   `form:"application_deadline" json:"application_deadline"`
	Skills              string   `form:"skills" json:"skills"`
	CompanySize         string   `form:"company_size" json:"company_size"`
	Benefits            string   `form:"benefits" json:"benefits"`
	Category            string   `form:"category" json:"category"`
	Requirements        string   `form:"requirements" json:"requirements"`
	ApplyURL            string   `form:"apply_url" json:"apply_url" validate:"omitempty,url"`
}

type JobFilter struct {
	Query    string
	Location string
	JobType  string
	Category string
	Page     int
	PageSize int
}

// JobStatus is the per-actor relation summary of GET /jobs/:id/status.
type JobStatus struct {
	IsSaved    bool `json:"isSaved"`
	HasApplied bool `json:"hasApplied"`
	IsReported bool `json:"isReported"`
}

type JobReport struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	JobID     int64     `json:"job_id"`
	Reason    string    `json:"reason"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportInput struct {
	Reason  string `json:"reason" validate:"required,notblank"`
	Details string `json:"details"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	ListActive(ctx context.Context, filter JobFilter) ([]Job, error)
	// FetchActiveAndCountView returns an active job and increments its views in one step.
	FetchActiveAndCountView(ctx context.Context, id int64) (*Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Job, error)
	// DeleteOwned removes the job only when posted by ownerID.
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)

	Save(ctx context.Context, userID, jobID int64) error
	Unsave(ctx context.Context, userID, jobID int64) (bool, error)
	IsSaved(ctx context.Context, userID, jobID int64) (bool, error)
	ListSaved(ctx context.Context, userID int64) ([]Job, error)

	Report(ctx context.Context, report *JobReport) error
	IsReported(ctx context.Context, userID, jobID int64) (bool, error)
}

type JobUsecase interface {
	ListActive(ctx context.Context, filter JobFilter) ([]Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	Create(ctx context.Context, actor *Actor, input *JobInput, logo string) (*Job, error)
	Delete(ctx context.Context, actor *Actor, id int64) error
	// ToggleSave returns true when the job ends up saved.
	ToggleSave(ctx context.Context, actor *Actor, id int64) (bool, error)
	Unsave(ctx context.Context, actor *Actor, id int64) error
	Report(ctx context.Context, actor *Actor, id int64, input *ReportInput) error
	Status(ctx context.Context, actor *Actor, id int64) (*JobStatus, error)
	ListByOwner(ctx context.Context, actor *Actor, ownerID int64) ([]Job, error)
	SavedJobs(ctx context.Context, actor *Actor, userID int64) ([]Job, error)
}
