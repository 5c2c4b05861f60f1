package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

const jobColumns = `j.id, j.title, j.job_type, j.description, j.salary_min, j.salary_max, j.salary_type,
	j.company, COALESCE(j.location, ''), COALESCE(j.experience, ''), COALESCE(j.work_location, ''),
	j.application_deadline, j.skills, COALESCE(j.company_size, ''), COALESCE(j.benefits, ''),
	COALESCE(j.category, ''), COALESCE(j.requirements, ''), COALESCE(j.apply_url, ''),
	j.posted_by, COALESCE(j.logo, ''), j.date_posted, j.status, j.views`

const defaultPageSize = 50

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// scanJob reads jobColumns followed by any extra destinations.
func scanJob(row scanner, extra ...any) (*domain.Job, error) {
	var (
		j      domain.Job
		skills *string
	)
	dest := []any{
		&j.ID, &j.Title, &j.JobType, &j.Description, &j.SalaryMin, &j.SalaryMax, &j.SalaryType,
		&j.Company, &j.Location, &j.Experience, &j.WorkLocation,
		&j.ApplicationDeadline, &skills, &j.CompanySize, &j.Benefits,
		&j.Category, &j.Requirements, &j.ApplyURL,
		&j.PostedBy, &j.Logo, &j.DatePosted, &j.Status, &j.Views,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	j.Skills = decodeSkills(skills)
	return &j, nil
}

func collectJobs(rows pgx.Rows, op string) ([]domain.Job, error) {
	defer rows.Close()
	jobs := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, wrap(err, op)
		}
		jobs = append(jobs, *j)
	}
	return jobs, wrap(rows.Err(), op)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	err := r.db.QueryRow(ctx, `INSERT INTO jobs (
			title, job_type, description, salary_min, salary_max, salary_type,
			company, location, experience, work_location, application_deadline,
			skills, company_size, benefits, category, requirements, apply_url,
			posted_by, logo, status, views
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, date_posted`,
		job.Title, job.JobType, job.Description, job.SalaryMin, job.SalaryMax, job.SalaryType,
		job.Company, nullString(job.Location), nullString(job.Experience), nullString(job.WorkLocation), job.ApplicationDeadline,
		encodeSkills(job.Skills), nullString(job.CompanySize), nullString(job.Benefits), nullString(job.Category),
		nullString(job.Requirements), nullString(job.ApplyURL),
		job.PostedBy, nullString(job.Logo), job.Status, job.Views,
	).Scan(&job.ID, &job.DatePosted)
	return wrap(err, "insert job")
}

func (r *jobRepo) ListActive(ctx context.Context, f domain.JobFilter) ([]domain.Job, error) {
	where := []string{"j.status = $1"}
	args := []any{domain.JobStatusActive}
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		add("(j.title ILIKE $%[1]d OR j.company ILIKE $%[1]d OR j.description ILIKE $%[1]d)", "%"+q+"%")
	}
	if f.Location != "" {
		add("j.location ILIKE $%d", "%"+f.Location+"%")
	}
	if f.JobType != "" {
		add("j.job_type = $%d", f.JobType)
	}
	if f.Category != "" {
		add("j.category = $%d", f.Category)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE ` + strings.Join(where, " AND ") + ` ORDER BY j.date_posted DESC, j.id DESC`
	if f.Page > 0 {
		size := f.PageSize
		if size <= 0 {
			size = defaultPageSize
		}
		args = append(args, size, (f.Page-1)*size)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(err, "list active jobs")
	}
	return collectJobs(rows, "list active jobs")
}

func (r *jobRepo) FetchActiveAndCountView(ctx context.Context, id int64) (*domain.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs j SET views = j.views + 1 WHERE j.id = $1 AND j.status = $2 RETURNING `+jobColumns,
		id, domain.JobStatusActive,
	)
	j, err := scanJob(row)
	return j, wrap(err, "fetch job")
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	j, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id))
	return j, wrap(err, "get job")
}

func (r *jobRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs j WHERE j.posted_by = $1 ORDER BY j.date_posted DESC, j.id DESC`, ownerID)
	if err != nil {
		return nil, wrap(err, "list owner jobs")
	}
	return collectJobs(rows, "list owner jobs")
}

func (r *jobRepo) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1 AND posted_by = $2`, id, ownerID)
	if err != nil {
		return false, wrap(err, "delete job")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *jobRepo) Save(ctx context.Context, userID, jobID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (user_id, job_id) VALUES ($1, $2) ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID)
	return wrap(err, "save job")
}

func (r *jobRepo) Unsave(ctx context.Context, userID, jobID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return false, wrap(err, "unsave job")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *jobRepo) IsSaved(ctx context.Context, userID, jobID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE user_id = $1 AND job_id = $2)`, userID, jobID,
	).Scan(&ok)
	return ok, wrap(err, "check saved")
}

func (r *jobRepo) ListSaved(ctx context.Context, userID int64) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs j JOIN saved_jobs sj ON j.id = sj.job_id
		 WHERE sj.user_id = $1 ORDER BY sj.saved_at DESC`, userID)
	if err != nil {
		return nil, wrap(err, "list saved jobs")
	}
	return collectJobs(rows, "list saved jobs")
}

func (r *jobRepo) Report(ctx context.Context, rep *domain.JobReport) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO job_reports (user_id, job_id, reason, details) VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rep.UserID, rep.JobID, rep.Reason, nullString(rep.Details),
	).Scan(&rep.ID, &rep.CreatedAt)
	return wrap(err, "insert report")
}

func (r *jobRepo) IsReported(ctx context.Context, userID, jobID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_reports WHERE user_id = $1 AND job_id = $2)`, userID, jobID,
	).Scan(&ok)
	return ok, wrap(err, "check reported")
}
