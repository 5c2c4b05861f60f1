package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

const applicationColumns = `id, user_id, job_id, status, applied_at, COALESCE(cover_letter, ''),
	COALESCE(resume_link, ''), COALESCE(name, ''), COALESCE(phone, ''), COALESCE(email, '')`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO job_applications (user_id, job_id, status, cover_letter, resume_link, name, phone, email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, applied_at`,
		app.UserID, app.JobID, app.Status, nullString(app.CoverLetter), nullString(app.ResumeLink),
		nullString(app.Name), nullString(app.Phone), nullString(app.Email),
	).Scan(&app.ID, &app.AppliedAt)
	return wrap(err, "insert application")
}

func (r *applicationRepo) Exists(ctx context.Context, userID, jobID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM job_applications WHERE user_id = $1 AND job_id = $2)`, userID, jobID,
	).Scan(&ok)
	return ok, wrap(err, "check application")
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE job_applications SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return false, wrap(err, "update application status")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *applicationRepo) Delete(ctx context.Context, userID, jobID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_applications WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return false, wrap(err, "delete application")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE job_id = $1 ORDER BY applied_at DESC`, jobID)
	if err != nil {
		return nil, wrap(err, "list applications")
	}
	defer rows.Close()

	apps := []domain.JobApplication{}
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt, &a.CoverLetter,
			&a.ResumeLink, &a.Name, &a.Phone, &a.Email); err != nil {
			return nil, wrap(err, "scan application")
		}
		apps = append(apps, a)
	}
	return apps, wrap(rows.Err(), "list applications")
}

func (r *applicationRepo) ListAppliedJobs(ctx context.Context, userID int64) ([]domain.AppliedJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`, ja.id, ja.status, ja.applied_at
		 FROM jobs j JOIN job_applications ja ON j.id = ja.job_id
		 WHERE ja.user_id = $1 ORDER BY ja.applied_at DESC`, userID)
	if err != nil {
		return nil, wrap(err, "list applied jobs")
	}
	defer rows.Close()

	out := []domain.AppliedJob{}
	for rows.Next() {
		var aj domain.AppliedJob
		j, err := scanJob(rows, &aj.ApplicationID, &aj.ApplicationStatus, &aj.AppliedAt)
		if err != nil {
			return nil, wrap(err, "scan applied job")
		}
		aj.Job = *j
		out = append(out, aj)
	}
	return out, wrap(rows.Err(), "list applied jobs")
}
