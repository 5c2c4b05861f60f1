package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

const companyColumns = `id, company_name, COALESCE(logo, ''), COALESCE(about, ''), COALESCE(industry, ''),
	COALESCE(headquarters, ''), COALESCE(company_size, ''), COALESCE(founded, ''), COALESCE(website, ''),
	rating::float8, reviews_count, jobs, reviews, COALESCE(email, ''), COALESCE(contact_name, ''), created_at`

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

func scanCompany(row scanner) (*domain.CompanyProfile, error) {
	var (
		p             domain.CompanyProfile
		jobs, reviews *string
	)
	if err := row.Scan(&p.ID, &p.CompanyName, &p.Logo, &p.About, &p.Industry,
		&p.Headquarters, &p.CompanySize, &p.Founded, &p.Website,
		&p.Rating, &p.ReviewsCount, &jobs, &reviews, &p.Email, &p.ContactName, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Jobs = decodeList(jobs)
	p.Reviews = decodeList(reviews)
	return &p, nil
}

func (r *companyProfileRepo) List(ctx context.Context) ([]domain.CompanyProfile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM company_profiles ORDER BY id`)
	if err != nil {
		return nil, wrap(err, "list companies")
	}
	defer rows.Close()

	out := []domain.CompanyProfile{}
	for rows.Next() {
		p, err := scanCompany(rows)
		if err != nil {
			return nil, wrap(err, "scan company")
		}
		out = append(out, *p)
	}
	return out, wrap(rows.Err(), "list companies")
}

func (r *companyProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	p, err := scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM company_profiles WHERE id = $1`, id))
	return p, wrap(err, "get company")
}

func (r *companyProfileRepo) Update(ctx context.Context, id int64, u *domain.CompanyProfileUpdate) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE company_profiles SET
			company_name = $2, logo = $3, about = $4, industry = $5, headquarters = $6,
			company_size = $7, founded = $8, website = $9, email = $10, contact_name = $11
		WHERE id = $1`,
		id, u.CompanyName, nullString(u.Logo), nullString(u.About), nullString(u.Industry), nullString(u.Headquarters),
		nullString(u.CompanySize), nullString(u.Founded), nullString(u.Website), nullString(u.Email), nullString(u.ContactName),
	)
	if err != nil {
		return false, wrap(err, "update company")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *companyProfileRepo) ListEmployers(ctx context.Context) ([]domain.EmployerSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT u.id, u.name,
			COALESCE(cp.company_name, u.company_name, ''), COALESCE(cp.industry, u.industry, ''),
			COALESCE(cp.company_size, u.company_size, ''), COALESCE(cp.logo, '')
		FROM users u LEFT JOIN company_profiles cp ON cp.id = u.id
		WHERE u.role = $1 ORDER BY u.id`, domain.RoleEmployer)
	if err != nil {
		return nil, wrap(err, "list employers")
	}
	defer rows.Close()

	out := []domain.EmployerSummary{}
	for rows.Next() {
		var e domain.EmployerSummary
		if err := rows.Scan(&e.ID, &e.Name, &e.CompanyName, &e.Industry, &e.CompanySize, &e.Logo); err != nil {
			return nil, wrap(err, "scan employer")
		}
		out = append(out, e)
	}
	return out, wrap(rows.Err(), "list employers")
}
