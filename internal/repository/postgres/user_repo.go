package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"job-portal-backend/internal/domain"
)

const userColumns = `id, name, email, phone, password_hash, role,
	COALESCE(location, ''), COALESCE(linkedin, ''), COALESCE(github, ''),
	COALESCE(resume_link, ''), COALESCE(profile_pic, ''), COALESCE(skills, ''),
	COALESCE(hobbies, ''), COALESCE(availability, ''), COALESCE(preferred_job_type, ''),
	COALESCE(portfolio, ''), COALESCE(bio, ''), COALESCE(company_name, ''),
	COALESCE(industry, ''), COALESCE(company_size, ''), created_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row scanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.Role,
		&u.Location, &u.LinkedIn, &u.GitHub,
		&u.ResumeLink, &u.ProfilePic, &u.Skills,
		&u.Hobbies, &u.Availability, &u.PreferredJobType,
		&u.Portfolio, &u.Bio, &u.CompanyName,
		&u.Industry, &u.CompanySize, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

const insertUser = `INSERT INTO users (name, email, phone, password_hash, role, location, company_name, industry, company_size)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, insertUser,
		user.Name, user.Email, user.Phone, user.PasswordHash, user.Role,
		nullString(user.Location), nullString(user.CompanyName), nullString(user.Industry), nullString(user.CompanySize),
	).Scan(&user.ID, &user.CreatedAt)
	return wrap(err, "insert user")
}

func (r *userRepo) CreateEmployer(ctx context.Context, user *domain.User, profile *domain.CompanyProfile) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertUser,
			user.Name, user.Email, user.Phone, user.PasswordHash, user.Role,
			nullString(user.Location), nullString(user.CompanyName), nullString(user.Industry), nullString(user.CompanySize),
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return wrap(err, "insert employer")
		}

		profile.ID = user.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO company_profiles (id, company_name, industry, company_size, email, contact_name, jobs, reviews)
			 VALUES ($1, $2, $3, $4, $5, $6, '[]', '[]')
			 RETURNING created_at`,
			profile.ID, profile.CompanyName, nullString(profile.Industry), nullString(profile.CompanySize),
			nullString(profile.Email), nullString(profile.ContactName),
		).Scan(&profile.CreatedAt)
		return wrap(err, "insert company profile")
	})
}

func (r *userRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1) OR phone = $2)`, email, phone,
	).Scan(&exists)
	return exists, wrap(err, "check user exists")
}

func (r *userRepo) GetByIdentifierAndRole(ctx context.Context, identifier, role string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE (lower(email) = lower($1) OR phone = $1) AND role = $2 LIMIT 1`,
		identifier, role,
	)
	u, err := scanUser(row)
	return u, wrap(err, "get user by identifier")
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	return u, wrap(err, "get user")
}

func (r *userRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, role)
	if err != nil {
		return nil, wrap(err, "list users")
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrap(err, "scan user")
		}
		users = append(users, *u)
	}
	return users, wrap(rows.Err(), "list users")
}

func (r *userRepo) UpdateResume(ctx context.Context, id int64, path string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET resume_link = $2 WHERE id = $1`, id, path)
	if err != nil {
		return wrap(err, "update resume")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrap(domain.ErrNotFound, "update resume")
	}
	return nil
}
