package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"job-portal-backend/internal/domain"
)

// credentialTables are the sub-collections sharing the (title, institution, year) shape.
var credentialTables = map[string]string{
	"education":      "user_education",
	"experience":     "user_experience",
	"certifications": "user_certifications",
}

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context, userID int64) (*domain.Profile, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		return nil, wrap(err, "get profile")
	}
	p := &domain.Profile{User: *u}

	if p.Education, err = r.credentials(ctx, credentialTables["education"], userID); err != nil {
		return nil, err
	}
	if p.Experience, err = r.credentials(ctx, credentialTables["experience"], userID); err != nil {
		return nil, err
	}
	if p.Certifications, err = r.credentials(ctx, credentialTables["certifications"], userID); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT language FROM user_languages WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, wrap(err, "list languages")
	}
	defer rows.Close()
	p.Languages = []string{}
	for rows.Next() {
		var lang string
		if err := rows.Scan(&lang); err != nil {
			return nil, wrap(err, "scan language")
		}
		p.Languages = append(p.Languages, lang)
	}
	return p, wrap(rows.Err(), "list languages")
}

func (r *profileRepo) credentials(ctx context.Context, table string, userID int64) ([]domain.Credential, error) {
	rows, err := r.db.Query(ctx, `SELECT title, institution, year FROM `+table+` WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, wrap(err, "list "+table)
	}
	defer rows.Close()

	out := []domain.Credential{}
	for rows.Next() {
		var c domain.Credential
		if err := rows.Scan(&c.Title, &c.Institution, &c.Year); err != nil {
			return nil, wrap(err, "scan "+table)
		}
		out = append(out, c)
	}
	return out, wrap(rows.Err(), "list "+table)
}

func (r *profileRepo) Update(ctx context.Context, userID int64, upd *domain.ProfileUpdate) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE users SET
				name = $2, email = $3, phone = $4, location = $5,
				linkedin = COALESCE($6, linkedin), github = COALESCE($7, github),
				skills = COALESCE($8, skills), hobbies = COALESCE($9, hobbies),
				availability = COALESCE($10, availability), preferred_job_type = COALESCE($11, preferred_job_type),
				portfolio = COALESCE($12, portfolio), bio = COALESCE($13, bio),
				resume_link = COALESCE($14, resume_link), profile_pic = COALESCE($15, profile_pic)
			WHERE id = $1`,
			userID, upd.Name, upd.Email, upd.Phone, upd.Location,
			nullString(upd.LinkedIn), nullString(upd.GitHub),
			nullString(upd.Skills), nullString(upd.Hobbies),
			nullString(upd.Availability), nullString(upd.PreferredJobType),
			nullString(upd.Portfolio), nullString(upd.Bio),
			nullString(upd.ResumeLink), nullString(upd.ProfilePic),
		)
		if err != nil {
			return wrap(err, "update user")
		}
		if tag.RowsAffected() == 0 {
			return errors.Wrap(domain.ErrNotFound, "update user")
		}

		if err := replaceCredentials(ctx, tx, credentialTables["education"], userID, upd.Education); err != nil {
			return err
		}
		if err := replaceCredentials(ctx, tx, credentialTables["experience"], userID, upd.Experience); err != nil {
			return err
		}
		if err := replaceCredentials(ctx, tx, credentialTables["certifications"], userID, upd.Certifications); err != nil {
			return err
		}
		return replaceLanguages(ctx, tx, userID, upd.Languages)
	})
}

// replaceCredentials deletes and reinserts the rows only when items is present.
func replaceCredentials(ctx context.Context, tx pgx.Tx, table string, userID int64, items *[]domain.Credential) error {
	if items == nil {
		return nil
	}
	if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1`, userID); err != nil {
		return wrap(err, "clear "+table)
	}
	for _, c := range *items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO `+table+` (user_id, title, institution, year) VALUES ($1, $2, $3, $4)`,
			userID, c.Title, c.Institution, c.Year,
		); err != nil {
			return wrap(err, "insert "+table)
		}
	}
	return nil
}

func replaceLanguages(ctx context.Context, tx pgx.Tx, userID int64, langs *[]string) error {
	if langs == nil {
		return nil
	}
	if _, err := tx.Exec(ctx, `DELETE FROM user_languages WHERE user_id = $1`, userID); err != nil {
		return wrap(err, "clear languages")
	}
	for _, l := range *langs {
		if _, err := tx.Exec(ctx, `INSERT INTO user_languages (user_id, language) VALUES ($1, $2)`, userID, l); err != nil {
			return wrap(err, "insert language")
		}
	}
	return nil
}
