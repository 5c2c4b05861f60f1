//go:build integration

// Run with: TEST_DATABASE_URL=postgres://... go test -tags integration ./internal/repository/postgres/
// The database is truncated, so point it at a disposable instance.
package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-portal-backend/internal/domain"
	"job-portal-backend/migrations"
	"job-portal-backend/pkg/database"
)

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	sqlDB, err := sql.Open("postgres", url)
	require.NoError(t, err)
	defer sqlDB.Close()
	_, err = migrations.Up(ctx, sqlDB)
	require.NoError(t, err)

	pool, err := database.NewPostgresConnection(ctx, url, database.PoolOptions{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func createUser(t *testing.T, users domain.UserRepository, email, phone, role string) *domain.User {
	t.Helper()
	u := &domain.User{Name: "Asha Rao", Email: email, Phone: phone, PasswordHash: "x", Role: role}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestUserRepositoryIdentity(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	cand := createUser(t, users, "asha@example.com", "9876543210", domain.RoleCandidate)

	err := users.Create(ctx, &domain.User{Name: "Other", Email: "ASHA@example.com", Phone: "9000000001", PasswordHash: "x", Role: domain.RoleCandidate})
	assert.True(t, stderrors.Is(err, domain.ErrConflict))

	exists, err := users.ExistsByEmailOrPhone(ctx, "Asha@Example.com", "9000000002")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := users.GetByIdentifierAndRole(ctx, "Asha@Example.com", domain.RoleCandidate)
	require.NoError(t, err)
	assert.Equal(t, cand.ID, got.ID)

	_, err = users.GetByIdentifierAndRole(ctx, "9876543210", domain.RoleEmployer)
	assert.True(t, stderrors.Is(err, domain.ErrNotFound))
}

func TestProfileRepositoryReplacesPresentCollections(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	profiles := NewProfileRepository(pool)
	cand := createUser(t, users, "asha@example.com", "9876543210", domain.RoleCandidate)
	createUser(t, users, "ravi@example.com", "9876543211", domain.RoleCandidate)

	base := func() *domain.ProfileUpdate {
		return &domain.ProfileUpdate{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", Location: "Pune"}
	}
	edu := []domain.Credential{{Title: "B.Tech", Institution: "IIT", Year: "2020"}}
	langs := []string{"English", "Hindi"}

	upd := base()
	upd.Education = &edu
	upd.Languages = &langs
	require.NoError(t, profiles.Update(ctx, cand.ID, upd))

	upd = base()
	upd.Bio = "Gopher"
	require.NoError(t, profiles.Update(ctx, cand.ID, upd))
	p, err := profiles.Get(ctx, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, edu, p.Education)
	assert.Equal(t, langs, p.Languages)
	assert.Equal(t, "Gopher", p.Bio)

	empty := []domain.Credential{}
	upd = base()
	upd.Education = &empty
	require.NoError(t, profiles.Update(ctx, cand.ID, upd))
	p, err = profiles.Get(ctx, cand.ID)
	require.NoError(t, err)
	assert.Empty(t, p.Education)

	// Taking another account's email rolls back the whole update.
	upd = base()
	upd.Email = "RAVI@example.com"
	upd.Languages = &[]string{"Tamil"}
	err = profiles.Update(ctx, cand.ID, upd)
	assert.True(t, stderrors.Is(err, domain.ErrConflict))
	p, err = profiles.Get(ctx, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", p.Email)
	assert.Equal(t, langs, p.Languages)
}

func TestJobRepositoryConstraintsAndViews(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	jobs := NewJobRepository(pool)
	apps := NewApplicationRepository(pool)
	emp := createUser(t, users, "hr@acme.com", "9123456780", domain.RoleEmployer)
	cand := createUser(t, users, "asha@example.com", "9876543210", domain.RoleCandidate)

	newJob := func(owner int64) *domain.Job {
		return &domain.Job{
			Title: "Backend Engineer", JobType: "Full-time", Description: "Build APIs",
			SalaryType: "Yearly", Company: "Acme", Skills: []string{"go", "sql"},
			PostedBy: owner, Status: domain.JobStatusActive,
		}
	}

	err := jobs.Create(ctx, newJob(9999))
	assert.True(t, stderrors.Is(err, domain.ErrNotFound))

	job := newJob(emp.ID)
	require.NoError(t, jobs.Create(ctx, job))

	for want := int64(1); want <= 2; want++ {
		got, err := jobs.FetchActiveAndCountView(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got.Views)
		assert.Equal(t, []string{"go", "sql"}, got.Skills)
	}

	app := &domain.JobApplication{UserID: cand.ID, JobID: job.ID, Status: "Pending"}
	require.NoError(t, apps.Create(ctx, app))
	err = apps.Create(ctx, &domain.JobApplication{UserID: cand.ID, JobID: job.ID, Status: "Pending"})
	assert.True(t, stderrors.Is(err, domain.ErrConflict))

	deleted, err := jobs.DeleteOwned(ctx, job.ID, emp.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	exists, err := apps.Exists(ctx, cand.ID, job.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
