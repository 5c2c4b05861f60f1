package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"job-portal-backend/internal/domain"
	"job-portal-backend/internal/repository/memory"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/auth"
	"job-portal-backend/pkg/validation"
)

// Mock Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic string, args ...interface{}) {
	m.Called(append([]interface{}{topic}, args...)...)
}

type fixture struct {
	store         *memory.Store
	tokens        *auth.TokenManager
	publisher     *MockPublisher
	auth          domain.AuthUsecase
	jobs          domain.JobUsecase
	applications  domain.ApplicationUsecase
	profiles      domain.ProfileUsecase
	companies     domain.CompanyProfileUsecase
	notifications domain.NotificationUsecase
	messages      domain.MessageUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	tokens, err := auth.NewTokenManager("test-secret", map[string]time.Duration{
		domain.RoleCandidate: time.Hour,
		domain.RoleEmployer:  7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Maybe()
	validate := validation.New()

	return &fixture{
		store:         store,
		tokens:        tokens,
		publisher:     pub,
		auth:          usecase.NewAuthUsecase(store.Users(), tokens, validate),
		jobs:          usecase.NewJobUsecase(store.Jobs(), store.Applications(), validate),
		applications:  usecase.NewApplicationUsecase(store.Applications(), store.Jobs(), pub, validate),
		profiles:      usecase.NewProfileUsecase(store.Profiles(), store.Users(), validate),
		companies:     usecase.NewCompanyProfileUsecase(store.Companies(), validate),
		notifications: usecase.NewNotificationUsecase(store.Notifications(), store.Users(), validate),
		messages:      usecase.NewMessageUsecase(store.Messages(), store.Users(), pub, validate),
	}
}

func (f *fixture) candidate(t *testing.T, name, email, phone string) *domain.Actor {
	t.Helper()
	u, err := f.auth.RegisterCandidate(context.Background(), &domain.CandidateSignup{
		Name: name, Email: email, Phone: phone, Password: "secret1", Location: "Pune",
	})
	require.NoError(t, err)
	return &domain.Actor{ID: u.ID, Email: u.Email, Phone: u.Phone, Role: u.Role}
}

func (f *fixture) employer(t *testing.T, company, email, phone string) *domain.Actor {
	t.Helper()
	u, err := f.auth.RegisterEmployer(context.Background(), &domain.EmployerSignup{
		Email: email, Phone: phone, Password: "secret1",
		CompanyName: company, Industry: "Software", CompanySize: "11-50",
	})
	require.NoError(t, err)
	return &domain.Actor{ID: u.ID, Email: u.Email, Phone: u.Phone, Role: u.Role}
}

func (f *fixture) postJob(t *testing.T, employer *domain.Actor, deadline string) *domain.Job {
	t.Helper()
	job, err := f.jobs.Create(context.Background(), employer, &domain.JobInput{
		Title: "Backend Engineer", JobType: "Full-time", Description: "Build APIs",
		Company: "Acme", Skills: "go, sql, go", ApplicationDeadline: deadline,
	}, "")
	require.NoError(t, err)
	return job
}

func tomorrow() string {
	return time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")
}

func requireKind(t *testing.T, err error, kind apperror.Kind, code int) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
	assert.Equal(t, code, appErr.Code)
}

func TestSignupRejectsDuplicateEmailOrPhone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	tests := []struct {
		name  string
		email string
		phone string
	}{
		{"same email", "asha@example.com", "9000000001"},
		{"same email in another case", "ASHA@Example.com", "9000000002"},
		{"same phone", "other@example.com", "9876543210"},
		{"both", "asha@example.com", "9876543210"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.RegisterCandidate(ctx, &domain.CandidateSignup{
				Name: "Someone Else", Email: tt.email, Phone: tt.phone, Password: "another", Location: "Goa",
			})
			requireKind(t, err, apperror.KindConflict, 409)

			_, err = f.auth.RegisterEmployer(ctx, &domain.EmployerSignup{
				Email: tt.email, Phone: tt.phone, Password: "another",
				CompanyName: "Globex", Industry: "Retail", CompanySize: "1-10",
			})
			requireKind(t, err, apperror.KindConflict, 409)
		})
	}
}

func TestSignupStoresLowerCaseEmail(t *testing.T) {
	f := newFixture(t)
	cand := f.candidate(t, "Asha Rao", "  Asha@Example.com", "9876543210")
	assert.Equal(t, "asha@example.com", cand.Email)

	emp := f.employer(t, "Acme Corp", "HR@Acme.com", "9123456780")
	assert.Equal(t, "hr@acme.com", emp.Email)
	profile, err := f.companies.Get(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "hr@acme.com", profile.Email)
}

func TestSignupValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.RegisterCandidate(ctx, &domain.CandidateSignup{
		Name: "Asha 2", Email: "asha@example.com", Phone: "9876543210", Password: "secret1", Location: "Pune",
	})
	requireKind(t, err, apperror.KindValidation, 400)

	_, err = f.auth.RegisterCandidate(ctx, &domain.CandidateSignup{
		Name: "Asha", Email: "asha@example.com", Phone: "98765", Password: "secret1", Location: "Pune",
	})
	requireKind(t, err, apperror.KindValidation, 400)

	_, err = f.auth.RegisterEmployer(ctx, &domain.EmployerSignup{
		Email: "hr@acme.com", Phone: "9876543210", Password: "secret1",
		CompanyName: "A", Industry: "Software", CompanySize: "11-50",
	})
	requireKind(t, err, apperror.KindValidation, 400)
}

func TestEmployerSignupCreatesCompanyProfile(t *testing.T) {
	f := newFixture(t)
	emp := f.employer(t, "Acme Corp", "hr@acme.com", "9123456780")

	profile, err := f.companies.Get(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", profile.CompanyName)
	assert.Empty(t, profile.Jobs)
	assert.Empty(t, profile.Reviews)
}

// MockUserRepo reports the account as free but loses the insert race.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) CreateEmployer(ctx context.Context, user *domain.User, profile *domain.CompanyProfile) error {
	return m.Called(ctx, user, profile).Error(0)
}
func (m *MockUserRepo) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	args := m.Called(ctx, email, phone)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) GetByIdentifierAndRole(ctx context.Context, identifier, role string) (*domain.User, error) {
	args := m.Called(ctx, identifier, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateResume(ctx context.Context, id int64, path string) error {
	return m.Called(ctx, id, path).Error(0)
}

func TestSignupMapsStoreUniqueViolationToConflict(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("ExistsByEmailOrPhone", mock.Anything, "late@example.com", "9000000000").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Return(errors.Wrap(domain.ErrConflict, "insert user"))

	tokens, err := auth.NewTokenManager("test-secret", nil)
	require.NoError(t, err)
	uc := usecase.NewAuthUsecase(repo, tokens, validation.New())

	_, err = uc.RegisterCandidate(context.Background(), &domain.CandidateSignup{
		Name: "Late Comer", Email: "late@example.com", Phone: "9000000000", Password: "secret1", Location: "Delhi",
	})
	requireKind(t, err, apperror.KindConflict, 409)
	repo.AssertExpectations(t)
}

func TestLoginIsRoleScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	t.Run("candidate credentials on employer login", func(t *testing.T) {
		for _, id := range []string{"asha@example.com", "9876543210"} {
			_, err := f.auth.Login(ctx, &domain.LoginRequest{Identifier: id, Password: "secret1"}, domain.RoleEmployer)
			requireKind(t, err, apperror.KindNotFound, 401)

			// Wrong password too: the role scope is checked first.
			_, err = f.auth.Login(ctx, &domain.LoginRequest{Identifier: id, Password: "wrong-pass"}, domain.RoleEmployer)
			requireKind(t, err, apperror.KindNotFound, 401)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.auth.Login(ctx, &domain.LoginRequest{Identifier: "asha@example.com", Password: "wrong-pass"}, domain.RoleCandidate)
		requireKind(t, err, apperror.KindInvalidCredentials, 401)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		_, err := f.auth.Login(ctx, &domain.LoginRequest{Identifier: "asha", Password: "secret1"}, domain.RoleCandidate)
		requireKind(t, err, apperror.KindValidation, 400)
	})

	t.Run("email in another case", func(t *testing.T) {
		res, err := f.auth.Login(ctx, &domain.LoginRequest{Identifier: " Asha@Example.COM ", Password: "secret1"}, domain.RoleCandidate)
		require.NoError(t, err)
		assert.Equal(t, cand.ID, res.User.ID)
	})

	t.Run("success by phone", func(t *testing.T) {
		res, err := f.auth.Login(ctx, &domain.LoginRequest{Identifier: "9876543210", Password: "secret1"}, domain.RoleCandidate)
		require.NoError(t, err)
		assert.Equal(t, cand.ID, res.User.ID)

		claims, err := f.tokens.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, cand.ID, claims.ID)
		assert.Equal(t, domain.RoleCandidate, claims.Role)
		assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, time.Minute)
	})
}

func TestMeRequiresActor(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.Me(context.Background(), nil)
	requireKind(t, err, apperror.KindUnauthenticated, 401)
}

func TestCreateJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	valid := func() *domain.JobInput {
		return &domain.JobInput{Title: "Go Dev", JobType: "Full-time", Description: "APIs", Company: "Acme"}
	}
	ptr := func(v float64) *float64 { return &v }

	t.Run("candidate forbidden", func(t *testing.T) {
		_, err := f.jobs.Create(ctx, cand, valid(), "")
		requireKind(t, err, apperror.KindForbidden, 403)
	})

	t.Run("salary range", func(t *testing.T) {
		in := valid()
		in.SalaryMin, in.SalaryMax = ptr(90000), ptr(50000)
		_, err := f.jobs.Create(ctx, emp, in, "")
		requireKind(t, err, apperror.KindValidation, 400)
	})

	t.Run("past deadline", func(t *testing.T) {
		in := valid()
		in.ApplicationDeadline = "2001-01-01"
		_, err := f.jobs.Create(ctx, emp, in, "")
		requireKind(t, err, apperror.KindValidation, 400)
	})

	t.Run("missing title", func(t *testing.T) {
		in := valid()
		in.Title = "  "
		_, err := f.jobs.Create(ctx, emp, in, "")
		requireKind(t, err, apperror.KindValidation, 400)
	})

	t.Run("defaults and normalization", func(t *testing.T) {
		in := valid()
		in.Skills = " go, sql ,,go"
		in.ApplicationDeadline = tomorrow()
		job, err := f.jobs.Create(ctx, emp, in, "/uploads/logos/x.jpg")
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "sql"}, job.Skills)
		assert.Equal(t, "Yearly", job.SalaryType)
		assert.Equal(t, domain.JobStatusActive, job.Status)
		assert.Equal(t, int64(0), job.Views)
		assert.Equal(t, emp.ID, job.PostedBy)
		assert.Equal(t, "/uploads/logos/x.jpg", job.Logo)
	})
}

func TestToggleSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	job := f.postJob(t, emp, "")

	saved, err := f.jobs.ToggleSave(ctx, cand, job.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = f.jobs.ToggleSave(ctx, cand, job.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	// Repeated unsave on an unsaved job succeeds.
	require.NoError(t, f.jobs.Unsave(ctx, cand, job.ID))
	require.NoError(t, f.jobs.Unsave(ctx, cand, job.ID))

	// Saving twice at the store leaves it saved.
	require.NoError(t, f.store.Jobs().Save(ctx, cand.ID, job.ID))
	require.NoError(t, f.store.Jobs().Save(ctx, cand.ID, job.ID))
	list, err := f.jobs.SavedJobs(ctx, cand, cand.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.jobs.ToggleSave(ctx, emp, job.ID)
	requireKind(t, err, apperror.KindForbidden, 403)

	_, err = f.jobs.ToggleSave(ctx, cand, 9999)
	requireKind(t, err, apperror.KindNotFound, 404)
}

func TestApplyIsExactlyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	t.Run("sequential", func(t *testing.T) {
		job := f.postJob(t, emp, tomorrow())
		app, err := f.applications.Apply(ctx, cand, job.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationPending, app.Status)

		_, err = f.applications.Apply(ctx, cand, job.ID)
		requireKind(t, err, apperror.KindAlreadyApplied, 400)
		assert.Equal(t, 1, f.store.ApplicationCount(cand.ID, job.ID))
	})

	t.Run("concurrent", func(t *testing.T) {
		job := f.postJob(t, emp, "")
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.applications.Apply(ctx, cand, job.ID); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				} else {
					assert.Equal(t, apperror.KindAlreadyApplied, apperror.KindOf(err))
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, f.store.ApplicationCount(cand.ID, job.ID))
	})
}

// MockApplicationRepo simulates a lost race: Exists says no, the insert conflicts.
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, userID, jobID int64) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) Delete(ctx context.Context, userID, jobID int64) (bool, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}
func (m *MockApplicationRepo) ListAppliedJobs(ctx context.Context, userID int64) ([]domain.AppliedJob, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.AppliedJob), args.Error(1)
}

func TestApplyMapsStoreUniqueViolation(t *testing.T) {
	f := newFixture(t)
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	job := f.postJob(t, emp, "")

	repo := new(MockApplicationRepo)
	repo.On("Exists", mock.Anything, cand.ID, job.ID).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.Wrap(domain.ErrConflict, "insert application"))
	pub := new(MockPublisher)

	uc := usecase.NewApplicationUsecase(repo, f.store.Jobs(), pub, validation.New())
	_, err := uc.Apply(context.Background(), cand, job.ID)
	requireKind(t, err, apperror.KindAlreadyApplied, 400)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	t.Run("employer forbidden", func(t *testing.T) {
		job := f.postJob(t, emp, "")
		_, err := f.applications.Apply(ctx, emp, job.ID)
		requireKind(t, err, apperror.KindForbidden, 403)
	})

	t.Run("absent job", func(t *testing.T) {
		_, err := f.applications.Apply(ctx, cand, 424242)
		requireKind(t, err, apperror.KindNotFound, 404)
	})

	t.Run("closed job", func(t *testing.T) {
		closed := &domain.Job{Title: "Old", Company: "Acme", PostedBy: emp.ID, Status: domain.JobStatusClosed}
		require.NoError(t, f.store.Jobs().Create(ctx, closed))
		_, err := f.applications.Apply(ctx, cand, closed.ID)
		requireKind(t, err, apperror.KindNotFound, 404)
	})

	t.Run("deadline passed", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		late := &domain.Job{Title: "Late", Company: "Acme", PostedBy: emp.ID, Status: domain.JobStatusActive, ApplicationDeadline: &past}
		require.NoError(t, f.store.Jobs().Create(ctx, late))
		_, err := f.applications.Apply(ctx, cand, late.ID)
		requireKind(t, err, apperror.KindDeadlinePassed, 400)
		assert.Equal(t, 0, f.store.ApplicationCount(cand.ID, late.ID))
	})

	t.Run("detailed requires matching user", func(t *testing.T) {
		job := f.postJob(t, emp, "")
		req := &domain.ApplyRequest{
			UserID: cand.ID + 100, JobID: job.ID, ResumeLink: "/uploads/resumes/a.pdf",
			Name: "Asha", Phone: "9876543210", Email: "asha@example.com",
		}
		_, err := f.applications.ApplyDetailed(ctx, cand, req)
		requireKind(t, err, apperror.KindForbidden, 403)

		req.UserID = cand.ID
		app, err := f.applications.ApplyDetailed(ctx, cand, req)
		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationApplied, app.Status)
	})

	t.Run("detailed requires contact fields", func(t *testing.T) {
		job := f.postJob(t, emp, "")
		_, err := f.applications.ApplyDetailed(ctx, cand, &domain.ApplyRequest{UserID: cand.ID, JobID: job.ID})
		requireKind(t, err, apperror.KindValidation, 400)
	})
}

func TestApplyPublishesApplicationSubmitted(t *testing.T) {
	f := newFixture(t)
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	job := f.postJob(t, emp, "")

	pub := new(MockPublisher)
	pub.On("Publish", domain.TopicApplicationSubmitted, mock.Anything, mock.MatchedBy(func(ev domain.ApplicationSubmitted) bool {
		return ev.Application.UserID == cand.ID && ev.Job.ID == job.ID
	})).Once()

	uc := usecase.NewApplicationUsecase(f.store.Applications(), f.store.Jobs(), pub, validation.New())
	_, err := uc.Apply(context.Background(), cand, job.ID)
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestGetByIDCountsViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	job := f.postJob(t, emp, "")

	const n = 5
	var last *domain.Job
	for i := 0; i < n; i++ {
		var err error
		last, err = f.jobs.GetByID(ctx, job.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(n), last.Views)

	closed := &domain.Job{Title: "Old", Company: "Acme", PostedBy: emp.ID, Status: domain.JobStatusClosed}
	require.NoError(t, f.store.Jobs().Create(ctx, closed))
	_, err := f.jobs.GetByID(ctx, closed.ID)
	requireKind(t, err, apperror.KindNotFound, 404)

	stored, err := f.store.Jobs().GetByID(ctx, closed.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.Views)

	_, err = f.jobs.GetByID(ctx, 987654)
	requireKind(t, err, apperror.KindNotFound, 404)
}

func TestListActive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.jobs.ListActive(ctx, domain.JobFilter{})
	requireKind(t, err, apperror.KindNotFound, 404)

	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	f.postJob(t, emp, "")
	closed := &domain.Job{Title: "Old", Company: "Acme", PostedBy: emp.ID, Status: domain.JobStatusClosed}
	require.NoError(t, f.store.Jobs().Create(ctx, closed))

	jobs, err := f.jobs.ListActive(ctx, domain.JobFilter{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.JobStatusActive, jobs[0].Status)

	jobs, err = f.jobs.ListActive(ctx, domain.JobFilter{Query: "backend"})
	require.NoError(t, err)
	assert.Len(t, jobs, 1)

	_, err = f.jobs.ListActive(ctx, domain.JobFilter{Query: "plumber"})
	requireKind(t, err, apperror.KindNotFound, 404)
}

func TestOwnershipLeavesRowsUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	empA := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	empB := f.employer(t, "Globex", "hr@globex.com", "9123456781")
	candA := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	candB := f.candidate(t, "Ravi Kumar", "ravi@example.com", "9876543211")
	job := f.postJob(t, empA, "")

	t.Run("delete job of another employer", func(t *testing.T) {
		err := f.jobs.Delete(ctx, empB, job.ID)
		requireKind(t, err, apperror.KindNotFound, 404)
		_, err = f.store.Jobs().GetByID(ctx, job.ID)
		assert.NoError(t, err)
	})

	t.Run("update another candidate's profile", func(t *testing.T) {
		_, err := f.profiles.Update(ctx, candB, candA.ID, &domain.ProfileUpdate{
			Name: "Hacker", Email: "h@example.com", Phone: "9999999999", Location: "Nowhere",
		})
		requireKind(t, err, apperror.KindForbidden, 403)
		p, err := f.profiles.Get(ctx, candA, candA.ID)
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", p.Name)
	})

	t.Run("update another company's profile", func(t *testing.T) {
		_, err := f.companies.Update(ctx, empB, empA.ID, &domain.CompanyProfileUpdate{CompanyName: "Pwned"})
		requireKind(t, err, apperror.KindForbidden, 403)
		cp, err := f.companies.Get(ctx, empA.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme", cp.CompanyName)
	})

	t.Run("mark another user's notification", func(t *testing.T) {
		n, err := f.notifications.Notify(ctx, candA.ID, "hello", "")
		require.NoError(t, err)
		err = f.notifications.MarkRead(ctx, candB, n.ID)
		requireKind(t, err, apperror.KindNotFound, 404)
		err = f.notifications.Delete(ctx, candB, n.ID)
		requireKind(t, err, apperror.KindNotFound, 404)

		count, err := f.notifications.UnreadCount(ctx, candA, candA.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("read another user's lists", func(t *testing.T) {
		_, err := f.notifications.List(ctx, candB, candA.ID)
		requireKind(t, err, apperror.KindForbidden, 403)
		_, err = f.jobs.SavedJobs(ctx, candB, candA.ID)
		requireKind(t, err, apperror.KindForbidden, 403)
		_, err = f.applications.AppliedJobs(ctx, candB, candA.ID)
		requireKind(t, err, apperror.KindForbidden, 403)
		_, err = f.jobs.ListByOwner(ctx, empB, empA.ID)
		requireKind(t, err, apperror.KindForbidden, 403)
	})

	t.Run("applications of a job owned by someone else", func(t *testing.T) {
		_, err := f.applications.Apply(ctx, candA, job.ID)
		require.NoError(t, err)
		_, err = f.applications.ListForJob(ctx, empB, job.ID)
		requireKind(t, err, apperror.KindNotFound, 404)

		apps, err := f.applications.ListForJob(ctx, empA, job.ID)
		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestSetStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	job := f.postJob(t, emp, "")
	app, err := f.applications.Apply(ctx, cand, job.ID)
	require.NoError(t, err)

	requireKind(t, f.applications.SetStatus(ctx, emp, app.ID, "Maybe"), apperror.KindValidation, 400)
	requireKind(t, f.applications.SetStatus(ctx, emp, 5555, domain.ApplicationHired), apperror.KindNotFound, 404)
	requireKind(t, f.applications.SetStatus(ctx, nil, app.ID, domain.ApplicationHired), apperror.KindUnauthenticated, 401)

	require.NoError(t, f.applications.SetStatus(ctx, emp, app.ID, domain.ApplicationShortlisted))
	applied, err := f.applications.AppliedJobs(ctx, cand, cand.ID)
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, domain.ApplicationShortlisted, applied[0].ApplicationStatus)
}

func TestReportAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	job := f.postJob(t, emp, "")

	err := f.jobs.Report(ctx, cand, job.ID, &domain.ReportInput{Reason: "   "})
	requireKind(t, err, apperror.KindValidation, 400)
	assert.Equal(t, 0, f.store.ReportCount(job.ID))

	require.NoError(t, f.jobs.Report(ctx, cand, job.ID, &domain.ReportInput{Reason: "Spam"}))
	require.NoError(t, f.jobs.Report(ctx, cand, job.ID, &domain.ReportInput{Reason: "Still spam"}))
	assert.Equal(t, 2, f.store.ReportCount(job.ID))

	_, err = f.jobs.ToggleSave(ctx, cand, job.ID)
	require.NoError(t, err)

	st, err := f.jobs.Status(ctx, cand, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatus{IsSaved: true, HasApplied: false, IsReported: true}, *st)
}

func TestSendMessage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	_, err := f.messages.Send(ctx, cand, &domain.MessageInput{CandidateID: cand.ID, Message: "hi"})
	requireKind(t, err, apperror.KindForbidden, 403)

	_, err = f.messages.Send(ctx, emp, &domain.MessageInput{CandidateID: emp.ID, Message: "hi"})
	requireKind(t, err, apperror.KindNotFound, 404)

	_, err = f.messages.Send(ctx, emp, &domain.MessageInput{CandidateID: cand.ID, Message: "  "})
	requireKind(t, err, apperror.KindValidation, 400)

	pub := new(MockPublisher)
	pub.On("Publish", domain.TopicMessageSent, mock.Anything, mock.MatchedBy(func(ev domain.MessageSent) bool {
		return ev.Message.ReceiverID == cand.ID && ev.SenderName == "Acme"
	})).Once()
	uc := usecase.NewMessageUsecase(f.store.Messages(), f.store.Users(), pub, validation.New())

	msg, err := uc.Send(ctx, emp, &domain.MessageInput{CandidateID: cand.ID, Message: "Interview tomorrow?"})
	require.NoError(t, err)
	assert.Equal(t, emp.ID, msg.SenderID)
	pub.AssertExpectations(t)

	list, err := f.messages.List(ctx, cand)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSendNotification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	_, err := f.notifications.Send(ctx, cand, &domain.NotificationInput{UserID: emp.ID, Message: "hi"})
	requireKind(t, err, apperror.KindForbidden, 403)

	_, err = f.notifications.Send(ctx, emp, &domain.NotificationInput{UserID: 999, Message: "hi"})
	requireKind(t, err, apperror.KindNotFound, 404)

	_, err = f.notifications.Send(ctx, emp, &domain.NotificationInput{UserID: cand.ID, Message: " "})
	requireKind(t, err, apperror.KindValidation, 400)

	n, err := f.notifications.Send(ctx, emp, &domain.NotificationInput{UserID: cand.ID, Message: "Shortlisted"})
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationInfo, n.Type)

	require.NoError(t, f.notifications.MarkRead(ctx, cand, n.ID))
	count, err := f.notifications.UnreadCount(ctx, cand, cand.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, f.notifications.Delete(ctx, cand, n.ID))
	list, err := f.notifications.List(ctx, cand, cand.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProfileUpdateReplacesOnlyPresentCollections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	edu := []domain.Credential{{Title: "B.Tech", Institution: "IIT", Year: "2020"}}
	langs := []string{"English", "Hindi"}
	base := func() *domain.ProfileUpdate {
		return &domain.ProfileUpdate{Name: "Asha Rao", Email: "asha@example.com", Phone: "9876543210", Location: "Pune"}
	}

	upd := base()
	upd.Education = &edu
	upd.Languages = &langs
	upd.ProfilePic = "/uploads/profile_pics/a.jpg"
	p, err := f.profiles.Update(ctx, cand, cand.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, edu, p.Education)
	assert.Equal(t, langs, p.Languages)
	assert.Equal(t, "/uploads/profile_pics/a.jpg", p.ProfilePic)

	// Absent collections and empty upload paths keep what is stored.
	upd = base()
	upd.Bio = "Gopher"
	p, err = f.profiles.Update(ctx, cand, cand.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, edu, p.Education)
	assert.Equal(t, langs, p.Languages)
	assert.Equal(t, "/uploads/profile_pics/a.jpg", p.ProfilePic)
	assert.Equal(t, "Gopher", p.Bio)

	// A present empty collection clears it.
	empty := []domain.Credential{}
	upd = base()
	upd.Education = &empty
	p, err = f.profiles.Update(ctx, cand, cand.ID, upd)
	require.NoError(t, err)
	assert.Empty(t, p.Education)

	upd = base()
	upd.Location = " "
	_, err = f.profiles.Update(ctx, cand, cand.ID, upd)
	requireKind(t, err, apperror.KindValidation, 400)
}

func TestProfileUpdateEmailIgnoresCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	ravi := f.candidate(t, "Ravi Kumar", "ravi@example.com", "9876543211")

	upd := &domain.ProfileUpdate{Name: "Ravi Kumar", Email: "ASHA@example.com", Phone: "9876543211", Location: "Pune"}
	_, err := f.profiles.Update(ctx, ravi, ravi.ID, upd)
	requireKind(t, err, apperror.KindConflict, 409)

	upd = &domain.ProfileUpdate{Name: "Ravi Kumar", Email: "Ravi.K@Example.com", Phone: "9876543211", Location: "Pune"}
	p, err := f.profiles.Update(ctx, ravi, ravi.ID, upd)
	require.NoError(t, err)
	assert.Equal(t, "ravi.k@example.com", p.Email)
}

func TestUploadResumeAndSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")

	_, err := f.profiles.UploadResume(ctx, cand, cand.ID, "")
	requireKind(t, err, apperror.KindValidation, 400)

	u, err := f.profiles.UploadResume(ctx, cand, cand.ID, "/uploads/resumes/r.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/r.pdf", u.ResumeLink)

	s, err := f.profiles.CandidateSummary(ctx, cand.ID)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/r.pdf", s.ResumeLink)

	_, err = f.profiles.CandidateSummary(ctx, emp.ID)
	requireKind(t, err, apperror.KindNotFound, 404)
}

func TestScenarioApplyThenOwnerDeletes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	empA := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	empB := f.employer(t, "Globex", "hr@globex.com", "9123456781")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")

	job := f.postJob(t, empA, tomorrow())

	_, err := f.applications.Apply(ctx, cand, job.ID)
	require.NoError(t, err)

	_, err = f.applications.Apply(ctx, cand, job.ID)
	requireKind(t, err, apperror.KindAlreadyApplied, 400)

	err = f.jobs.Delete(ctx, empB, job.ID)
	requireKind(t, err, apperror.KindNotFound, 404)

	require.NoError(t, f.jobs.Delete(ctx, empA, job.ID))

	_, err = f.jobs.GetByID(ctx, job.ID)
	requireKind(t, err, apperror.KindNotFound, 404)
	assert.Equal(t, 0, f.store.ApplicationCount(cand.ID, job.ID))
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	cand := f.candidate(t, "Asha Rao", "asha@example.com", "9876543210")
	job := f.postJob(t, emp, tomorrow())

	err := f.applications.Withdraw(ctx, cand, job.ID)
	requireKind(t, err, apperror.KindNotFound, 404)

	_, err = f.applications.Apply(ctx, cand, job.ID)
	require.NoError(t, err)

	err = f.applications.Withdraw(ctx, emp, job.ID)
	requireKind(t, err, apperror.KindForbidden, 403)

	require.NoError(t, f.applications.Withdraw(ctx, cand, job.ID))
	assert.Equal(t, 0, f.store.ApplicationCount(cand.ID, job.ID))

	// Withdrawing frees the slot for a new application.
	_, err = f.applications.Apply(ctx, cand, job.ID)
	assert.NoError(t, err)
}

func TestCompanyProfileUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	empA := f.employer(t, "Acme", "hr@acme.com", "9123456780")
	empB := f.employer(t, "Globex", "hr@globex.com", "9123456781")

	_, err := f.companies.Update(ctx, empB, empA.ID, &domain.CompanyProfileUpdate{CompanyName: "Hijacked"})
	requireKind(t, err, apperror.KindForbidden, 403)

	_, err = f.companies.Update(ctx, empA, empA.ID, &domain.CompanyProfileUpdate{CompanyName: "   "})
	requireKind(t, err, apperror.KindValidation, 400)

	p, err := f.companies.Update(ctx, empA, empA.ID, &domain.CompanyProfileUpdate{
		CompanyName: " Acme Corp ", Headquarters: "Pune", Website: "https://acme.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", p.CompanyName)
	assert.Equal(t, "Pune", p.Headquarters)

	other, err := f.companies.Get(ctx, empB.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", other.CompanyName)

	employers, err := f.companies.ListEmployers(ctx)
	require.NoError(t, err)
	require.Len(t, employers, 2)
	assert.Equal(t, "Acme Corp", employers[0].CompanyName)

	_, err = f.companies.Get(ctx, 9999)
	requireKind(t, err, apperror.KindNotFound, 404)
}
