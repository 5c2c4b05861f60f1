// Package memory is an in-process implementation of the repository
// interfaces. It enforces the same uniqueness rules as the SQL schema and is
// used by tests and by local runs without DATABASE_URL.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"job-portal-backend/internal/domain"
)

type pair struct {
	userID int64
	jobID  int64
}

type Store struct {
	mu  sync.Mutex
	now func() time.Time
	seq int64

	users         map[int64]*domain.User
	credentials   map[int64]map[string][]domain.Credential
	languages     map[int64][]string
	companies     map[int64]*domain.CompanyProfile
	jobs          map[int64]*domain.Job
	saved         map[pair]time.Time
	applications  map[int64]*domain.JobApplication
	reports       []domain.JobReport
	notifications map[int64]*domain.Notification
	messages      []domain.Message
}

func NewStore() *Store {
	return &Store{
		now:           time.Now,
		users:         map[int64]*domain.User{},
		credentials:   map[int64]map[string][]domain.Credential{},
		languages:     map[int64][]string{},
		companies:     map[int64]*domain.CompanyProfile{},
		jobs:          map[int64]*domain.Job{},
		saved:         map[pair]time.Time{},
		applications:  map[int64]*domain.JobApplication{},
		notifications: map[int64]*domain.Notification{},
	}
}

func (s *Store) Users() domain.UserRepository                 { return &userRepo{s} }
func (s *Store) Profiles() domain.ProfileRepository           { return &profileRepo{s} }
func (s *Store) Companies() domain.CompanyProfileRepository   { return &companyRepo{s} }
func (s *Store) Jobs() domain.JobRepository                   { return &jobRepo{s} }
func (s *Store) Applications() domain.ApplicationRepository   { return &applicationRepo{s} }
func (s *Store) Notifications() domain.NotificationRepository { return &notificationRepo{s} }
func (s *Store) Messages() domain.MessageRepository           { return &messageRepo{s} }

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// nextID must be called with mu held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// tick returns strictly increasing timestamps so newest-first ordering is stable.
func (s *Store) tick() time.Time {
	return s.now().Add(time.Duration(s.seq) * time.Microsecond)
}

func notFound(op string) error { return errors.Wrap(domain.ErrNotFound, op) }
func conflict(op string) error { return errors.Wrap(domain.ErrConflict, op) }
