package memory

import (
	"context"
	"sort"

	"job-portal-backend/internal/domain"
)

type applicationRepo struct{ s *Store }

func (r *applicationRepo) Create(_ context.Context, app *domain.JobApplication) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[app.JobID]; !ok {
		return notFound("insert application: job")
	}
	for _, a := range s.applications {
		if a.UserID == app.UserID && a.JobID == app.JobID {
			return conflict("insert application")
		}
	}
	app.ID = s.nextID()
	app.AppliedAt = s.tick()
	cp := *app
	s.applications[app.ID] = &cp
	return nil
}

func (r *applicationRepo) Exists(_ context.Context, userID, jobID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.UserID == userID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) UpdateStatus(_ context.Context, id int64, status string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applications[id]
	if !ok {
		return false, nil
	}
	a.Status = status
	return true, nil
}

func (r *applicationRepo) Delete(_ context.Context, userID, jobID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.applications {
		if a.UserID == userID && a.JobID == jobID {
			delete(r.s.applications, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) ListByJob(_ context.Context, jobID int64) ([]domain.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.JobApplication{}
	for _, a := range r.s.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

func (r *applicationRepo) ListAppliedJobs(_ context.Context, userID int64) ([]domain.AppliedJob, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.AppliedJob{}
	for _, a := range r.s.applications {
		if a.UserID != userID {
			continue
		}
		j, ok := r.s.jobs[a.JobID]
		if !ok {
			continue
		}
		out = append(out, domain.AppliedJob{
			Job:               cloneJob(j),
			ApplicationID:     a.ID,
			ApplicationStatus: a.Status,
			AppliedAt:         a.AppliedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

// ApplicationCount returns the number of applications for a (user, job) pair.
func (s *Store) ApplicationCount(userID, jobID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.applications {
		if a.UserID == userID && a.JobID == jobID {
			n++
		}
	}
	return n
}
