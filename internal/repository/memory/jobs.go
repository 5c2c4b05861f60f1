package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"

	"job-portal-backend/internal/domain"
)

type jobRepo struct{ s *Store }

func cloneJob(j *domain.Job) domain.Job {
	cp := *j
	cp.Skills = append([]string{}, j.Skills...)
	return cp
}

func sortJobs(jobs []domain.Job) {
	sort.Slice(jobs, func(a, b int) bool {
		if !jobs[a].DatePosted.Equal(jobs[b].DatePosted) {
			return jobs[a].DatePosted.After(jobs[b].DatePosted)
		}
		return jobs[a].ID > jobs[b].ID
	})
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (r *jobRepo) Create(_ context.Context, job *domain.Job) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[job.PostedBy]; !ok {
		return notFound("insert job: poster")
	}
	job.ID = s.nextID()
	if job.DatePosted.IsZero() {
		job.DatePosted = s.tick()
	}
	cp := cloneJob(job)
	s.jobs[job.ID] = &cp
	return nil
}

func (r *jobRepo) ListActive(_ context.Context, f domain.JobFilter) ([]domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q := strings.TrimSpace(f.Query)
	out := []domain.Job{}
	for _, j := range r.s.jobs {
		if j.Status != domain.JobStatusActive {
			continue
		}
		if q != "" && !containsFold(j.Title, q) && !containsFold(j.Company, q) && !containsFold(j.Description, q) {
			continue
		}
		if f.Location != "" && !containsFold(j.Location, f.Location) {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		out = append(out, cloneJob(j))
	}
	sortJobs(out)

	if f.Page > 0 {
		size := f.PageSize
		if size <= 0 {
			size = 50
		}
		chunks := lo.Chunk(out, size)
		if f.Page > len(chunks) {
			return []domain.Job{}, nil
		}
		return chunks[f.Page-1], nil
	}
	return out, nil
}

func (r *jobRepo) FetchActiveAndCountView(_ context.Context, id int64) (*domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok || j.Status != domain.JobStatusActive {
		return nil, notFound("fetch job")
	}
	j.Views++
	cp := cloneJob(j)
	return &cp, nil
}

func (r *jobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	j, ok := r.s.jobs[id]
	if !ok {
		return nil, notFound("get job")
	}
	cp := cloneJob(j)
	return &cp, nil
}

func (r *jobRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Job{}
	for _, j := range r.s.jobs {
		if j.PostedBy == ownerID {
			out = append(out, cloneJob(j))
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *jobRepo) DeleteOwned(_ context.Context, id, ownerID int64) (bool, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok || j.PostedBy != ownerID {
		return false, nil
	}
	delete(s.jobs, id)

	// ON DELETE CASCADE
	for k := range s.saved {
		if k.jobID == id {
			delete(s.saved, k)
		}
	}
	for appID, a := range s.applications {
		if a.JobID == id {
			delete(s.applications, appID)
		}
	}
	s.reports = lo.Filter(s.reports, func(rep domain.JobReport, _ int) bool { return rep.JobID != id })
	return true, nil
}

func (r *jobRepo) Save(_ context.Context, userID, jobID int64) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[jobID]; !ok {
		return notFound("save job")
	}
	k := pair{userID, jobID}
	if _, exists := s.saved[k]; !exists {
		s.saved[k] = s.tick()
	}
	return nil
}

func (r *jobRepo) Unsave(_ context.Context, userID, jobID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := pair{userID, jobID}
	if _, ok := r.s.saved[k]; !ok {
		return false, nil
	}
	delete(r.s.saved, k)
	return true, nil
}

func (r *jobRepo) IsSaved(_ context.Context, userID, jobID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.saved[pair{userID, jobID}]
	return ok, nil
}

func (r *jobRepo) ListSaved(_ context.Context, userID int64) ([]domain.Job, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	type entry struct {
		job     domain.Job
		savedAt int64
	}
	var entries []entry
	for k, at := range r.s.saved {
		if k.userID != userID {
			continue
		}
		if j, ok := r.s.jobs[k.jobID]; ok {
			entries = append(entries, entry{cloneJob(j), at.UnixNano()})
		}
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].savedAt > entries[b].savedAt })
	out := lo.Map(entries, func(e entry, _ int) domain.Job { return e.job })
	if out == nil {
		out = []domain.Job{}
	}
	return out, nil
}

func (r *jobRepo) Report(_ context.Context, rep *domain.JobReport) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[rep.JobID]; !ok {
		return notFound("insert report")
	}
	rep.ID = s.nextID()
	rep.CreatedAt = s.tick()
	s.reports = append(s.reports, *rep)
	return nil
}

func (r *jobRepo) IsReported(_ context.Context, userID, jobID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return lo.ContainsBy(r.s.reports, func(rep domain.JobReport) bool {
		return rep.UserID == userID && rep.JobID == jobID
	}), nil
}

// ReportCount returns how many reports exist for a job.
func (s *Store) ReportCount(jobID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.CountBy(s.reports, func(rep domain.JobReport) bool { return rep.JobID == jobID })
}
