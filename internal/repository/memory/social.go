package memory

import (
	"context"
	"encoding/json"
	"sort"

	"job-portal-backend/internal/domain"
)

type companyRepo struct{ s *Store }

func cloneCompany(p *domain.CompanyProfile) domain.CompanyProfile {
	cp := *p
	cp.Jobs = append([]json.RawMessage{}, p.Jobs...)
	cp.Reviews = append([]json.RawMessage{}, p.Reviews...)
	return cp
}

func (r *companyRepo) List(_ context.Context) ([]domain.CompanyProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.CompanyProfile{}
	for _, p := range r.s.companies {
		out = append(out, cloneCompany(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *companyRepo) GetByID(_ context.Context, id int64) (*domain.CompanyProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.companies[id]
	if !ok {
		return nil, notFound("get company")
	}
	cp := cloneCompany(p)
	return &cp, nil
}

func (r *companyRepo) Update(_ context.Context, id int64, u *domain.CompanyProfileUpdate) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.companies[id]
	if !ok {
		return false, nil
	}
	p.CompanyName, p.Logo, p.About, p.Industry, p.Headquarters = u.CompanyName, u.Logo, u.About, u.Industry, u.Headquarters
	p.CompanySize, p.Founded, p.Website, p.Email, p.ContactName = u.CompanySize, u.Founded, u.Website, u.Email, u.ContactName
	return true, nil
}

func (r *companyRepo) ListEmployers(_ context.Context) ([]domain.EmployerSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.EmployerSummary{}
	for _, u := range r.s.users {
		if u.Role != domain.RoleEmployer {
			continue
		}
		e := domain.EmployerSummary{ID: u.ID, Name: u.Name, CompanyName: u.CompanyName, Industry: u.Industry, CompanySize: u.CompanySize}
		if p, ok := r.s.companies[u.ID]; ok {
			e.CompanyName, e.Logo = p.CompanyName, p.Logo
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(_ context.Context, n *domain.Notification) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[n.UserID]; !ok {
		return notFound("insert notification: user")
	}
	n.ID = s.nextID()
	n.CreatedAt = s.tick()
	n.Read = false
	cp := *n
	s.notifications[n.ID] = &cp
	return nil
}

func (r *notificationRepo) ListByUser(_ context.Context, userID int64) ([]domain.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Notification{}
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *notificationRepo) CountUnread(_ context.Context, userID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, x := range r.s.notifications {
		if x.UserID == userID && !x.Read {
			n++
		}
	}
	return n, nil
}

func (r *notificationRepo) MarkRead(_ context.Context, id, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	n.Read = true
	return true, nil
}

func (r *notificationRepo) Delete(_ context.Context, id, userID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok || n.UserID != userID {
		return false, nil
	}
	delete(r.s.notifications, id)
	return true, nil
}

type messageRepo struct{ s *Store }

func (r *messageRepo) Create(_ context.Context, m *domain.Message) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextID()
	m.SentAt = s.tick()
	s.messages = append(s.messages, *m)
	return nil
}

func (r *messageRepo) ListForUser(_ context.Context, userID int64) ([]domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Message{}
	for i := len(r.s.messages) - 1; i >= 0; i-- {
		m := r.s.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}
