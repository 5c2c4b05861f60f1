package memory

import (
	"context"
	"sort"
	"strings"

	"job-portal-backend/internal/domain"
)

type userRepo struct{ s *Store }

// uniqueLocked reports whether email and phone are free, ignoring exceptID.
func (s *Store) uniqueLocked(email, phone string, exceptID int64) bool {
	for id, u := range s.users {
		if id == exceptID {
			continue
		}
		if strings.EqualFold(u.Email, email) || u.Phone == phone {
			return false
		}
	}
	return true
}

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.uniqueLocked(user.Email, user.Phone, 0) {
		return conflict("insert user")
	}
	user.ID = s.nextID()
	user.CreatedAt = s.tick()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) CreateEmployer(_ context.Context, user *domain.User, profile *domain.CompanyProfile) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.uniqueLocked(user.Email, user.Phone, 0) {
		return conflict("insert employer")
	}
	user.ID = s.nextID()
	user.CreatedAt = s.tick()
	u := *user
	s.users[user.ID] = &u

	profile.ID = user.ID
	profile.CreatedAt = user.CreatedAt
	p := *profile
	s.companies[p.ID] = &p
	return nil
}

func (r *userRepo) ExistsByEmailOrPhone(_ context.Context, email, phone string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return !r.s.uniqueLocked(email, phone, 0), nil
}

func (r *userRepo) GetByIdentifierAndRole(_ context.Context, identifier, role string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if (strings.EqualFold(u.Email, identifier) || u.Phone == identifier) && u.Role == role {
			cp := *u
			return &cp, nil
		}
	}
	return nil, notFound("get user by identifier")
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, notFound("get user")
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) ListByRole(_ context.Context, role string) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.User{}
	for _, u := range r.s.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) UpdateResume(_ context.Context, id int64, path string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return notFound("update resume")
	}
	u.ResumeLink = path
	return nil
}

type profileRepo struct{ s *Store }

func (r *profileRepo) Get(_ context.Context, userID int64) (*domain.Profile, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, notFound("get profile")
	}
	creds := s.credentials[userID]
	p := &domain.Profile{
		User:           *u,
		Education:      cloneCreds(creds["education"]),
		Experience:     cloneCreds(creds["experience"]),
		Certifications: cloneCreds(creds["certifications"]),
		Languages:      append([]string{}, s.languages[userID]...),
	}
	return p, nil
}

func (r *profileRepo) Update(_ context.Context, userID int64, upd *domain.ProfileUpdate) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return notFound("update user")
	}
	if !s.uniqueLocked(upd.Email, upd.Phone, userID) {
		return conflict("update user")
	}

	u.Name, u.Email, u.Phone, u.Location = upd.Name, upd.Email, upd.Phone, upd.Location
	keep := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	keep(&u.LinkedIn, upd.LinkedIn)
	keep(&u.GitHub, upd.GitHub)
	keep(&u.Skills, upd.Skills)
	keep(&u.Hobbies, upd.Hobbies)
	keep(&u.Availability, upd.Availability)
	keep(&u.PreferredJobType, upd.PreferredJobType)
	keep(&u.Portfolio, upd.Portfolio)
	keep(&u.Bio, upd.Bio)
	keep(&u.ResumeLink, upd.ResumeLink)
	keep(&u.ProfilePic, upd.ProfilePic)

	if s.credentials[userID] == nil {
		s.credentials[userID] = map[string][]domain.Credential{}
	}
	if upd.Education != nil {
		s.credentials[userID]["education"] = cloneCreds(*upd.Education)
	}
	if upd.Experience != nil {
		s.credentials[userID]["experience"] = cloneCreds(*upd.Experience)
	}
	if upd.Certifications != nil {
		s.credentials[userID]["certifications"] = cloneCreds(*upd.Certifications)
	}
	if upd.Languages != nil {
		s.languages[userID] = append([]string{}, (*upd.Languages)...)
	}
	return nil
}

func cloneCreds(in []domain.Credential) []domain.Credential {
	return append([]domain.Credential{}, in...)
}
