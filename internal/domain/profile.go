package domain

import "context"

// Credential is one row of education, experience or certifications.
type Credential struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Profile struct {
	User
	Education      []Credential `json:"education"`
	Experience     []Credential `json:"experience"`
	Certifications []Credential `json:"certifications"`
	Languages      []string     `json:"languages"`
}

// ProfileUpdate is the decoded multipart form of PUT /users/:id. A nil
// sub-collection leaves the stored rows untouched; a non-nil one replaces them.
type ProfileUpdate struct {
	Name             string `validate:"required,notblank"`
	Email            string `validate:"required,valid_email"`
	Phone            string `validate:"required,valid_phone"`
	Location         string `validate:"required,notblank"`
	LinkedIn         string
	GitHub           string
	Skills           string
	Hobbies          string
	Availability     string
	PreferredJobType string
	Portfolio        string
	Bio              string

	// Set from accepted uploads; empty keeps the stored path.
	ResumeLink string
	ProfilePic string

	Education      *[]Credential
	Experience     *[]Credential
	Certifications *[]Credential
	Languages      *[]string
}

// CandidateSummary is the employer-facing view of GET /candidates/:id.
type CandidateSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	ProfilePic string `json:"profile_pic"`
	ResumeLink string `json:"resume_link"`
}

type ProfileRepository interface {
	Get(ctx context.Context, userID int64) (*Profile, error)
	// Update applies the scalar fields and sub-collection replacements in one transaction.
	Update(ctx context.Context, userID int64, update *ProfileUpdate) error
}

type ProfileUsecase interface {
	Get(ctx context.Context, actor *Actor, userID int64) (*Profile, error)
	Update(ctx context.Context, actor *Actor, userID int64, update *ProfileUpdate) (*Profile, error)
	UploadResume(ctx context.Context, actor *Actor, userID int64, path string) (*User, error)
	CandidateSummary(ctx context.Context, candidateID int64) (*CandidateSummary, error)
}
