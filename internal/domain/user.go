package domain

import (
	"context"
	"time"
)

type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	Location         string    `json:"location"`
	LinkedIn         string    `json:"linkedin"`
	GitHub           string    `json:"github"`
	ResumeLink       string    `json:"resume_link"`
	ProfilePic       string    `json:"profile_pic"`
	Skills           string    `json:"skills"`
	Hobbies          string    `json:"hobbies"`
	Availability     string    `json:"availability"`
	PreferredJobType string    `json:"preferred_job_type"`
	Portfolio        string    `json:"portfolio"`
	Bio              string    `json:"bio"`
	CompanyName      string    `json:"company_name,omitempty"`
	Industry         string    `json:"industry,omitempty"`
	CompanySize      string    `json:"company_size,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// CandidateSignup is the payload of POST /signup.
type CandidateSignup struct {
	Name     string `json:"name" validate:"required,valid_name"`
	Email    string `json:"email" validate:"required,valid_email"`
	Phone    string `json:"phone" validate:"required,valid_phone"`
	Password string `json:"password" validate:"required,min=6"`
	Location string `json:"location" validate:"required,notblank"`
}

// EmployerSignup is the payload of POST /employer/signup.
type EmployerSignup struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"required,valid_email"`
	Phone       string `json:"phone" validate:"required,valid_phone"`
	Password    string `json:"password" validate:"required,min=6"`
	CompanyName string `json:"companyName" validate:"required,min=2"`
	Industry    string `json:"industry" validate:"required,notblank"`
	CompanySize string `json:"companySize" validate:"required,notblank"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,valid_identifier"`
	Password   string `json:"password" validate:"required,min=6"`
}

// LoginResult carries the issued token and the authenticated account.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *User     `json:"user"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	// CreateEmployer stores the user and its company profile atomically.
	CreateEmployer(ctx context.Context, user *User, profile *CompanyProfile) error
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)
	GetByIdentifierAndRole(ctx context.Context, identifier, role string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	UpdateResume(ctx context.Context, id int64, path string) error
}

type AuthUsecase interface {
	RegisterCandidate(ctx context.Context, req *CandidateSignup) (*User, error)
	RegisterEmployer(ctx context.Context, req *EmployerSignup) (*User, error)
	Login(ctx context.Context, req *LoginRequest, role string) (*LoginResult, error)
	Me(ctx context.Context, actor *Actor) (*User, error)
}
