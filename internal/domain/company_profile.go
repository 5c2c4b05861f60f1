package domain

import (
	"context"
	"encoding/json"
	"time"
)

type CompanyProfile struct {
	ID           int64             `json:"id"`
	CompanyName  string            `json:"company_name"`
	Logo         string            `json:"logo"`
	About        string            `json:"about"`
	Industry     string            `json:"industry"`
	Headquarters string            `json:"headquarters"`
	CompanySize  string            `json:"company_size"`
	Founded      string            `json:"founded"`
	Website      string            `json:"website"`
	Rating       *float64          `json:"rating"`
	ReviewsCount int               `json:"reviewsCount"`
	Jobs         []json.RawMessage `json:"jobs"`
	Reviews      []json.RawMessage `json:"reviews"`
	Email        string            `json:"email"`
	ContactName  string            `json:"contact_name"`
	CreatedAt    time.Time         `json:"created_at"`
}

// CompanyProfileUpdate is the body of PUT /companyprofile/:userId.
type CompanyProfileUpdate struct {
	CompanyName  string `form:"company_name" json:"company_name" validate:"required,notblank"`
	Logo         string `form:"logo" json:"logo"`
	About        string `form:"about" json:"about"`
	Industry     string `form:"industry" json:"industry"`
	Headquarters string `form:"headquarters" json:"headquarters"`
	CompanySize  string `form:"company_size" json:"company_size"`
	Founded      string `form:"founded" json:"founded"`
	Website      string `form:"website" json:"website" validate:"omitempty,url"`
	Email        string `form:"email" json:"email" validate:"omitempty,valid_email"`
	ContactName  string `form:"contact_name" json:"contact_name"`
}

// EmployerSummary is one entry of the public employer directory.
type EmployerSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	Logo        string `json:"logo"`
}

type CompanyProfileRepository interface {
	List(ctx context.Context) ([]CompanyProfile, error)
	GetByID(ctx context.Context, id int64) (*CompanyProfile, error)
	Update(ctx context.Context, id int64, update *CompanyProfileUpdate) (bool, error)
	ListEmployers(ctx context.Context) ([]EmployerSummary, error)
}

type CompanyProfileUsecase interface {
	List(ctx context.Context) ([]CompanyProfile, error)
	Get(ctx context.Context, id int64) (*CompanyProfile, error)
	Update(ctx context.Context, actor *Actor, userID int64, update *CompanyProfileUpdate) (*CompanyProfile, error)
	ListEmployers(ctx context.Context) ([]EmployerSummary, error)
}
