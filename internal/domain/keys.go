package domain

type CtxKey string

const (
	// KeyActor holds the *Actor attached by the auth middleware.
	KeyActor CtxKey = "Actor"
	// KeyUploads holds the accepted uploads of the current request.
	KeyUploads CtxKey = "Uploads"
)

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// Actor is the identity decoded from a verified bearer token.
type Actor struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (a *Actor) HasRole(roles ...string) bool {
	if a == nil {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
