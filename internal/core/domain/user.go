package domain

import "time"

// Role is the closed set of roles a user profile can hold.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTranslator Role = "translator"
	RoleEditor     Role = "editor"
	RoleClient     Role = "client"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTranslator, RoleEditor, RoleClient:
		return true
	}
	return false
}

// UserProfile is the internal user record tied one-to-one to an identity
// managed by the external provider. Profiles are created and deleted only
// through the provider's lifecycle webhook; the role is mutated only by
// privileged actors.
type UserProfile struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       Role      `json:"role"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
