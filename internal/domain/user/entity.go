package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages employees, departments, leaves and salaries
	RoleEmployee Role = "employee" // Regular employee
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	ProfileImage string // storage key, empty when no image was uploaded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the projection of a user that is safe to return to clients.
type PublicUser struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Role         Role   `json:"role,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Public drops the password hash. imageURL is the resolved profile image URL.
func (u *User) Public(imageURL string) PublicUser {
	return PublicUser{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		ProfileImage: imageURL,
	}
}
