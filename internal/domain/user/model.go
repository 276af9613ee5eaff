package user

import "time"

type Role string

const (
	RoleAgent  Role = "agent"
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAgent, RoleClient, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `gorm:"index;size:16" json:"role"`
	Name         string `gorm:"size:255" json:"name"`
	Phone        string `gorm:"size:32" json:"phone,omitempty"`

	// Populated only when Role is agent.
	LicenseNumber string `gorm:"size:64" json:"licenseNumber,omitempty"`
	Brokerage     string `gorm:"size:255" json:"brokerage,omitempty"`

	IsActive  bool `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time
}

// UserView is the public shape of a user; agent-only fields are omitted
// for other roles.
type UserView struct {
	ID            uint   `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Role          Role   `json:"role"`
	Phone         string `json:"phone,omitempty"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	Brokerage     string `json:"brokerage,omitempty"`
	IsActive      bool   `json:"isActive"`
}

func (u User) View() UserView {
	v := UserView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		Phone:    u.Phone,
		IsActive: u.IsActive,
	}
	if u.Role == RoleAgent {
		v.LicenseNumber = u.LicenseNumber
		v.Brokerage = u.Brokerage
	}
	return v
}
