package models

import "github.com/lib/pq"

// Coach is a team administrator account. Owns the roster and matches.
// Lives in the "users" table to match the schema the frontends talk to.
type Coach struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	PasswordHash string `gorm:"not null" json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	TeamName     string `json:"team_name"`
	TeamCode     string `gorm:"uniqueIndex;not null;type:varchar(8)" json:"team_code"` // stored uppercase
	AvatarURL    string `json:"avatar_url,omitempty"`

	// Saved bowling alley names, in display order. Empty = use defaults.
	SavedLocations pq.StringArray `gorm:"type:text[]" json:"saved_locations,omitempty"`

	Timestamps
}

func (Coach) TableName() string {
	return "users"
}

// Session is an opaque login token handed out at signup/login.
type Session struct {
	ID     string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Token  string `gorm:"uniqueIndex;not null" json:"token"`
	UserID string `gorm:"index;not null" json:"user_id"`
	Role   string `gorm:"type:varchar(16);default:'coach'" json:"role"` // coach | student

	Timestamps
}
