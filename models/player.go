package models

// Player is a roster entry owned by one coach. Never hard-deleted:
// IsActive=false hides a player from the active roster while their
// historical records stay intact.
type Player struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CoachID   string `gorm:"index;not null" json:"coach_id"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Gender    string `gorm:"type:varchar(16);not null" json:"gender"`
	GradYear  *int   `json:"grad_year,omitempty"`
	IsActive  bool   `gorm:"default:true;index" json:"is_active"`

	Timestamps
}
