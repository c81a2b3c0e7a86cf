package models

// Student is a restricted team-member login bound to one coach via team code.
type Student struct {
	ID           string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"` // stored lowercase
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	CoachID      string `gorm:"index;not null" json:"coach_id"`
	TeamCode     string `gorm:"not null;type:varchar(8)" json:"team_code"`

	Timestamps
}
