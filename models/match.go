package models

import "time"

// Match records one competitive event against an opponent team.
// CoachID is the creator and sole owner; other coaches see the match
// only through MatchPermission rows.
type Match struct {
	ID            string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CoachID       string     `gorm:"index;not null" json:"coach_id"`
	Gender        string     `gorm:"type:varchar(16);not null" json:"gender"`
	Opponent      string     `gorm:"not null" json:"opponent"`
	MatchDate     *time.Time `gorm:"type:date;index" json:"match_date"`
	Location      string     `json:"location,omitempty"`
	OurScore      int        `gorm:"default:0" json:"our_score"`
	OpponentScore int        `gorm:"default:0" json:"opponent_score"`
	Result        string     `gorm:"type:varchar(16)" json:"result,omitempty"`
	IsComplete    bool       `gorm:"default:false" json:"is_complete"`
	Comments      string     `json:"comments,omitempty"`

	Timestamps
}

// MatchPermission grants a non-owner coach read (and optionally write)
// access to a match. Unique per (match, coach); never references the owner.
type MatchPermission struct {
	ID      string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	MatchID string `gorm:"uniqueIndex:idx_match_coach;not null" json:"match_id"`
	CoachID string `gorm:"uniqueIndex:idx_match_coach;not null" json:"coach_id"`
	CanEdit bool   `gorm:"default:false" json:"can_edit"`

	Timestamps
}
