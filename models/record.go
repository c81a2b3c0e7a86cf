package models

// Record holds one player's per-game scores within one match.
// Unique per (match, player): re-submitting for the same pair updates
// in place via upsert. A nil game means that game was not bowled.
type Record struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	MatchID   string `gorm:"uniqueIndex:idx_record_match_player;not null" json:"match_id"`
	PlayerID  string `gorm:"uniqueIndex:idx_record_match_player;not null" json:"player_id"`
	Game1     *int   `json:"game1"`
	Game2     *int   `json:"game2"`
	Game3     *int   `json:"game3"`
	IsVarsity bool   `gorm:"default:true" json:"is_varsity"`

	Player *Player `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	Match  *Match  `gorm:"foreignKey:MatchID" json:"match,omitempty"`

	Timestamps
}
