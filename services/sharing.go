package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"strike-master-api/models"
)

// CoachRef is the minimal coach identity needed for share resolution.
type CoachRef struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	TeamCode string `json:"team_code"`
}

// CoachDirectory looks up coaches by the identifiers other coaches know
// them by. The DB-backed implementation is gormCoachDirectory; tests use
// an in-memory fake.
type CoachDirectory interface {
	FindByEmail(email string) (*CoachRef, error)
	FindByTeamCode(code string) (*CoachRef, error)
}

// ShareRequest is one entry of a sharedCoaches list as sent by clients.
// Either CoachID is set directly, or Identifier carries an email/team code.
type ShareRequest struct {
	CoachID    string `json:"coachId"`
	Identifier string `json:"identifier"`
	CanEdit    bool   `json:"canEdit"`
}

// ResolvedShare is a deduplicated (coach, edit flag) pair ready to be
// written as a MatchPermission row.
type ResolvedShare struct {
	CoachID string
	CanEdit bool
}

// ResolveIdentifier maps a free-text identifier to a coach. Emails are
// matched case-insensitively; anything without an '@' is treated as a
// team code and uppercased. Empty input and lookup failures both yield
// nil so share resolution stays best-effort.
func ResolveIdentifier(dir CoachDirectory, raw string) *CoachRef {
	identifier := strings.TrimSpace(raw)
	if identifier == "" {
		return nil
	}

	var (
		ref *CoachRef
		err error
	)
	if strings.Contains(identifier, "@") {
		ref, err = dir.FindByEmail(strings.ToLower(identifier))
	} else {
		ref, err = dir.FindByTeamCode(strings.ToUpper(identifier))
	}
	if err != nil {
		return nil
	}
	return ref
}

// ResolveShareList turns a client share list into deduplicated
// (coach_id, can_edit) pairs. Entries resolving to the owner are
// silently dropped; an identifier that resolves to nobody fails the
// whole call so no partial share list is ever accepted. On duplicate
// coach ids the first occurrence's edit flag wins.
func ResolveShareList(dir CoachDirectory, ownerID string, entries []ShareRequest) ([]ResolvedShare, error) {
	resolved := make([]ResolvedShare, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, entry := range entries {
		coachID := entry.CoachID
		if coachID == "" {
			ref := ResolveIdentifier(dir, entry.Identifier)
			if ref == nil {
				return nil, fmt.Errorf("no coach found for identifier %q", entry.Identifier)
			}
			coachID = ref.ID
		}

		if coachID == ownerID || seen[coachID] {
			continue
		}
		seen[coachID] = true
		resolved = append(resolved, ResolvedShare{CoachID: coachID, CanEdit: entry.CanEdit})
	}

	return resolved, nil
}

type gormCoachDirectory struct {
	db *gorm.DB
}

// NewCoachDirectory returns the DB-backed CoachDirectory.
func NewCoachDirectory(db *gorm.DB) CoachDirectory {
	return &gormCoachDirectory{db: db}
}

func (d *gormCoachDirectory) FindByEmail(email string) (*CoachRef, error) {
	var ref CoachRef
	err := d.db.Model(&models.Coach{}).
		Select("id, email, team_code").
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Take(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (d *gormCoachDirectory) FindByTeamCode(code string) (*CoachRef, error) {
	var ref CoachRef
	err := d.db.Model(&models.Coach{}).
		Select("id, email, team_code").
		Where("UPPER(team_code) = ?", strings.ToUpper(code)).
		Take(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
