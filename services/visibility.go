package services

import (
	"sort"

	"strike-master-api/models"
)

// MatchView is a match annotated with the requesting coach's rights.
type MatchView struct {
	models.Match
	CanEdit bool `json:"can_edit"`
	IsOwner bool `json:"is_owner"`
}

// SharedCoachInfo describes one coach a match is shared with, for the
// owner's share-management view.
type SharedCoachInfo struct {
	CoachID  string `json:"coach_id"`
	CanEdit  bool   `json:"can_edit"`
	Email    string `json:"email"`
	TeamCode string `json:"team_code"`
}

// editAuthorized reports whether coachID may modify the match: owners
// always may, guests only through a permission row with can_edit set.
// perm is the row found for (match, coach), nil when none exists.
func editAuthorized(match models.Match, coachID string, perm *models.MatchPermission) bool {
	if match.CoachID == coachID {
		return true
	}
	return perm != nil && perm.CanEdit
}

// MergeMatchVisibility merges a coach's own matches with matches shared
// to them. An owned match always wins over a shared entry for the same
// id. sharedEdit maps match id to the permission row's can_edit flag.
// The result is sorted by match date descending; matches without a date
// sort as earliest (end of the list).
func MergeMatchVisibility(owned, shared []models.Match, sharedEdit map[string]bool) []MatchView {
	views := make([]MatchView, 0, len(owned)+len(shared))
	seen := make(map[string]bool, len(owned))

	for _, m := range owned {
		seen[m.ID] = true
		views = append(views, MatchView{Match: m, CanEdit: true, IsOwner: true})
	}
	for _, m := range shared {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		views = append(views, MatchView{Match: m, CanEdit: sharedEdit[m.ID], IsOwner: false})
	}

	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i].MatchDate, views[j].MatchDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return views
}
