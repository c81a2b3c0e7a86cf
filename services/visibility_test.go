package services

import (
	"testing"
	"time"

	"strike-master-api/models"
)

func datePtr(value string) *time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestMergeMatchVisibilityAnnotations(t *testing.T) {
	owned := []models.Match{{ID: "m1", CoachID: "me", MatchDate: datePtr("2026-01-10")}}
	shared := []models.Match{
		{ID: "m2", CoachID: "other", MatchDate: datePtr("2026-01-05")},
		{ID: "m3", CoachID: "other", MatchDate: datePtr("2026-01-01")},
	}
	sharedEdit := map[string]bool{"m2": true, "m3": false}

	views := MergeMatchVisibility(owned, shared, sharedEdit)
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}

	byID := map[string]MatchView{}
	for _, v := range views {
		byID[v.ID] = v
	}

	if v := byID["m1"]; !v.IsOwner || !v.CanEdit {
		t.Fatalf("owned match should have is_owner and can_edit set: %+v", v)
	}
	if v := byID["m2"]; v.IsOwner || !v.CanEdit {
		t.Fatalf("editable shared match wrong: %+v", v)
	}
	if v := byID["m3"]; v.IsOwner || v.CanEdit {
		t.Fatalf("read-only shared match wrong: %+v", v)
	}
}

func TestMergeMatchVisibilityOwnerPrecedence(t *testing.T) {
	owned := []models.Match{{ID: "m1", CoachID: "me"}}
	// A shared entry for the same id should not happen by construction,
	// but the owner record wins if it does.
	shared := []models.Match{{ID: "m1", CoachID: "me"}}

	views := MergeMatchVisibility(owned, shared, map[string]bool{"m1": false})
	if len(views) != 1 {
		t.Fatalf("expected 1 view after dedup, got %d", len(views))
	}
	if !views[0].IsOwner || !views[0].CanEdit {
		t.Fatalf("owner record should win: %+v", views[0])
	}
}

func TestMergeMatchVisibilitySortsByDateDescending(t *testing.T) {
	owned := []models.Match{
		{ID: "old", MatchDate: datePtr("2025-09-01")},
		{ID: "undated"},
		{ID: "new", MatchDate: datePtr("2026-02-01")},
	}
	shared := []models.Match{{ID: "mid", MatchDate: datePtr("2025-12-15")}}

	views := MergeMatchVisibility(owned, shared, map[string]bool{"mid": true})

	got := make([]string, len(views))
	for i, v := range views {
		got[i] = v.ID
	}
	want := []string{"new", "mid", "old", "undated"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestMergeMatchVisibilityEmptyInput(t *testing.T) {
	views := MergeMatchVisibility(nil, nil, nil)
	if len(views) != 0 {
		t.Fatalf("expected empty result, got %+v", views)
	}
}
