package services

import (
	"encoding/json"
	"testing"

	"strike-master-api/models"
)

func TestEditAuthorized(t *testing.T) {
	match := models.Match{ID: "m1", CoachID: "owner"}

	if !editAuthorized(match, "owner", nil) {
		t.Fatal("owner must always be allowed to edit")
	}
	if editAuthorized(match, "guest", nil) {
		t.Fatal("guest without a permission row must be rejected")
	}

	readOnly := &models.MatchPermission{MatchID: "m1", CoachID: "guest", CanEdit: false}
	if editAuthorized(match, "guest", readOnly) {
		t.Fatal("guest with a read-only permission must be rejected")
	}

	editable := &models.MatchPermission{MatchID: "m1", CoachID: "guest", CanEdit: true}
	if !editAuthorized(match, "guest", editable) {
		t.Fatal("guest with can_edit permission must be allowed")
	}
}

// An absent sharedCoaches field must decode differently from an explicit
// empty list: nil leaves existing shares untouched, empty clears them.
func TestMatchPayloadSharedCoachesAbsentVsEmpty(t *testing.T) {
	var absent matchPayload
	if err := json.Unmarshal([]byte(`{"coachId":"c1"}`), &absent); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if absent.SharedCoaches != nil {
		t.Fatalf("absent field should decode to nil pointer, got %+v", absent.SharedCoaches)
	}

	var empty matchPayload
	if err := json.Unmarshal([]byte(`{"coachId":"c1","sharedCoaches":[]}`), &empty); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if empty.SharedCoaches == nil {
		t.Fatal("explicit empty list should decode to non-nil pointer")
	}
	if len(*empty.SharedCoaches) != 0 {
		t.Fatalf("expected empty share list, got %+v", *empty.SharedCoaches)
	}

	// The update path keys the replace-vs-leave decision on pointer
	// nilness, so the two decodings must drive different branches.
	if (absent.SharedCoaches != nil) == (empty.SharedCoaches != nil) {
		t.Fatal("absent and empty sharedCoaches must be distinguishable")
	}
}

func TestMatchPayloadSharedCoachesEntries(t *testing.T) {
	var body matchPayload
	data := []byte(`{"coachId":"c1","sharedCoaches":[{"identifier":"ABC123","canEdit":true},{"coachId":"c2"}]}`)
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	entries := *body.SharedCoaches
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Identifier != "ABC123" || !entries[0].CanEdit {
		t.Fatalf("first entry wrong: %+v", entries[0])
	}
	if entries[1].CoachID != "c2" || entries[1].CanEdit {
		t.Fatalf("second entry wrong: %+v", entries[1])
	}
}
