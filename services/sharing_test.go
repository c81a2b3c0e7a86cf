package services

import (
	"errors"
	"strings"
	"testing"
)

// fakeDirectory is an in-memory CoachDirectory keyed by lowercase email
// and uppercase team code.
type fakeDirectory struct {
	byEmail map[string]*CoachRef
	byCode  map[string]*CoachRef
}

func newFakeDirectory(coaches ...*CoachRef) *fakeDirectory {
	dir := &fakeDirectory{
		byEmail: map[string]*CoachRef{},
		byCode:  map[string]*CoachRef{},
	}
	for _, c := range coaches {
		dir.byEmail[strings.ToLower(c.Email)] = c
		dir.byCode[strings.ToUpper(c.TeamCode)] = c
	}
	return dir
}

func (d *fakeDirectory) FindByEmail(email string) (*CoachRef, error) {
	if c, ok := d.byEmail[strings.ToLower(email)]; ok {
		return c, nil
	}
	return nil, errors.New("not found")
}

func (d *fakeDirectory) FindByTeamCode(code string) (*CoachRef, error) {
	if c, ok := d.byCode[strings.ToUpper(code)]; ok {
		return c, nil
	}
	return nil, errors.New("not found")
}

func TestResolveIdentifierEmptyInput(t *testing.T) {
	dir := newFakeDirectory()
	if ref := ResolveIdentifier(dir, ""); ref != nil {
		t.Fatalf("expected nil for empty identifier, got %+v", ref)
	}
	if ref := ResolveIdentifier(dir, "   "); ref != nil {
		t.Fatalf("expected nil for whitespace identifier, got %+v", ref)
	}
}

func TestResolveIdentifierBothFormsYieldSameCoach(t *testing.T) {
	coach := &CoachRef{ID: "c1", Email: "coach@example.com", TeamCode: "ABC123"}
	dir := newFakeDirectory(coach)

	byEmail := ResolveIdentifier(dir, "Coach@Example.COM")
	if byEmail == nil || byEmail.ID != "c1" {
		t.Fatalf("email lookup failed: %+v", byEmail)
	}

	byCode := ResolveIdentifier(dir, "abc123")
	if byCode == nil || byCode.ID != "c1" {
		t.Fatalf("team code lookup failed: %+v", byCode)
	}

	if byEmail.ID != byCode.ID {
		t.Fatalf("identifier forms resolved to different coaches: %s vs %s", byEmail.ID, byCode.ID)
	}
}

func TestResolveIdentifierUnknownIsNil(t *testing.T) {
	dir := newFakeDirectory(&CoachRef{ID: "c1", Email: "coach@example.com", TeamCode: "ABC123"})
	if ref := ResolveIdentifier(dir, "nobody@example.com"); ref != nil {
		t.Fatalf("expected nil for unknown email, got %+v", ref)
	}
	if ref := ResolveIdentifier(dir, "ZZZZZZ"); ref != nil {
		t.Fatalf("expected nil for unknown team code, got %+v", ref)
	}
}

func TestResolveShareListDropsOwnerAndDuplicates(t *testing.T) {
	g1 := &CoachRef{ID: "g1", Email: "one@example.com", TeamCode: "AAAAAA"}
	g2 := &CoachRef{ID: "g2", Email: "two@example.com", TeamCode: "BBBBBB"}
	owner := &CoachRef{ID: "owner", Email: "owner@example.com", TeamCode: "CCCCCC"}
	dir := newFakeDirectory(g1, g2, owner)

	entries := []ShareRequest{
		{Identifier: "one@example.com", CanEdit: true},
		{Identifier: "owner@example.com", CanEdit: true}, // owner: dropped
		{CoachID: "g1", CanEdit: false},                  // duplicate: first wins
		{Identifier: "bbbbbb", CanEdit: false},
	}

	resolved, err := ResolveShareList(dir, "owner", entries)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 resolved shares, got %d: %+v", len(resolved), resolved)
	}
	if resolved[0].CoachID != "g1" || !resolved[0].CanEdit {
		t.Fatalf("first share wrong: %+v", resolved[0])
	}
	if resolved[1].CoachID != "g2" || resolved[1].CanEdit {
		t.Fatalf("second share wrong: %+v", resolved[1])
	}
}

func TestResolveShareListFailsAtomicallyOnUnknownIdentifier(t *testing.T) {
	dir := newFakeDirectory(&CoachRef{ID: "g1", Email: "one@example.com", TeamCode: "AAAAAA"})

	entries := []ShareRequest{
		{Identifier: "one@example.com", CanEdit: true},
		{Identifier: "missing@example.com"},
	}

	resolved, err := ResolveShareList(dir, "owner", entries)
	if err == nil {
		t.Fatal("expected error for unresolved identifier")
	}
	if !strings.Contains(err.Error(), "missing@example.com") {
		t.Fatalf("error should name the offending identifier, got %q", err.Error())
	}
	if resolved != nil {
		t.Fatalf("expected no partial share list, got %+v", resolved)
	}
}

func TestResolveShareListDirectIDSkipsResolution(t *testing.T) {
	dir := newFakeDirectory() // empty: any identifier lookup would fail

	resolved, err := ResolveShareList(dir, "owner", []ShareRequest{{CoachID: "g9", CanEdit: true}})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resolved) != 1 || resolved[0].CoachID != "g9" || !resolved[0].CanEdit {
		t.Fatalf("unexpected result: %+v", resolved)
	}
}

func TestResolveShareListEmptyInput(t *testing.T) {
	resolved, err := ResolveShareList(newFakeDirectory(), "owner", nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected empty share list, got %+v", resolved)
	}
}
