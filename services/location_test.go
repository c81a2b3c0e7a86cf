package services

import "testing"

func TestDefaultLocationsFixedList(t *testing.T) {
	want := []string{"Montvale Lanes", "Bowler City", "Lodi Lanes", "Parkway Lanes", "Holiday Bowl"}

	got := DefaultLocations()
	if len(got) != len(want) {
		t.Fatalf("expected %d default locations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("default location %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultLocationsReturnsCopy(t *testing.T) {
	first := DefaultLocations()
	first[0] = "mutated"

	if DefaultLocations()[0] != "Montvale Lanes" {
		t.Fatal("callers must not be able to mutate the default list")
	}
}

func TestAppendLocationSkipsDuplicates(t *testing.T) {
	locations := []string{"Montvale Lanes", "Bowler City"}

	locations = appendLocation(locations, "Bowler City")
	if len(locations) != 2 {
		t.Fatalf("duplicate should not be appended, got %v", locations)
	}

	locations = appendLocation(locations, "New Lanes")
	if len(locations) != 3 || locations[2] != "New Lanes" {
		t.Fatalf("new location should be appended last, got %v", locations)
	}
}
