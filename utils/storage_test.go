package utils

import (
	"strings"
	"testing"
)

func TestAvatarKeySlugsTeamName(t *testing.T) {
	key := AvatarKey("Pascack Hills Bowling", ".jpg")

	if !strings.HasPrefix(key, "avatars/pascack-hills-bowling-") {
		t.Fatalf("unexpected key prefix: %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected .jpg suffix, got %q", key)
	}
}

func TestAvatarKeyDefaults(t *testing.T) {
	key := AvatarKey("", "")

	if !strings.HasPrefix(key, "avatars/coach-") {
		t.Fatalf("empty team name should fall back to coach prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".png") {
		t.Fatalf("missing extension should default to .png, got %q", key)
	}
}

func TestAvatarKeysAreUnique(t *testing.T) {
	if AvatarKey("Eagles", ".png") == AvatarKey("Eagles", ".png") {
		t.Fatal("expected distinct keys for repeated uploads")
	}
}
