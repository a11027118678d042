package fallback

import (
	"regexp"
	"testing"
)

func TestNewLocalIDShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{10,}-[0-9a-f]{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewLocalID()
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected local ID %q", id)
		}
		seen[id] = true
	}
	if len(seen) < 90 {
		t.Errorf("local IDs collide too often: %d unique of 100", len(seen))
	}
}
