package curriculum

import (
	"strings"
	"testing"
)

func TestBuildUserMessage_EmbedsParameters(t *testing.T) {
	msg := buildUserMessage(Input{Skill: "Go", Level: "beginner", HoursPerWeek: 5, Weeks: 8}.normalized())

	for _, want := range []string{"Skill: Go", "Level: beginner", "Hours per week: 5", "Duration: 8 weeks"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildUserMessage_WeekCountIsHardRequirement(t *testing.T) {
	msg := buildUserMessage(Input{Skill: "Go", Level: "beginner", HoursPerWeek: 5, Weeks: 10}.normalized())

	if !strings.Contains(msg, "EXACTLY 10 entries") {
		t.Error("prompt does not demand the exact roadmap length")
	}
	if !strings.Contains(msg, "hard requirement") {
		t.Error("prompt does not mark the count as a hard requirement")
	}
}
