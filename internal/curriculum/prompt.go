package curriculum

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert curriculum designer for self-directed learners. You create structured, realistic learning plans that fit the learner's available time and starting level.`

// buildUserMessage constructs the user message for curriculum generation.
func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", in.Skill)
	fmt.Fprintf(&b, "Level: %s\n", in.Level)
	fmt.Fprintf(&b, "Hours per week: %d\n", in.HoursPerWeek)
	fmt.Fprintf(&b, "Duration: %d weeks\n", in.Weeks)

	fmt.Fprintf(&b, `
Instructions:
Create a complete curriculum for this learner:
1. Break the skill into 3-6 modules, ordered from foundations to advanced work. Each module has a short id, title, description, estimated weeks, and 2-5 topics.
2. Each topic has an id, title, description, a difficulty of "beginner", "intermediate" or "advanced", and 2-4 subtopics with estimated hours.
3. Build a weekly roadmap with EXACTLY %d entries, numbered week 1 through week %d. This count is a hard requirement, not a suggestion.
4. Every week references topic ids that exist in the modules, totals about %d hours, and lists 2-3 concrete goals.
5. Keep estimates realistic for the stated level and time budget.`,
		in.Weeks, in.Weeks, in.HoursPerWeek)

	return b.String()
}
