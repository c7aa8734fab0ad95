package lesson

import "fmt"

// Fallback builds a minimal schema-valid lesson templated entirely from
// the input, with no LLM content.
func Fallback(in Input) *Lesson {
	return &Lesson{
		Title:     in.SubtopicTitle,
		Objective: fmt.Sprintf("Understand the basics of %s.", in.SubtopicTitle),
		Content: fmt.Sprintf(
			"This lesson introduces %s as part of learning %s. Start by reading the official documentation on this topic, then experiment with small examples of your own until the core ideas feel familiar.",
			in.SubtopicTitle, in.Skill),
		Examples: []string{
			fmt.Sprintf("Find a small worked example of %s and reproduce it yourself.", in.SubtopicTitle),
		},
		PracticeTask: fmt.Sprintf("Write a short summary of %s in your own words and build one tiny example that uses it.", in.SubtopicTitle),
	}
}
