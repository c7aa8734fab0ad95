package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are writing a short multiple-choice quiz that checks understanding of a lesson. Questions must be answerable from the lesson content alone.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lesson: %s\n", in.LessonTitle)
	fmt.Fprintf(&b, "Lesson content:\n%s\n", in.excerpt())

	b.WriteString(`
Instructions:
Create exactly 5 questions:
1. Each question has an id (1-5), the question text, exactly 4 answer options, the index of the correct option (0-3), and a one-sentence explanation of the correct answer.
2. Distractors should be plausible mistakes, not obviously wrong answers.
3. Cover different parts of the lesson; do not ask the same thing twice.`)

	return b.String()
}
