package lesson

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a skilled instructor writing a focused lesson for a self-directed learner. Teach one subtopic clearly and practically.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subtopic: %s\n", in.SubtopicTitle)
	fmt.Fprintf(&b, "Skill: %s\n", in.Skill)
	fmt.Fprintf(&b, "Level: %s\n", in.Level)

	b.WriteString(`
Instructions:
Write one complete lesson:
1. A short title and a one-sentence learning objective.
2. Content of 300-500 words explaining the subtopic for the stated level. Use plain prose with short paragraphs.
3. 2-4 concrete examples (code snippets or worked scenarios as plain text).
4. One practice task the learner can complete using only this lesson.`)

	return b.String()
}
