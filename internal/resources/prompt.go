package resources

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a learning resource curator. You recommend real, well-regarded materials and never invent links.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", in.TopicTitle)
	fmt.Fprintf(&b, "Skill: %s\n", in.Skill)
	fmt.Fprintf(&b, "Level: %s\n", in.Level)

	b.WriteString(`
Instructions:
Recommend 8-10 resources for this topic:
1. Mix types: "book", "course", "article", "video".
2. For each: type, title, author or source if known, level, estimated time if known, a one-sentence reason it fits this learner, and a short description.
3. Only include a URL you are confident is real. NEVER invent placeholder links such as example.com. If you do not know a real URL, use "#" exactly.`)

	return b.String()
}
