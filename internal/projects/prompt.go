package projects

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a mentor proposing hands-on projects that consolidate what a learner just studied. Projects must be buildable by one person and scoped to the module.`

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s\n", in.ModuleTitle)
	fmt.Fprintf(&b, "Skill: %s\n", in.Skill)
	fmt.Fprintf(&b, "Level: %s\n", in.Level)

	b.WriteString(`
Instructions:
Propose 2-3 projects:
1. For each: a title, a short description, 3-5 concrete requirements, the tech stack, the skills it demonstrates, and a difficulty of "beginner", "intermediate" or "advanced".
2. Projects should be meaningfully different from each other in scope and focus.
3. Scope each project so it is finishable within the module's timeframe.`)

	return b.String()
}
