package projects

import "fmt"

// Fallback builds a single generic project referencing the module title
// when the model reply cannot be parsed.
func Fallback(in Input) []Project {
	return []Project{
		{
			Title:       fmt.Sprintf("%s Practice Project", in.ModuleTitle),
			Description: fmt.Sprintf("Build a small project applying what you learned in %s.", in.ModuleTitle),
			Requirements: []string{
				fmt.Sprintf("Use the main concepts from %s", in.ModuleTitle),
				"Keep the scope small enough to finish in one week",
				"Write a short README describing what you built",
			},
			TechStack:  []string{in.Skill},
			Skills:     []string{in.Skill},
			Difficulty: DifficultyBeginner,
		},
	}
}
