package lesson

// Lesson is a generated teaching unit for one subtopic.
type Lesson struct {
	Title        string   `json:"title"`
	Objective    string   `json:"objective"`
	Content      string   `json:"content"`
	Examples     []string `json:"examples"`
	PracticeTask string   `json:"practiceTask"`
}

// Input holds the parameters for one lesson generation.
type Input struct {
	// SubtopicTitle names the subtopic this lesson teaches.
	SubtopicTitle string

	// Skill is the broader skill being learned, for context.
	Skill string

	// Level is the learner's starting level.
	Level string
}
