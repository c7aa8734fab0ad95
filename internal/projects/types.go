package projects

// Project is a practice project idea tied to a curriculum module.
type Project struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	TechStack    []string   `json:"techStack"`
	Skills       []string   `json:"skills"`
	Difficulty   Difficulty `json:"difficulty"`
}

// Difficulty grades a project for the learner.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Input holds the parameters for one project-ideas generation.
type Input struct {
	// ModuleTitle names the curriculum module the projects exercise.
	ModuleTitle string

	// Skill is the broader skill being learned.
	Skill string

	// Level is the learner's starting level.
	Level string
}
