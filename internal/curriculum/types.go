package curriculum

// Curriculum is a full structured learning plan for a skill.
type Curriculum struct {
	Modules       []Module     `json:"modules"`
	WeeklyRoadmap []WeeklyPlan `json:"weeklyRoadmap"`
}

// Module is an ordered unit of the curriculum.
type Module struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedWeeks int     `json:"estimatedWeeks"`
	Topics         []Topic `json:"topics"`
}

// Topic is a concept within a module.
type Topic struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Subtopics   []Subtopic `json:"subtopics"`
}

// Subtopic is the smallest teachable unit; lessons are generated per subtopic.
type Subtopic struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	EstimatedHours float64 `json:"estimatedHours"`
}

// WeeklyPlan maps one study week onto topics and goals.
type WeeklyPlan struct {
	Week     int      `json:"week"`
	TopicIDs []string `json:"topicIds"`
	Hours    float64  `json:"hours"`
	Goals    []string `json:"goals"`
}

// Difficulty grades a topic for the learner.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DefaultWeeks is used when the caller does not specify a roadmap length.
const DefaultWeeks = 12

// Input holds the parameters for one curriculum generation.
type Input struct {
	// Skill is what the learner wants to learn, e.g. "Python".
	Skill string

	// Level is the learner's self-assessed starting level.
	Level string

	// HoursPerWeek is the learner's weekly time budget.
	HoursPerWeek int

	// Weeks is the requested roadmap length. The roadmap must contain
	// exactly this many entries. Zero means DefaultWeeks.
	Weeks int
}

// normalized returns a copy with defaults applied.
func (in Input) normalized() Input {
	if in.Weeks <= 0 {
		in.Weeks = DefaultWeeks
	}
	return in
}
