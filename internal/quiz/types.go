package quiz

// Quiz is a set of multiple-choice questions for one lesson.
type Quiz struct {
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// MaxExcerptLen bounds how much lesson content is embedded in the prompt.
const MaxExcerptLen = 500

// Input holds the parameters for one quiz generation.
type Input struct {
	// LessonTitle names the lesson being tested.
	LessonTitle string

	// ContentExcerpt is the lesson content the questions should cover.
	// Truncated to MaxExcerptLen characters before prompting.
	ContentExcerpt string
}

// excerpt returns the content excerpt capped at MaxExcerptLen.
func (in Input) excerpt() string {
	if len(in.ContentExcerpt) > MaxExcerptLen {
		return in.ContentExcerpt[:MaxExcerptLen]
	}
	return in.ContentExcerpt
}
