package quiz

import "fmt"

// Fallback builds a single placeholder question when the model reply
// cannot be parsed. CorrectAnswer is always index 0.
func Fallback(in Input) *Quiz {
	return &Quiz{
		Questions: []Question{
			{
				ID:       1,
				Question: fmt.Sprintf("Which statement best describes the main idea of %q?", in.LessonTitle),
				Options: []string{
					"The core concept explained in the lesson",
					"An unrelated concept",
					"A deprecated technique",
					"None of the above",
				},
				CorrectAnswer: 0,
				Explanation:   fmt.Sprintf("Review the lesson %q for the main idea.", in.LessonTitle),
			},
		},
	}
}
