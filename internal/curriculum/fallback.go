package curriculum

import (
	"fmt"

	"github.com/google/uuid"
)

// Fallback builds a minimal schema-valid curriculum without the LLM.
// It is pure: identical input yields an identical value, including ids.
func Fallback(in Input) *Curriculum {
	in = in.normalized()

	topicID := fallbackID("topic", in.Skill)
	topic := Topic{
		ID:          topicID,
		Title:       fmt.Sprintf("Introduction to %s", in.Skill),
		Description: fmt.Sprintf("Core concepts and first steps in %s.", in.Skill),
		Difficulty:  DifficultyBeginner,
		Subtopics: []Subtopic{
			{
				ID:             fallbackID("subtopic", in.Skill),
				Title:          fmt.Sprintf("Getting started with %s", in.Skill),
				Description:    fmt.Sprintf("Set up your environment and learn the basics of %s.", in.Skill),
				EstimatedHours: float64(in.HoursPerWeek),
			},
		},
	}

	roadmap := make([]WeeklyPlan, 0, in.Weeks)
	for week := 1; week <= in.Weeks; week++ {
		roadmap = append(roadmap, WeeklyPlan{
			Week:     week,
			TopicIDs: []string{topicID},
			Hours:    float64(in.HoursPerWeek),
			Goals: []string{
				fmt.Sprintf("Week %d: continue practicing %s fundamentals", week, in.Skill),
			},
		})
	}

	return &Curriculum{
		Modules: []Module{
			{
				ID:             fallbackID("module", in.Skill),
				Title:          fmt.Sprintf("%s Fundamentals", in.Skill),
				Description:    fmt.Sprintf("A foundation module covering the essentials of %s.", in.Skill),
				EstimatedWeeks: in.Weeks,
				Topics:         []Topic{topic},
			},
		},
		WeeklyRoadmap: roadmap,
	}
}

// fallbackID derives a stable id from the entity kind and skill, keeping
// the fallback deterministic across calls.
func fallbackID(kind, skill string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("skillpath/"+kind+"/"+skill)).String()
}
