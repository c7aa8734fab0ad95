package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skillpath/skillpath/internal/curriculum"
	"github.com/skillpath/skillpath/internal/lesson"
	"github.com/skillpath/skillpath/internal/projects"
	"github.com/skillpath/skillpath/internal/quiz"
	"github.com/skillpath/skillpath/internal/resources"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

func renderCurriculum(c *curriculum.Curriculum) string {
	var b strings.Builder

	for i, m := range c.Modules {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(fmt.Sprintf("Module %d:", i+1)), m.Title)
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(m.Description))
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("~%d weeks", m.EstimatedWeeks)))
		for _, t := range m.Topics {
			fmt.Fprintf(&b, "  • %s %s\n", t.Title, badgeStyle.Render("["+string(t.Difficulty)+"]"))
			for _, st := range t.Subtopics {
				fmt.Fprintf(&b, "      - %s %s\n", st.Title, dimStyle.Render(fmt.Sprintf("(%.1fh)", st.EstimatedHours)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Weekly Roadmap"))
	b.WriteString("\n")
	for _, w := range c.WeeklyRoadmap {
		fmt.Fprintf(&b, "  Week %2d (%.1fh): %s\n", w.Week, w.Hours, strings.Join(w.Goals, "; "))
	}

	return b.String()
}

func renderLesson(l *lesson.Lesson) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(l.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n\n", sectionStyle.Render("Objective:"), l.Objective)
	b.WriteString(l.Content)
	b.WriteString("\n\n")

	if len(l.Examples) > 0 {
		b.WriteString(sectionStyle.Render("Examples"))
		b.WriteString("\n")
		for _, ex := range l.Examples {
			fmt.Fprintf(&b, "  • %s\n", ex)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %s\n", sectionStyle.Render("Practice:"), l.PracticeTask)
	return b.String()
}

func renderQuiz(q *quiz.Quiz) string {
	var b strings.Builder

	for _, question := range q.Questions {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(fmt.Sprintf("Q%d.", question.ID)), question.Question)
		for i, opt := range question.Options {
			marker := "  "
			if i == question.CorrectAnswer {
				marker = sectionStyle.Render("✓ ")
			}
			fmt.Fprintf(&b, "  %s%c) %s\n", marker, 'A'+i, opt)
		}
		fmt.Fprintf(&b, "  %s\n\n", dimStyle.Render(question.Explanation))
	}

	return b.String()
}

func renderResources(rs []resources.Resource) string {
	var b strings.Builder

	for _, r := range rs {
		fmt.Fprintf(&b, "%s %s %s\n", badgeStyle.Render("["+string(r.Type)+"]"), titleStyle.Render(r.Title), dimStyle.Render(r.Level))
		if r.Author != "" {
			fmt.Fprintf(&b, "  by %s\n", r.Author)
		}
		fmt.Fprintf(&b, "  %s\n", r.Description)
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(r.Reason))
		if r.URL != resources.NoURL {
			fmt.Fprintf(&b, "  %s\n", r.URL)
		}
		if r.EstimatedTime != "" {
			fmt.Fprintf(&b, "  %s\n", dimStyle.Render(r.EstimatedTime))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderProjects(ps []projects.Project) string {
	var b strings.Builder

	for _, p := range ps {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(p.Title), badgeStyle.Render("["+string(p.Difficulty)+"]"))
		fmt.Fprintf(&b, "  %s\n", p.Description)
		if len(p.Requirements) > 0 {
			b.WriteString("  " + sectionStyle.Render("Requirements") + "\n")
			for _, r := range p.Requirements {
				fmt.Fprintf(&b, "    • %s\n", r)
			}
		}
		if len(p.TechStack) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", sectionStyle.Render("Tech:"), strings.Join(p.TechStack, ", "))
		}
		if len(p.Skills) > 0 {
			fmt.Fprintf(&b, "  %s %s\n", sectionStyle.Render("Skills:"), strings.Join(p.Skills, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}
