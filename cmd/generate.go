package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/skillpath/skillpath/internal/curriculum"
	"github.com/skillpath/skillpath/internal/lesson"
	"github.com/skillpath/skillpath/internal/llm"
	"github.com/skillpath/skillpath/internal/projects"
	"github.com/skillpath/skillpath/internal/quiz"
	"github.com/skillpath/skillpath/internal/resources"
	"github.com/skillpath/skillpath/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate learning content",
}

// setupGeneration opens the store and builds the LLM provider with event
// logging attached. The caller owns closing the store.
func setupGeneration(cmd *cobra.Command) (*store.Store, llm.Provider, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	log := newLogger(cmd)
	provider, err := llm.NewProviderFromEnv(contextOf(cmd), log, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider: %w", err)
	}
	return st, provider, nil
}

// emit prints the result as styled text or raw JSON, and saves an
// artifact when --save is set.
func emit(cmd *cobra.Command, st *store.Store, kind string, params any, payload any, rendered string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
	} else {
		fmt.Print(rendered)
	}

	save, _ := cmd.Flags().GetBool("save")
	if !save {
		return nil
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	a := &store.Artifact{
		ID:      uuid.NewString(),
		Kind:    kind,
		Params:  paramsJSON,
		Payload: payloadJSON,
	}
	if err := st.ArtifactRepo().Save(cmd.Context(), a); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Saved artifact %s\n", a.ID)
	return nil
}

var generateCurriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Generate a structured curriculum for a skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")
		level, _ := cmd.Flags().GetString("level")
		hours, _ := cmd.Flags().GetInt("hours-per-week")
		weeks, _ := cmd.Flags().GetInt("weeks")

		st, provider, err := setupGeneration(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in := curriculum.Input{Skill: skill, Level: level, HoursPerWeek: hours, Weeks: weeks}
		svc := curriculum.NewService(provider, curriculum.DefaultConfig())
		out, err := svc.Generate(contextOf(cmd), in)
		if err != nil {
			return err
		}
		return emit(cmd, st, "curriculum", in, out, renderCurriculum(out))
	},
}

var generateLessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Generate a lesson for a subtopic",
	RunE: func(cmd *cobra.Command, args []string) error {
		subtopic, _ := cmd.Flags().GetString("subtopic")
		skill, _ := cmd.Flags().GetString("skill")
		level, _ := cmd.Flags().GetString("level")

		st, provider, err := setupGeneration(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in := lesson.Input{SubtopicTitle: subtopic, Skill: skill, Level: level}
		svc := lesson.NewService(provider, lesson.DefaultConfig())
		out, err := svc.Generate(contextOf(cmd), in)
		if err != nil {
			return err
		}
		return emit(cmd, st, "lesson", in, out, renderLesson(out))
	},
}

var generateQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Generate a quiz for a lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonTitle, _ := cmd.Flags().GetString("lesson")
		content, _ := cmd.Flags().GetString("content")

		st, provider, err := setupGeneration(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in := quiz.Input{LessonTitle: lessonTitle, ContentExcerpt: content}
		svc := quiz.NewService(provider, quiz.DefaultConfig())
		out, err := svc.Generate(contextOf(cmd), in)
		if err != nil {
			return err
		}
		return emit(cmd, st, "quiz", in, out, renderQuiz(out))
	},
}

var generateResourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Generate curated learning resources for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		skill, _ := cmd.Flags().GetString("skill")
		level, _ := cmd.Flags().GetString("level")

		st, provider, err := setupGeneration(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in := resources.Input{TopicTitle: topic, Skill: skill, Level: level}
		svc := resources.NewService(provider, resources.DefaultConfig())
		out, err := svc.Generate(contextOf(cmd), in)
		if err != nil {
			return err
		}
		return emit(cmd, st, "resources", in, out, renderResources(out))
	},
}

var generateProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Generate project ideas for a curriculum module",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetString("module")
		skill, _ := cmd.Flags().GetString("skill")
		level, _ := cmd.Flags().GetString("level")

		st, provider, err := setupGeneration(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in := projects.Input{ModuleTitle: module, Skill: skill, Level: level}
		svc := projects.NewService(provider, projects.DefaultConfig())
		out, err := svc.Generate(contextOf(cmd), in)
		if err != nil {
			return err
		}
		return emit(cmd, st, "projects", in, out, renderProjects(out))
	},
}

// contextOf returns the command context, falling back to Background for
// commands run outside cobra's Execute path (tests).
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func init() {
	for _, c := range []*cobra.Command{
		generateCurriculumCmd, generateLessonCmd, generateQuizCmd,
		generateResourcesCmd, generateProjectsCmd,
	} {
		c.Flags().Bool("json", false, "Print raw JSON instead of styled output")
		c.Flags().Bool("save", false, "Persist the result as an artifact")
	}

	generateCurriculumCmd.Flags().String("skill", "", "Skill to learn (required)")
	generateCurriculumCmd.Flags().String("level", "beginner", "Starting level: beginner, intermediate or advanced")
	generateCurriculumCmd.Flags().Int("hours-per-week", 5, "Weekly time budget in hours")
	generateCurriculumCmd.Flags().Int("weeks", 0, "Roadmap length in weeks (0 = default)")
	_ = generateCurriculumCmd.MarkFlagRequired("skill")

	generateLessonCmd.Flags().String("subtopic", "", "Subtopic title (required)")
	generateLessonCmd.Flags().String("skill", "", "Broader skill for context")
	generateLessonCmd.Flags().String("level", "beginner", "Starting level")
	_ = generateLessonCmd.MarkFlagRequired("subtopic")

	generateQuizCmd.Flags().String("lesson", "", "Lesson title (required)")
	generateQuizCmd.Flags().String("content", "", "Lesson content excerpt the questions should cover")
	_ = generateQuizCmd.MarkFlagRequired("lesson")

	generateResourcesCmd.Flags().String("topic", "", "Topic title (required)")
	generateResourcesCmd.Flags().String("skill", "", "Broader skill for context")
	generateResourcesCmd.Flags().String("level", "beginner", "Starting level")
	_ = generateResourcesCmd.MarkFlagRequired("topic")

	generateProjectsCmd.Flags().String("module", "", "Curriculum module title (required)")
	generateProjectsCmd.Flags().String("skill", "", "Broader skill for context")
	generateProjectsCmd.Flags().String("level", "beginner", "Starting level")
	_ = generateProjectsCmd.MarkFlagRequired("module")

	generateCmd.AddCommand(generateCurriculumCmd)
	generateCmd.AddCommand(generateLessonCmd)
	generateCmd.AddCommand(generateQuizCmd)
	generateCmd.AddCommand(generateResourcesCmd)
	generateCmd.AddCommand(generateProjectsCmd)
}
