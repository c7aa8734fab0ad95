package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var artifactsCmd = &cobra.Command{
	Use:   "artifacts",
	Short: "Inspect saved generation artifacts",
}

var artifactsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently saved artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items, err := st.ArtifactRepo().ListRecent(contextOf(cmd), kind, limit)
		if err != nil {
			return fmt.Errorf("list artifacts: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No artifacts found.")
			return nil
		}

		fmt.Printf("%-36s  %-12s  %-19s  %s\n", "ID", "Kind", "Created", "Params")
		fmt.Println(strings.Repeat("─", 100))
		for _, a := range items {
			params := string(a.Params)
			if len(params) > 40 {
				params = params[:40] + "…"
			}
			fmt.Printf("%-36s  %-12s  %-19s  %s\n",
				a.ID, a.Kind, a.CreatedAt.Local().Format("2006-01-02 15:04:05"), params)
		}
		return nil
	},
}

var artifactsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Print the saved payload for an artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		a, err := st.ArtifactRepo().Get(contextOf(cmd), args[0])
		if err != nil {
			return fmt.Errorf("get artifact: %w", err)
		}
		if a == nil {
			return fmt.Errorf("artifact %q not found", args[0])
		}

		fmt.Printf("ID:      %s\n", a.ID)
		fmt.Printf("Kind:    %s\n", a.Kind)
		fmt.Printf("Created: %s\n", a.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Params:  %s\n", a.Params)
		fmt.Println()
		fmt.Println(string(a.Payload))
		return nil
	},
}

func init() {
	artifactsListCmd.Flags().StringP("kind", "k", "", "Filter by kind (curriculum, lesson, quiz, resources, projects)")
	artifactsListCmd.Flags().IntP("limit", "n", 20, "Number of artifacts to show")

	artifactsCmd.AddCommand(artifactsListCmd)
	artifactsCmd.AddCommand(artifactsViewCmd)
}
