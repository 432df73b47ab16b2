package cli

import (
	"hackmatch/internal/directory"

	"github.com/spf13/cobra"
)

func newTeamsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Team commands",
	}
	cmd.AddCommand(newTeamsListCmd(app))
	cmd.AddCommand(newTeamsShowCmd(app))
	return cmd
}

func newTeamsListCmd(app *App) *cobra.Command {
	var query string
	var category string
	var mine bool
	var suggested bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cat, err := directory.ParseCategory(category)
			if err != nil {
				return writeErr(cmd, err)
			}

			teams := db.Teams
			switch {
			case mine:
				teams = db.MyTeams()
			case suggested:
				teams = db.SuggestedTeams()
			}
			teams = directory.FilterTeams(teams, query, cat)
			return writeOut(cmd, app, map[string]any{"data": teams})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Match against name, project, and skills (case-insensitive)")
	cmd.Flags().StringVar(&category, "category", "all", "Skill category (all|frontend|backend|design|ml|mobile)")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only teams you are a member of")
	cmd.Flags().BoolVar(&suggested, "suggested", false, "Only teams suggested to join")
	cmd.MarkFlagsMutuallyExclusive("mine", "suggested")
	return cmd
}

func newTeamsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <team-id>",
		Short: "Show one team (unknown ids yield a placeholder record)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": db.TeamOrPlaceholder(args[0])})
		},
	}
	return cmd
}
