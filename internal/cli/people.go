package cli

import (
	"hackmatch/internal/directory"

	"github.com/spf13/cobra"
)

func newPeopleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "People directory commands",
	}
	cmd.AddCommand(newPeopleListCmd(app))
	cmd.AddCommand(newPeopleShowCmd(app))
	return cmd
}

func newPeopleListCmd(app *App) *cobra.Command {
	var query string
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people, optionally filtered by query and skill category",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cat, err := directory.ParseCategory(category)
			if err != nil {
				return writeErr(cmd, err)
			}
			people := directory.FilterPeople(db.People, query, cat)
			return writeOut(cmd, app, map[string]any{"data": people})
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Match against name, role, and skills (case-insensitive)")
	cmd.Flags().StringVar(&category, "category", "all", "Skill category (all|frontend|backend|design|ml|mobile)")
	return cmd
}

func newPeopleShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <person-id>",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			p, ok := db.FindPerson(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("person", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": p})
		},
	}
	return cmd
}
