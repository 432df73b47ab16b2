package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newChatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chats",
		Short: "Conversation commands",
	}
	cmd.AddCommand(newChatsListCmd(app))
	cmd.AddCommand(newChatsShowCmd(app))
	cmd.AddCommand(newChatsSendCmd(app))
	return cmd
}

func newChatsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations, most recent activity first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": db.Conversations.List(),
				"meta": map[string]any{"totalUnread": db.Conversations.TotalUnread()},
			})
		},
	}
	return cmd
}

func newChatsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <conversation-id>",
		Short: "Show one conversation with its messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, err := db.Conversations.Open(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}
	return cmd
}

func newChatsSendCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <conversation-id> <text...>",
		Short: "Send a message to a conversation",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := loadDB(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			text := strings.Join(args[1:], " ")
			msg, err := db.Conversations.Append(args[0], text)
			if err != nil {
				return writeErr(cmd, err)
			}
			if msg == nil {
				// Whitespace-only input is dropped without error.
				return writeOut(cmd, app, map[string]any{"data": nil})
			}
			return writeOut(cmd, app, map[string]any{"data": msg})
		},
	}
	return cmd
}
