package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc/pkg/session"
)

func (c *CLI) sessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the puzzle-site session cookie",
		Long: `Manage the session cookie used to download inputs.

Copy the value of the "session" cookie from a logged-in browser. The
AOC_SESSION environment variable takes precedence over the stored cookie.`,
	}

	cmd.AddCommand(c.sessionSetCommand())
	cmd.AddCommand(c.sessionShowCommand())
	cmd.AddCommand(c.sessionClearCommand())
	return cmd
}

func (c *CLI) sessionSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [token]",
		Short: "Store the session cookie (reads stdin when no token is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				sc := bufio.NewScanner(os.Stdin)
				if sc.Scan() {
					token = sc.Text()
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read token: %w", err)
				}
			}

			sess, err := session.New(token, session.DefaultTTL)
			if err != nil {
				return err
			}
			store, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			if err := store.Set(cmd.Context(), sess); err != nil {
				return err
			}

			printSuccess("Session saved")
			printKeyValue("Expires", sess.ExpiresAt.Format("Jan 2, 2006"))
			printFile(store.Path())
			return nil
		},
	}
}

func (c *CLI) sessionShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("AOC_SESSION") != "" {
				printInfo("Using AOC_SESSION from the environment")
			}
			store, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			sess, err := store.Get(cmd.Context())
			if err != nil {
				return err
			}
			if sess == nil {
				printWarning("No stored session")
				printNextStep("Store one with", "aoc session set <token>")
				return nil
			}
			printKeyValue("Token", sess.Masked())
			printKeyValue("ID", sess.ID)
			printKeyValue("Created", sess.CreatedAt.Format("Jan 2, 2006 15:04"))
			printKeyValue("Expires", sess.ExpiresAt.Format("Jan 2, 2006 15:04"))
			return nil
		},
	}
}

func (c *CLI) sessionClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Session cleared")
			return nil
		},
	}
}
