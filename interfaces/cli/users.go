package cli

import (
	"github.com/spf13/cobra"

	"eventdeck/application/queries"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect event creators",
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "list",
		Short:        "List all users",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			users, err := a.listUsers.Handle(cmd.Context(), queries.ListUsersQuery{})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), users)
			}
			return printUserTable(cmd.OutOrStdout(), users)
		},
	})

	return cmd
}
