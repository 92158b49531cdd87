package cli

import (
	"github.com/spf13/cobra"

	"eventdeck/application/queries"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect event categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:          "list",
		Short:        "List all categories",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			categories, err := a.listCategories.Handle(cmd.Context(), queries.ListCategoriesQuery{})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), categories)
			}
			return printCategoryTable(cmd.OutOrStdout(), categories)
		},
	})

	return cmd
}
