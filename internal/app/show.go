package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/libraryctl/internal/render"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the full state of the seeded library",
		Long: `Builds the library from the seed file (or the built-in demo) and prints
every collection: staff, readers, books and active loans.

Examples:
  libraryctl show
  libraryctl show --seed branch.yml
  libraryctl show -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			lib, err := buildLibrary()
			if err != nil {
				return err
			}
			return render.State(cmd.OutOrStdout(), lib.Snapshot(), format)
		},
	}
}
