package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/libraryctl/internal/config"
	"github.com/blackwell-systems/libraryctl/internal/render"
	"github.com/blackwell-systems/libraryctl/internal/seed"
	"github.com/blackwell-systems/libraryctl/internal/util"
)

func newInitCmd() *cobra.Command {
	var (
		seedPath string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file and a starter seed",
		Long: `Writes a config file (default ~/.config/libraryctl/config.yml) pointing
at a starter seed file that contains the demo library. Edit the seed to
describe your own staff, readers, books and loans.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			cfgPath := flagConfig
			if cfgPath == "" {
				cfgPath = config.DefaultPath()
			}
			if seedPath == "" {
				seedPath = config.DefaultSeedPath()
			}

			for _, p := range []string{cfgPath, seedPath} {
				if _, err := os.Stat(p); err == nil && !force {
					return fmt.Errorf("%s already exists (use --force to overwrite)", p)
				}
			}

			doc, err := seed.Demo()
			if err != nil {
				return err
			}
			if err := util.EnsureDir(filepath.Dir(seedPath)); err != nil {
				return fmt.Errorf("creating seed directory: %w", err)
			}
			f, err := os.Create(seedPath)
			if err != nil {
				return fmt.Errorf("writing seed: %w", err)
			}
			if err := render.YAML(f, doc); err != nil {
				f.Close()
				return fmt.Errorf("writing seed: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing seed: %w", err)
			}
			ok(w, "Seed written to %s", seedPath)

			// Flag overrides apply to this run only.
			saved := config.Default()
			saved.Library.Seed = seedPath
			if err := config.Save(cfgPath, saved); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok(w, "Config written to %s", cfgPath)

			fmt.Fprintln(w)
			fmt.Fprintln(w, "Next:")
			fmt.Fprintf(w, "  libraryctl show --config %s\n", cfgPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed-out", "", "Where to write the starter seed (default: ~/.config/libraryctl/seed.yml)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}
