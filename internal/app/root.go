package app

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/libraryctl/internal/config"
	"github.com/blackwell-systems/libraryctl/internal/library"
	"github.com/blackwell-systems/libraryctl/internal/logging"
	"github.com/blackwell-systems/libraryctl/internal/render"
	"github.com/blackwell-systems/libraryctl/internal/seed"
	"github.com/blackwell-systems/libraryctl/internal/util"
)

var (
	cfg    *config.Config
	logger = zerolog.Nop()

	flagNoColor  bool
	flagConfig   string
	flagSeed     string
	flagFormat   string
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "libraryctl",
		Short: "Run an in-memory library catalog and lending ledger",
		Long: `libraryctl builds a library catalog (staff, readers, books) in memory,
lends and takes back books, and prints the resulting state.

Nothing is persisted: every run starts from the seed file (or the built-in
demo library) and applies the requested operation on top of it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/libraryctl/config.yml)")
	root.PersistentFlags().StringVar(&flagSeed, "seed", "", "Seed file describing the library (default: built-in demo)")
	root.PersistentFlags().StringVarP(&flagFormat, "format", "o", "", "Output format: text, yaml or json")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error, disabled")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagSeed != "" {
			cfg.Library.Seed = flagSeed
		}
		if flagFormat != "" {
			cfg.Output.Format = flagFormat
		}
		if flagLogLevel != "" {
			cfg.Log.Level = flagLogLevel
		}

		logger, err = logging.Stderr(cfg.Log.Level)
		return err
	}

	root.AddCommand(
		newInitCmd(),
		newDemoCmd(),
		newShowCmd(),
		newLendCmd(),
		newReturnCmd(),
		newProcessCmd(),
		newHoldersCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// buildLibrary loads the configured seed and builds a library from it.
func buildLibrary() (*library.Library, error) {
	doc, err := seed.Load(cfg.SeedPath())
	if err != nil {
		return nil, err
	}
	if cfg.Library.Name != "" {
		doc.Name = cfg.Library.Name
	}
	lib, err := doc.Build(library.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("building library %q: %w", doc.Name, err)
	}
	return lib, nil
}

func outputFormat() (render.Format, error) {
	return render.ParseFormat(cfg.Output.Format)
}

// ok prints a green success line.
func ok(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", color.CyanString(label+":"), value)
}
