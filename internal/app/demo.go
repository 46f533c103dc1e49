package app

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/libraryctl/internal/catalog"
	"github.com/blackwell-systems/libraryctl/internal/ledger"
	"github.com/blackwell-systems/libraryctl/internal/library"
	"github.com/blackwell-systems/libraryctl/internal/render"
)

type demoPhase struct {
	Phase string        `yaml:"phase" json:"phase"`
	State library.State `yaml:"state" json:"state"`
}

func newDemoCmd() *cobra.Command {
	var withReturn bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build the sample library step by step, printing it after each step",
		Long: `Builds the sample library from scratch: three staff members, three
readers, two books from one publisher, and one loan (reader 1 borrows book 1
for 3 days). The full state is printed after each step.

Use --with-return to also take the book back at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			name := cfg.Library.Name
			if name == "" {
				name = "Library"
			}

			phases, err := runDemo(library.New(name, library.WithLogger(logger)), withReturn)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case render.FormatYAML:
				return render.YAML(out, phases)
			case render.FormatJSON:
				return render.JSON(out, phases)
			}
			now := time.Now()
			for i, p := range phases {
				if i > 0 {
					fmt.Fprintln(out)
				}
				header(out, "── %s ──", p.Phase)
				if err := render.Text(out, p.State, now); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withReturn, "with-return", false, "Return the borrowed book as a final step")
	return cmd
}

// runDemo drives lib through the sample scenario and snapshots it after
// each step.
func runDemo(lib *library.Library, withReturn bool) ([]demoPhase, error) {
	var phases []demoPhase
	snap := func(phase string) {
		phases = append(phases, demoPhase{Phase: phase, State: lib.Snapshot()})
	}

	snap("empty library")

	for _, name := range []string{"John", "Nena", "William"} {
		if _, err := lib.AddStaff(name); err != nil {
			return nil, err
		}
	}
	readers := []struct{ name, email, phone string }{
		{"Constance", "constance.robertson@example.com", "(379) 218-3024"},
		{"Michele", "michele.richardson@example.com", "(760) 419-9840"},
		{"Zachary", "zachary.little@example.com", "(339) 527-9505"},
	}
	for _, r := range readers {
		if _, err := lib.AddReader(r.name, r.email, r.phone); err != nil {
			return nil, err
		}
	}
	snap("staff and readers added")

	publisher := catalog.NewPublisher(1, "PublisherOne", 2024)
	if _, err := lib.AddBook("BookOne", "AuthorOne", decimal.NewFromInt(1320),
		catalog.Thriller, "1234567890", publisher); err != nil {
		return nil, err
	}
	if _, err := lib.AddBook("BookTwo", "AuthorTwo", decimal.NewFromInt(1500),
		catalog.ScienceFiction, "9876543210", publisher); err != nil {
		return nil, err
	}
	snap("books added")

	if _, err := lib.ProcessEntry(1, 1, 3); err != nil {
		return nil, err
	}
	snap("reader 1 borrowed book 1 for 3 days")

	if withReturn {
		if _, err := lib.ProcessEntry(1, 1, ledger.ReturnOnly); err != nil {
			return nil, err
		}
		snap("reader 1 returned book 1")
	}
	return phases, nil
}
