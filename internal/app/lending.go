package app

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/libraryctl/internal/ledger"
	"github.com/blackwell-systems/libraryctl/internal/library"
	"github.com/blackwell-systems/libraryctl/internal/render"
)

var errNoMatchingLoan = errors.New("no matching loan")

type entryResult struct {
	Reader  uint32          `yaml:"reader" json:"reader"`
	Book    uint32          `yaml:"book" json:"book"`
	Outcome ledger.Outcome  `yaml:"outcome" json:"outcome"`
	Report  *ledger.Report  `yaml:"report,omitempty" json:"report,omitempty"`
	Loans   []ledger.Report `yaml:"loans" json:"loans"`
}

func newLendCmd() *cobra.Command {
	var (
		readerID uint32
		bookID   uint32
		days     uint64
	)

	cmd := &cobra.Command{
		Use:   "lend",
		Short: "Lend a book to a reader",
		Long: `Builds the seeded library and lends a book to a reader. The loan is due
--days days from now (default: loans.default_days from the config).

Lending a book the reader already holds is an error.

Examples:
  libraryctl lend --reader 2 --book 1
  libraryctl lend --reader 2 --book 1 --days 7 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := buildLibrary()
			if err != nil {
				return err
			}
			r, err := lib.Borrow(readerID, bookID, loanDays(cmd, days))
			if err != nil {
				return err
			}
			res := entryResult{
				Reader:  readerID,
				Book:    bookID,
				Outcome: ledger.Borrowed,
				Report:  &r,
				Loans:   lib.Loans(readerID),
			}
			return printEntry(cmd.OutOrStdout(), lib, res)
		},
	}

	addEntryFlags(cmd, &readerID, &bookID)
	cmd.Flags().Uint64Var(&days, "days", 0, "Loan length in days (default: loans.default_days)")
	return cmd
}

func newReturnCmd() *cobra.Command {
	var (
		readerID uint32
		bookID   uint32
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "return",
		Short: "Take a book back from a reader",
		Long: `Builds the seeded library and returns a book the reader holds.

Returning a book the reader does not hold changes nothing; it is reported as
"no-matching-loan" and, with --strict, exits non-zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := buildLibrary()
			if err != nil {
				return err
			}
			res := entryResult{
				Reader:  readerID,
				Book:    bookID,
				Outcome: lib.Return(readerID, bookID),
			}
			res.Loans = lib.Loans(readerID)
			if err := printEntry(cmd.OutOrStdout(), lib, res); err != nil {
				return err
			}
			if strict && res.Outcome == ledger.NoMatchingLoan {
				return fmt.Errorf("reader %d, book %d: %w", readerID, bookID, errNoMatchingLoan)
			}
			return nil
		},
	}

	addEntryFlags(cmd, &readerID, &bookID)
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the reader does not hold the book")
	return cmd
}

func newProcessCmd() *cobra.Command {
	var (
		readerID   uint32
		bookID     uint32
		days       uint64
		returnOnly bool
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Return the book if the reader holds it, lend it otherwise",
		Long: `Builds the seeded library and processes a desk entry for a reader and a
book: a held book is taken back, any other book is lent for --days days.

With --return-only a book that is not held is never lent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := buildLibrary()
			if err != nil {
				return err
			}
			d := loanDays(cmd, days)
			if returnOnly {
				d = ledger.ReturnOnly
			}
			out, err := lib.ProcessEntry(readerID, bookID, d)
			if err != nil {
				return err
			}
			res := entryResult{
				Reader:  readerID,
				Book:    bookID,
				Outcome: out,
				Loans:   lib.Loans(readerID),
			}
			if out == ledger.Borrowed {
				if n := len(res.Loans); n > 0 {
					res.Report = &res.Loans[n-1]
				}
			}
			return printEntry(cmd.OutOrStdout(), lib, res)
		},
	}

	addEntryFlags(cmd, &readerID, &bookID)
	cmd.Flags().Uint64Var(&days, "days", 0, "Loan length in days when lending")
	cmd.Flags().BoolVar(&returnOnly, "return-only", false, "Never lend; only take back a held book")
	cmd.MarkFlagsMutuallyExclusive("days", "return-only")
	return cmd
}

// loanDays returns --days when given, even 0, and the configured default
// otherwise.
func loanDays(cmd *cobra.Command, days uint64) uint64 {
	if cmd.Flags().Changed("days") {
		return days
	}
	return cfg.Loans.EffectiveDays(0)
}

func addEntryFlags(cmd *cobra.Command, readerID, bookID *uint32) {
	cmd.Flags().Uint32Var(readerID, "reader", 0, "Reader ID")
	cmd.Flags().Uint32Var(bookID, "book", 0, "Book ID")
	_ = cmd.MarkFlagRequired("reader")
	_ = cmd.MarkFlagRequired("book")
}

func printEntry(w io.Writer, lib *library.Library, res entryResult) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	switch format {
	case render.FormatYAML:
		return render.YAML(w, res)
	case render.FormatJSON:
		return render.JSON(w, res)
	}

	reader := fmt.Sprintf("reader %d", res.Reader)
	if r, found := lib.Reader(res.Reader); found {
		reader = fmt.Sprintf("%s (reader %d)", r.Name, r.ID)
	}
	book := fmt.Sprintf("book %d", res.Book)
	if b, found := lib.BookByID(res.Book); found {
		book = fmt.Sprintf("%q (book %d)", b.Name, b.ID)
	}

	switch res.Outcome {
	case ledger.Borrowed:
		ok(w, "%s borrowed %s", reader, book)
		if res.Report != nil {
			printField(w, "report", fmt.Sprintf("%d", res.Report.ID))
			printField(w, "due", res.Report.ReturnDate.Format("2006-01-02 15:04"))
		}
	case ledger.Returned:
		ok(w, "%s returned %s", reader, book)
	default:
		warn(w, "%s does not hold %s; nothing changed", reader, book)
	}

	header(w, "Loans held by %s", reader)
	render.Loans(w, res.Loans, time.Now())
	return nil
}

func newHoldersCmd() *cobra.Command {
	var bookID uint32

	cmd := &cobra.Command{
		Use:   "holders",
		Short: "List the readers currently holding a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}
			lib, err := buildLibrary()
			if err != nil {
				return err
			}
			ids := lib.Holders(bookID)
			w := cmd.OutOrStdout()

			switch format {
			case render.FormatYAML:
				return render.YAML(w, holdersResult{Book: bookID, Readers: ids})
			case render.FormatJSON:
				return render.JSON(w, holdersResult{Book: bookID, Readers: ids})
			}

			if len(ids) == 0 {
				warn(w, "nobody holds book %d", bookID)
				return nil
			}
			header(w, "Book %d is held by:", bookID)
			for _, id := range ids {
				name := "(unknown reader)"
				if r, found := lib.Reader(id); found {
					name = r.Name
				}
				printField(w, fmt.Sprintf("reader %d", id), name)
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&bookID, "book", 0, "Book ID")
	_ = cmd.MarkFlagRequired("book")
	return cmd
}

type holdersResult struct {
	Book    uint32   `yaml:"book" json:"book"`
	Readers []uint32 `yaml:"readers" json:"readers"`
}
