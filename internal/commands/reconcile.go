package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/bankfeed"
	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
	"github.com/ledgerline-dev/ledgerline/internal/reconcile"
)

func newReconcileCommand() *cobra.Command {
	var dir string
	var from, to string
	var statementFile string
	var format string
	var opening string

	cmd := &cobra.Command{
		Use:   "reconcile <account-code>",
		Short: "Reconcile an account against a bank statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			acct, ok := e.chart.GetByCode(args[0])
			if !ok {
				return fmt.Errorf("unknown account code %q", args[0])
			}

			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			entries, err := e.entriesIn(r)
			if err != nil {
				return err
			}
			book := reconcile.BookLines(entries, acct.ID, acct.Type)

			bank, err := loadBankLines(e, acct.Code, statementFile, format, r)
			if err != nil {
				return err
			}

			openingBalance, err := money.FromString(opening, e.cfg.Ledger.Currency)
			if err != nil {
				return err
			}

			result, err := reconcile.Reconcile(book, bank, openingBalance, reconcile.Options{
				ToleranceDays: e.cfg.Reconciliation.ToleranceDays,
			})
			if err != nil {
				return err
			}

			printReconciliation(acct, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD")
	cmd.Flags().StringVar(&statementFile, "statement", "", "bank statement CSV (default: bank/<code>.csv in the data directory)")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format: generic or chase")
	cmd.Flags().StringVar(&opening, "opening", "0", "opening book balance")

	return cmd
}

func loadBankLines(e *env, code, statementFile, format string, r ledger.DateRange) ([]model.BankLine, error) {
	if statementFile == "" {
		return e.store.BankLines(code, r)
	}

	parser := bankfeed.DefaultRegistry(e.cfg.Ledger.Currency).Get(format)
	if parser == nil {
		return nil, fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(statementFile)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	all, err := parser.Parse(f)
	if err != nil {
		return nil, err
	}

	var lines []model.BankLine
	for _, l := range all {
		if r.Contains(l.Date) {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

func printReconciliation(acct model.Account, result reconcile.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Reconciliation for %s %s\t\n", acct.Code, acct.Name)
	fmt.Fprintf(w, "Book Balance\t%s\n", result.BookBalance)
	fmt.Fprintf(w, "Bank Balance\t%s\n", result.BankBalance)
	fmt.Fprintf(w, "Difference\t%s\n", result.Difference)
	fmt.Fprintf(w, "Matched\t%d\n", len(result.Matched))
	w.Flush()

	if len(result.UnmatchedBook) > 0 {
		fmt.Println("Unmatched book lines:")
		for _, l := range result.UnmatchedBook {
			fmt.Printf("  %s %s %s %s\n", l.Date.Format(dateFormat), l.EntryID, l.Amount, l.Description)
		}
	}
	if len(result.UnmatchedBank) > 0 {
		fmt.Println("Unmatched bank lines:")
		for _, l := range result.UnmatchedBank {
			fmt.Printf("  %s %s %s\n", l.Date.Format(dateFormat), l.Amount, l.Description)
		}
	}
	if result.FullyReconciled() {
		fmt.Println("Fully reconciled.")
	}
}
